package response_models

import "time"

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type PlanMixItem struct {
	PlanCode string  `json:"plan_code"`
	Count    int64   `json:"count"`
	Percent  float64 `json:"percent"`
}

type DashboardReport struct {
	Range TimeRange `json:"range"`

	TotalUsers  int64            `json:"total_users"`
	UsersByRole map[string]int64 `json:"users_by_role"`

	ActiveSubscriptions int64         `json:"active_subscriptions"`
	PlanMix             []PlanMixItem `json:"plan_mix"`

	TotalClasses int64 `json:"total_classes"`
	TotalOrders  int64 `json:"total_orders"`

	RevenueMinor int64  `json:"revenue_minor"`
	Currency     string `json:"currency"`

	OpenTickets int64 `json:"open_tickets"`
}
