// Package authz holds the closed role enumeration and the capability
// permission table. Routes declare a capability; the table maps each
// capability to the exact set of roles allowed to invoke it. There is no
// role hierarchy: admin is not implicitly granted coach-only capabilities.
package authz

import "fmt"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleCoach Role = "coach"
	RoleUser  Role = "user"
)

var allRoles = []Role{RoleAdmin, RoleCoach, RoleUser}

func ValidRole(s string) bool {
	for _, r := range allRoles {
		if string(r) == s {
			return true
		}
	}
	return false
}

type Capability string

const (
	CapProfileSelf       Capability = "profile.self"
	CapUsersManage       Capability = "users.manage"
	CapClientsView       Capability = "clients.view"
	CapPlansManage       Capability = "plans.manage"
	CapSubscriptionSelf  Capability = "subscription.self"
	CapVideosView        Capability = "videos.view"
	CapVideosManage      Capability = "videos.manage"
	CapClassesView       Capability = "classes.view"
	CapClassesManage     Capability = "classes.manage"
	CapClassesReserve    Capability = "classes.reserve"
	CapWorkoutsManage    Capability = "workouts.manage"
	CapWorkoutsSelf      Capability = "workouts.self"
	CapDietsManage       Capability = "diets.manage"
	CapDietsSelf         Capability = "diets.self"
	CapProductsManage    Capability = "products.manage"
	CapOrdersSelf        Capability = "orders.self"
	CapOrdersManage      Capability = "orders.manage"
	CapArticlesManage    Capability = "articles.manage"
	CapCommentsWrite     Capability = "comments.write"
	CapTicketsSelf       Capability = "tickets.self"
	CapTicketsManage     Capability = "tickets.manage"
	CapChat              Capability = "chat"
	CapNotificationsSelf Capability = "notifications.self"
	CapDashboardView     Capability = "dashboard.view"
	CapActivityView      Capability = "activity.view"
	CapUploadsWrite      Capability = "uploads.write"
)

// permissions is the authoritative capability -> allowed roles table.
// Validate checks it covers every declared capability at startup, so a new
// capability without an entry fails fast instead of silently denying.
var permissions = map[Capability][]Role{
	CapProfileSelf:       {RoleAdmin, RoleCoach, RoleUser},
	CapUsersManage:       {RoleAdmin},
	CapClientsView:       {RoleCoach},
	CapPlansManage:       {RoleAdmin},
	CapSubscriptionSelf:  {RoleAdmin, RoleCoach, RoleUser},
	CapVideosView:        {RoleAdmin, RoleCoach, RoleUser},
	CapVideosManage:      {RoleAdmin},
	CapClassesView:       {RoleAdmin, RoleCoach, RoleUser},
	CapClassesManage:     {RoleAdmin, RoleCoach},
	CapClassesReserve:    {RoleUser},
	CapWorkoutsManage:    {RoleAdmin, RoleCoach},
	CapWorkoutsSelf:      {RoleUser},
	CapDietsManage:       {RoleAdmin, RoleCoach},
	CapDietsSelf:         {RoleUser},
	CapProductsManage:    {RoleAdmin},
	CapOrdersSelf:        {RoleAdmin, RoleCoach, RoleUser},
	CapOrdersManage:      {RoleAdmin},
	CapArticlesManage:    {RoleAdmin, RoleCoach},
	CapCommentsWrite:     {RoleAdmin, RoleCoach, RoleUser},
	CapTicketsSelf:       {RoleAdmin, RoleCoach, RoleUser},
	CapTicketsManage:     {RoleAdmin},
	CapChat:              {RoleAdmin, RoleCoach, RoleUser},
	CapNotificationsSelf: {RoleAdmin, RoleCoach, RoleUser},
	CapDashboardView:     {RoleAdmin},
	CapActivityView:      {RoleAdmin},
	CapUploadsWrite:      {RoleAdmin, RoleCoach, RoleUser},
}

var allCapabilities = []Capability{
	CapProfileSelf, CapUsersManage, CapClientsView, CapPlansManage,
	CapSubscriptionSelf, CapVideosView, CapVideosManage, CapClassesView,
	CapClassesManage, CapClassesReserve, CapWorkoutsManage, CapWorkoutsSelf,
	CapDietsManage, CapDietsSelf, CapProductsManage, CapOrdersSelf,
	CapOrdersManage, CapArticlesManage, CapCommentsWrite, CapTicketsSelf,
	CapTicketsManage, CapChat, CapNotificationsSelf, CapDashboardView,
	CapActivityView, CapUploadsWrite,
}

// Allowed reports whether the role may invoke the capability.
func Allowed(cap Capability, role Role) bool {
	for _, r := range permissions[cap] {
		if r == role {
			return true
		}
	}
	return false
}

// Validate checks the permission table for completeness. Run once at startup.
func Validate() error {
	for _, cap := range allCapabilities {
		roles, ok := permissions[cap]
		if !ok || len(roles) == 0 {
			return fmt.Errorf("authz: capability %q has no allowed roles", cap)
		}
		for _, r := range roles {
			if !ValidRole(string(r)) {
				return fmt.Errorf("authz: capability %q references unknown role %q", cap, r)
			}
		}
	}
	for cap := range permissions {
		found := false
		for _, known := range allCapabilities {
			if cap == known {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("authz: permission table entry %q is not a declared capability", cap)
		}
	}
	return nil
}
