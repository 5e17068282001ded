package db_models

import "github.com/google/uuid"

type NotificationType string

const (
	NotifChatMessage      NotificationType = "chat_message"
	NotifClassReservation NotificationType = "class_reservation"
	NotifWorkoutAssigned  NotificationType = "workout_assigned"
	NotifDietAssigned     NotificationType = "diet_assigned"
	NotifTicketReply      NotificationType = "ticket_reply"
)

type Notification struct {
	BaseModel
	UserID uuid.UUID        `gorm:"index" json:"user_id"`
	Type   NotificationType `gorm:"type:varchar(32);index" json:"type"`
	Title  string           `json:"title"`
	Body   string           `json:"body,omitempty"`
	Read   bool             `gorm:"index;default:false" json:"read"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
