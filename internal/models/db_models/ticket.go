package db_models

import "github.com/google/uuid"

type TicketStatus string

const (
	TicketOpen   TicketStatus = "open"
	TicketClosed TicketStatus = "closed"
)

type Ticket struct {
	BaseModel
	UserID  uuid.UUID    `gorm:"index" json:"user_id"`
	Subject string       `json:"subject"`
	Body    string       `gorm:"type:text" json:"body"`
	Status  TicketStatus `gorm:"type:varchar(16);index;default:open" json:"status"`

	User    User          `gorm:"foreignKey:UserID" json:"-"`
	Replies []TicketReply `gorm:"foreignKey:TicketID" json:"replies,omitempty"`
}

type TicketReply struct {
	BaseModel
	TicketID uuid.UUID `gorm:"index" json:"ticket_id"`
	AuthorID uuid.UUID `json:"author_id"`
	Body     string    `gorm:"type:text" json:"body"`
}
