package db_models

import "github.com/google/uuid"

type Message struct {
	BaseModel
	SenderID   uuid.UUID `gorm:"index" json:"sender_id"`
	ReceiverID uuid.UUID `gorm:"index" json:"receiver_id"`
	// SenderRole always derives from the sender's user record at send time.
	SenderRole string `json:"sender_role"`
	Content    string `gorm:"type:text" json:"content"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}
