package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLog records actor-attributed domain events. The actor and metadata
// are passed explicitly by callers; nothing is read from ambient request
// state.
type ActivityLog struct {
	BaseModel
	ActorID  uuid.UUID      `gorm:"index" json:"actor_id"`
	Action   string         `gorm:"index" json:"action"`
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata"`
}
