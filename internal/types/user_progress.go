package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// UserProgress is one row per (user, step) pair, created lazily on the first
// status or notes change and upserted thereafter.
type UserProgress struct {
	ID        uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;index:idx_user_step,unique" json:"user_id"`
	User      *User        `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	StepID    uuid.UUID    `gorm:"type:uuid;not null;index:idx_user_step,unique" json:"step_id"`
	Step      *RoadmapStep `gorm:"constraint:OnDelete:CASCADE;foreignKey:StepID;references:ID" json:"step,omitempty"`
	Status    string       `gorm:"column:status;not null;default:'pending'" json:"status"`
	Notes     string       `gorm:"column:notes" json:"notes"`
	CreatedAt time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
