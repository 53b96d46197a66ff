package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RoadmapStep rows of a roadmap are totally ordered by OrderIndex, 0-based
// with no gaps. Reordering renumbers all affected rows in one transaction.
type RoadmapStep struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RoadmapID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"roadmap_id"`
	Roadmap       *Roadmap       `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoadmapID;references:ID" json:"roadmap,omitempty"`
	Title         string         `gorm:"not null;column:title" json:"title"`
	Description   string         `gorm:"column:description" json:"description"`
	OrderIndex    int            `gorm:"column:order_index;not null" json:"order_index"`
	EstimatedTime string         `gorm:"column:estimated_time" json:"estimated_time"`
	Keywords      datatypes.JSON `gorm:"type:jsonb;column:keywords" json:"keywords"`
	CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (RoadmapStep) TableName() string {
	return "roadmap_steps"
}
