package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

type Roadmap struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User         `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	PathID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"path_id"`
	Path        *LearningPath `gorm:"constraint:OnDelete:CASCADE;foreignKey:PathID;references:ID" json:"path,omitempty"`
	Title       string        `gorm:"not null;column:title" json:"title"`
	Description string        `gorm:"column:description" json:"description"`
	Level       string        `gorm:"not null;column:level" json:"level"`
	Language    string        `gorm:"not null;column:language" json:"language"`
	AIGenerated bool          `gorm:"column:ai_generated;not null;default:false" json:"ai_generated"`
	CreatedAt   time.Time     `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"not null;default:now()" json:"updated_at"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}
