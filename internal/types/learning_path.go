package types

import (
	"time"

	"github.com/google/uuid"
)

// LearningPath is immutable reference data, seeded once if the table is empty.
type LearningPath struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null;uniqueIndex;column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	Icon        string    `gorm:"column:icon" json:"icon"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}
