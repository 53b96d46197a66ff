package types

import (
	"time"

	"github.com/google/uuid"
)

// UserPreference holds UI preferences rehydrated on load. One row per user,
// upsert semantics keyed on user_id.
type UserPreference struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Language  string    `gorm:"column:language;not null;default:'english'" json:"language"`
	Theme     string    `gorm:"column:theme;not null;default:'light'" json:"theme"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
