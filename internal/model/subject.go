package model

import (
	"github.com/google/uuid"
)

// DefaultSubjectColor is applied when a subject is created without a color.
const DefaultSubjectColor = "#007bff"

type Subject struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"not null"`
	Color  string    `gorm:"not null;default:'#007bff'"`

	User User `gorm:"foreignKey:UserID"`
}
