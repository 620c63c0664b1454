package model

import (
	"time"

	"github.com/google/uuid"
)

// Task priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ValidPriority reports whether p is one of the enumerated priorities.
func ValidPriority(p string) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"not null"`
	Description string
	DueDate     *time.Time `gorm:"type:date"`
	Priority    string     `gorm:"not null;default:'medium';check:priority IN ('high', 'medium', 'low')"`
	Completed   bool       `gorm:"not null;default:false"`
	SubjectID   *uuid.UUID `gorm:"type:uuid;index"`
	Notes       string
	CreatedAt   time.Time  `gorm:"autoCreateTime"`

	User    User     `gorm:"foreignKey:UserID"`
	Subject *Subject `gorm:"foreignKey:SubjectID"`
}
