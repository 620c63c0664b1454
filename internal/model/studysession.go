package model

import (
	"time"

	"github.com/google/uuid"
)

// Study session types
const (
	SessionFocus = "focus"
	SessionBreak = "break"
)

// StudySession records one finished timer run. Sessions are immutable after
// creation.
type StudySession struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	SubjectID       *uuid.UUID `gorm:"type:uuid;index"`
	DurationMinutes int        `gorm:"not null"`
	Notes           string
	SessionType     string     `gorm:"not null;default:'focus';check:session_type IN ('focus', 'break')"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`

	User    User     `gorm:"foreignKey:UserID"`
	Subject *Subject `gorm:"foreignKey:SubjectID"`
}
