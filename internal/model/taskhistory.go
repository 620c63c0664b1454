package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskHistory is an append-only note trail for a task. Rows are never
// updated; they are removed only together with their task.
type TaskHistory struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	NoteText  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Task Task `gorm:"foreignKey:TaskID"`
	User User `gorm:"foreignKey:UserID"`
}
