package repository

import (
	"context"

	"studytask/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HistoryRepository struct {
	db *gorm.DB
}

type HistoryRepositoryInterface interface {
	Create(ctx context.Context, entry *model.TaskHistory) error
	GetByTask(ctx context.Context, taskID, userID uuid.UUID) ([]model.TaskHistory, error)
}

var _ HistoryRepositoryInterface = (*HistoryRepository)(nil)

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create appends one history entry. Entries are never updated afterwards.
func (r *HistoryRepository) Create(ctx context.Context, entry *model.TaskHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByTask returns a task's history, newest first.
func (r *HistoryRepository) GetByTask(ctx context.Context, taskID, userID uuid.UUID) ([]model.TaskHistory, error) {
	var entries []model.TaskHistory
	result := r.db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		Order("created_at DESC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}
