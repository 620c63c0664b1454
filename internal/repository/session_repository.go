package repository

import (
	"context"

	"studytask/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

type SessionRepositoryInterface interface {
	Create(ctx context.Context, session *model.StudySession) error
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]model.StudySession, error)
	GetAll(ctx context.Context, userID uuid.UUID) ([]model.StudySession, error)
}

var _ SessionRepositoryInterface = (*SessionRepository)(nil)

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create logs one finished session. Sessions are immutable afterwards.
func (r *SessionRepository) Create(ctx context.Context, session *model.StudySession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// Recent returns the owner's latest sessions with their subject, newest
// first.
func (r *SessionRepository) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]model.StudySession, error) {
	var sessions []model.StudySession
	result := r.db.WithContext(ctx).
		Preload("Subject").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}
	return sessions, nil
}

// GetAll returns the owner's full session history, newest first. The
// analytics (weekly buckets, subject breakdown, streak) are computed over
// this in the planner.
func (r *SessionRepository) GetAll(ctx context.Context, userID uuid.UUID) ([]model.StudySession, error) {
	var sessions []model.StudySession
	result := r.db.WithContext(ctx).
		Preload("Subject").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}
	return sessions, nil
}
