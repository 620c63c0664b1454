package repository

import (
	"context"
	"errors"

	"studytask/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectRepository struct {
	db *gorm.DB
}

type SubjectRepositoryInterface interface {
	Create(ctx context.Context, subject *model.Subject) error
	GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Subject, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Subject, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

var _ SubjectRepositoryInterface = (*SubjectRepository)(nil)

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

func (r *SubjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

// GetByUser returns all of the owner's subjects ordered by name.
func (r *SubjectRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Subject, error) {
	var subjects []model.Subject
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name").
		Find(&subjects)
	if result.Error != nil {
		return nil, result.Error
	}
	return subjects, nil
}

func (r *SubjectRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&subject).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

// Delete removes a subject and detaches its tasks first. There is no
// cascade: dependent tasks keep living with a null subject.
func (r *SubjectRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Task{}).
			Where("subject_id = ? AND user_id = ?", id, userID).
			Update("subject_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Subject{}, "id = ? AND user_id = ?", id, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSubjectNotFound
		}
		return nil
	})
}
