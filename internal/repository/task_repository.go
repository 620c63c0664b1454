package repository

import (
	"context"
	"errors"
	"time"

	"studytask/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	List(ctx context.Context, userID uuid.UUID, subjectFilter, search string) ([]model.Task, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Task, error)
	GetByMonth(ctx context.Context, userID uuid.UUID, year, month int) ([]model.Task, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]model.Task, error)
	Complete(ctx context.Context, id, userID uuid.UUID) error
	UpdateDueDate(ctx context.Context, id, userID uuid.UUID, due time.Time) error
	AppendNote(ctx context.Context, id, userID uuid.UUID, line string) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// List returns the owner's tasks joined with their subject, filtered by
// subject name and search term. "all" (or empty) means no subject filter;
// the search term matches title, description, subject name and notes,
// case-insensitively. Rows come back in creation order — the planner does
// the urgency/priority ordering.
func (r *TaskRepository) List(ctx context.Context, userID uuid.UUID, subjectFilter, search string) ([]model.Task, error) {
	q := r.db.WithContext(ctx).
		Joins("LEFT JOIN subjects ON subjects.id = tasks.subject_id").
		Where("tasks.user_id = ?", userID).
		Preload("Subject")

	if subjectFilter != "" && subjectFilter != "all" {
		q = q.Where("subjects.name = ?", subjectFilter)
	}

	if search != "" {
		term := "%" + search + "%"
		q = q.Where(
			"tasks.title ILIKE ? OR tasks.description ILIKE ? OR subjects.name ILIKE ? OR tasks.notes ILIKE ?",
			term, term, term, term,
		)
	}

	var tasks []model.Task
	result := q.Order("tasks.created_at").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// GetByID retrieves one of the owner's tasks with its subject.
func (r *TaskRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetByMonth returns the owner's tasks due within the given month.
func (r *TaskRepository) GetByMonth(ctx context.Context, userID uuid.UUID, year, month int) ([]model.Task, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Preload("Subject").
		Where("user_id = ? AND due_date >= ? AND due_date < ?", userID, start, end).
		Order("due_date").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// GetByDate returns the owner's tasks due on exactly the given day.
func (r *TaskRepository) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Preload("Subject").
		Where("user_id = ? AND due_date = ?", userID, date).
		Order("created_at").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Complete marks a task done. There is no reopening path.
func (r *TaskRepository) Complete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("completed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// UpdateDueDate moves a task to a new calendar date.
func (r *TaskRepository) UpdateDueDate(ctx context.Context, id, userID uuid.UUID, due time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("due_date", due)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// AppendNote adds a line to the task's notes summary, separated by a
// newline when notes already exist.
func (r *TaskRepository) AppendNote(ctx context.Context, id, userID uuid.UUID, line string) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("notes", gorm.Expr("CASE WHEN notes = '' THEN ? ELSE notes || chr(10) || ? END", line, line))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes one of the owner's tasks.
func (r *TaskRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
