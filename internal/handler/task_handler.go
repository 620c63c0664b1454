package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"studytask/internal/clock"
	"studytask/internal/export"
	"studytask/internal/model"
	"studytask/internal/planner"
	"studytask/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type TaskHandler struct {
	taskRepo    repository.TaskRepositoryInterface
	historyRepo repository.HistoryRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	clock       clock.Clock
	log         *logrus.Logger
}

func NewTaskHandler(
	taskRepo repository.TaskRepositoryInterface,
	historyRepo repository.HistoryRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	clk clock.Clock,
	log *logrus.Logger,
) *TaskHandler {
	return &TaskHandler{
		taskRepo:    taskRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		clock:       clk,
		log:         log,
	}
}

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
	SubjectID   string `json:"subject_id"`
	Notes       string `json:"notes"`
}

type QuickTaskRequest struct {
	Title   string `json:"title" binding:"required"`
	DueDays int    `json:"due_days" binding:"min=0"`
}

type AddNoteRequest struct {
	NoteText string `json:"note_text" binding:"required"`
}

type UpdateDueDateRequest struct {
	NewDate string `json:"new_date" binding:"required"`
}

type TaskResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	DueDate      *string `json:"due_date,omitempty"`
	Priority     string  `json:"priority"`
	Completed    bool    `json:"completed"`
	SubjectID    *string `json:"subject_id,omitempty"`
	SubjectName  *string `json:"subject_name,omitempty"`
	SubjectColor *string `json:"subject_color,omitempty"`
	Notes        string  `json:"notes"`
	Urgency      string  `json:"urgency"`
	CreatedAt    string  `json:"created_at"`
}

type HistoryEntryResponse struct {
	ID        string `json:"id"`
	NoteText  string `json:"note_text"`
	CreatedAt string `json:"created_at"`
}

type TaskListResponse struct {
	Tasks []TaskResponse    `json:"tasks"`
	Stats planner.ListStats `json:"stats"`
}

func taskResponse(t model.Task, today time.Time) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Completed:   t.Completed,
		Notes:       t.Notes,
		Urgency:     string(planner.ClassifyUrgency(t.DueDate, today)),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		due := t.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	if t.SubjectID != nil {
		id := t.SubjectID.String()
		resp.SubjectID = &id
	}
	if t.Subject != nil {
		resp.SubjectName = &t.Subject.Name
		resp.SubjectColor = &t.Subject.Color
	}
	return resp
}

// List returns the user's tasks, filtered by subject and search term and
// ordered by urgency, priority and due date, together with list stats.
func (h *TaskHandler) List(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	subjectFilter := c.DefaultQuery("subject", "all")
	search := c.Query("search")

	tasks, err := h.taskRepo.List(c.Request.Context(), ownerID, subjectFilter, search)
	if err != nil {
		h.log.WithError(err).Error("failed to retrieve tasks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	today := h.clock.Now()
	planner.SortTasks(tasks, today)

	response := TaskListResponse{
		Tasks: make([]TaskResponse, len(tasks)),
		Stats: planner.ComputeListStats(tasks),
	}
	for i, t := range tasks {
		response.Tasks[i] = taskResponse(t, today)
	}

	c.JSON(http.StatusOK, response)
}

// Create adds a new task. A non-empty initial note is also recorded in the
// task's history.
func (h *TaskHandler) Create(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	priority := req.Priority
	if !model.ValidPriority(priority) {
		priority = model.PriorityMedium
	}

	var subjectID *uuid.UUID
	if req.SubjectID != "" {
		id, err := uuid.Parse(req.SubjectID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subject ID format"})
			return
		}
		subjectID = &id
	}

	task := &model.Task{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     planner.ParseDate(req.DueDate),
		Priority:    priority,
		SubjectID:   subjectID,
		Notes:       req.Notes,
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		h.log.WithError(err).Error("failed to create task")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	if strings.TrimSpace(req.Notes) != "" {
		entry := &model.TaskHistory{
			TaskID:   task.ID,
			UserID:   ownerID,
			NoteText: "Initial notes: " + req.Notes,
		}
		if err := h.historyRepo.Create(c.Request.Context(), entry); err != nil {
			// The task itself is saved; losing the first history row is not
			// worth failing the request over.
			h.log.WithError(err).Warn("failed to record initial note")
		}
	}

	c.JSON(http.StatusCreated, taskResponse(*task, h.clock.Now()))
}

// Quick creates a task from just a title and a day offset. The priority is
// derived from how soon it is due: today is high, within two days medium,
// later low.
func (h *TaskHandler) Quick(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req QuickTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	priority := model.PriorityLow
	switch {
	case req.DueDays == 0:
		priority = model.PriorityHigh
	case req.DueDays <= 2:
		priority = model.PriorityMedium
	}

	due := planner.DateOnly(h.clock.Now()).AddDate(0, 0, req.DueDays)
	task := &model.Task{
		UserID:   ownerID,
		Title:    req.Title,
		DueDate:  &due,
		Priority: priority,
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		h.log.WithError(err).Error("failed to create task")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, taskResponse(*task, h.clock.Now()))
}

// GetByID returns one task with its full note history, newest first.
func (h *TaskHandler) GetByID(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		h.log.WithError(err).Error("failed to retrieve task")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}

	history, err := h.historyRepo.GetByTask(c.Request.Context(), taskID, ownerID)
	if err != nil {
		h.log.WithError(err).Error("failed to retrieve task history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task history"})
		return
	}

	entries := make([]HistoryEntryResponse, len(history))
	for i, e := range history {
		entries[i] = HistoryEntryResponse{
			ID:        e.ID.String(),
			NoteText:  e.NoteText,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"task":    taskResponse(*task, h.clock.Now()),
		"history": entries,
	})
}

// Complete marks a task done.
func (h *TaskHandler) Complete(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.taskRepo.Complete(c.Request.Context(), taskID, ownerID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		h.log.WithError(err).Error("failed to complete task")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task completed"})
}

// AddNote appends a note to the task's history and to its notes summary.
// The two writes are separate statements; a crash in between leaves them
// out of sync, which we accept.
func (h *TaskHandler) AddNote(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	note := strings.TrimSpace(req.NoteText)
	if note == "" {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to add"})
		return
	}

	// The notes update doubles as the ownership check: zero rows means the
	// task is not this user's.
	line := fmt.Sprintf("[%s] %s", h.clock.Now().Format("2006-01-02 15:04"), note)
	if err := h.taskRepo.AppendNote(c.Request.Context(), taskID, ownerID, line); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		h.log.WithError(err).Error("failed to update task notes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add note"})
		return
	}

	entry := &model.TaskHistory{
		TaskID:   taskID,
		UserID:   ownerID,
		NoteText: note,
	}
	if err := h.historyRepo.Create(c.Request.Context(), entry); err != nil {
		h.log.WithError(err).Error("failed to record history entry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add note"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Note added"})
}

// UpdateDueDate moves a task to another calendar date.
func (h *TaskHandler) UpdateDueDate(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req UpdateDueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	newDate, err := time.Parse("2006-01-02", req.NewDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	if err := h.taskRepo.UpdateDueDate(c.Request.Context(), taskID, ownerID, newDate); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		h.log.WithError(err).Error("failed to update due date")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update due date"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Due date updated"})
}

// Delete removes a task and, through the schema, its history.
func (h *TaskHandler) Delete(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), taskID, ownerID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		h.log.WithError(err).Error("failed to delete task")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// Export streams the filtered task list as a plain-text attachment. It
// accepts the same subject/search parameters as List.
func (h *TaskHandler) Export(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.taskRepo.List(c.Request.Context(), ownerID, c.DefaultQuery("subject", "all"), c.Query("search"))
	if err != nil {
		h.log.WithError(err).Error("failed to retrieve tasks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	now := h.clock.Now()
	planner.SortTasks(tasks, now)

	username := ""
	if user, err := h.userRepo.GetByID(c.Request.Context(), ownerID); err == nil && user != nil {
		username = user.Username
	}

	content := export.TaskListText(username, tasks, now)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename(now)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}
