package handler

import (
	"net/http"
	"time"

	"studytask/internal/clock"
	"studytask/internal/model"
	"studytask/internal/planner"
	"studytask/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const recentSessionLimit = 10

type StudyHandler struct {
	sessionRepo repository.SessionRepositoryInterface
	subjectRepo repository.SubjectRepositoryInterface
	clock       clock.Clock
	log         *logrus.Logger
}

func NewStudyHandler(
	sessionRepo repository.SessionRepositoryInterface,
	subjectRepo repository.SubjectRepositoryInterface,
	clk clock.Clock,
	log *logrus.Logger,
) *StudyHandler {
	return &StudyHandler{
		sessionRepo: sessionRepo,
		subjectRepo: subjectRepo,
		clock:       clk,
		log:         log,
	}
}

type CreateSessionRequest struct {
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	SubjectID       string `json:"subject_id"`
	Notes           string `json:"notes"`
	SessionType     string `json:"session_type"`
}

type SessionResponse struct {
	ID              string  `json:"id"`
	DurationMinutes int     `json:"duration_minutes"`
	Notes           string  `json:"notes"`
	SessionType     string  `json:"session_type"`
	SubjectName     *string `json:"subject_name,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func sessionResponse(s model.StudySession) SessionResponse {
	resp := SessionResponse{
		ID:              s.ID.String(),
		DurationMinutes: s.DurationMinutes,
		Notes:           s.Notes,
		SessionType:     s.SessionType,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
	}
	if s.Subject != nil {
		resp.SubjectName = &s.Subject.Name
	}
	return resp
}

// CreateSession logs one finished study-timer run.
func (h *StudyHandler) CreateSession(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	sessionType := req.SessionType
	if sessionType != model.SessionFocus && sessionType != model.SessionBreak {
		sessionType = model.SessionFocus
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

	session := &model.StudySession{
		UserID:          ownerID,
		SubjectID:       subjectID,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		SessionType:     sessionType,
	}

	if err := h.sessionRepo.Create(c.Request.Context(), session); err != nil {
		h.log.WithError(err).Error("failed to save study session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save study session"})
		return
	}

	c.JSON(http.StatusCreated, sessionResponse(*session))
}

// Timer returns what the study timer page needs: the user's subjects, the
// last sessions and the trailing week's per-day totals.
func (h *StudyHandler) Timer(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	subjects, err := h.subjectRepo.GetByUser(c.Request.Context(), ownerID)
	if err != nil {
		h.log.WithError(err).Error("failed to retrieve subjects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve subjects"})
		return
	}

	recent, err := h.sessionRepo.Recent(c.Request.Context(), ownerID, recentSessionLimit)
	if err != nil {
		h.log.WithError(err).Error("failed to retrieve recent sessions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sessions"})
		return
	}

	all, err := h.sessionRepo.GetAll(c.Request.Context(), ownerID)
	if err != nil {
		h.log.WithError(err).Error("failed to retrieve sessions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sessions"})
		return
	}

	subjectList := make([]SubjectResponse, len(subjects))
	for i, s := range subjects {
		subjectList[i] = subjectResponse(s)
	}
	recentList := make([]SessionResponse, len(recent))
	for i, s := range recent {
		recentList[i] = sessionResponse(s)
	}

	c.JSON(http.StatusOK, gin.H{
		"subjects":        subjectList,
		"recent_sessions": recentList,
		"weekly_stats":    planner.WeeklyStats(all, h.clock.Now()),
	})
}

// Stats returns the all-time study analytics: overall totals, the
// per-subject breakdown and the consecutive-day streak.
func (h *StudyHandler) Stats(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessions, err := h.sessionRepo.GetAll(c.Request.Context(), ownerID)
	if err != nil {
		h.log.WithError(err).Error("failed to retrieve sessions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"overall":           planner.ComputeOverall(sessions),
		"subject_breakdown": planner.SubjectBreakdown(sessions),
		"streak":            planner.Streak(sessions),
	})
}
