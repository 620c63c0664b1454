package handler

import (
	"errors"
	"net/http"

	"studytask/internal/model"
	"studytask/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SubjectHandler struct {
	repo repository.SubjectRepositoryInterface
	log  *logrus.Logger
}

func NewSubjectHandler(repo repository.SubjectRepositoryInterface, log *logrus.Logger) *SubjectHandler {
	return &SubjectHandler{repo: repo, log: log}
}

type CreateSubjectRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

type SubjectResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func subjectResponse(s model.Subject) SubjectResponse {
	return SubjectResponse{
		ID:    s.ID.String(),
		Name:  s.Name,
		Color: s.Color,
	}
}

// Create adds a new subject for the authenticated user.
func (h *SubjectHandler) Create(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	color := req.Color
	if color == "" {
		color = model.DefaultSubjectColor
	}

	subject := &model.Subject{
		UserID: ownerID,
		Name:   req.Name,
		Color:  color,
	}

	if err := h.repo.Create(c.Request.Context(), subject); err != nil {
		h.log.WithError(err).Error("failed to create subject")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subject"})
		return
	}

	c.JSON(http.StatusCreated, subjectResponse(*subject))
}

// GetAll lists the user's subjects ordered by name.
func (h *SubjectHandler) GetAll(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	subjects, err := h.repo.GetByUser(c.Request.Context(), ownerID)
	if err != nil {
		h.log.WithError(err).Error("failed to retrieve subjects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve subjects"})
		return
	}

	response := make([]SubjectResponse, len(subjects))
	for i, s := range subjects {
		response[i] = subjectResponse(s)
	}

	c.JSON(http.StatusOK, response)
}

// Delete removes a subject, detaching its tasks first.
func (h *SubjectHandler) Delete(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subject ID format"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), subjectID, ownerID); err != nil {
		if errors.Is(err, repository.ErrSubjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subject not found"})
			return
		}
		h.log.WithError(err).Error("failed to delete subject")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subject"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subject deleted"})
}
