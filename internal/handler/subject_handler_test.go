package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studytask/internal/handler"
	"studytask/internal/model"
	"studytask/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSubjectTest() (*gin.Engine, *MockSubjectRepository, uuid.UUID) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockSubjectRepository)
	userID := uuid.New()
	subjectHandler := handler.NewSubjectHandler(mockRepo, testLogger())

	r := gin.New()
	r.Use(authAs(userID))
	r.POST("/subjects", subjectHandler.Create)
	r.GET("/subjects", subjectHandler.GetAll)
	r.DELETE("/subjects/:id", subjectHandler.Delete)

	return r, mockRepo, userID
}

func TestCreateSubject_DefaultColor(t *testing.T) {
	// Arrange
	router, mockRepo, userID := setupSubjectTest()

	var created *model.Subject
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Subject")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Subject)
			created.ID = uuid.New()
		}).
		Return(nil)

	body, _ := json.Marshal(handler.CreateSubjectRequest{Name: "Chemistry"})
	req, _ := http.NewRequest("POST", "/subjects", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, model.DefaultSubjectColor, created.Color)
	assert.Equal(t, userID, created.UserID)

	var response handler.SubjectResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Chemistry", response.Name)
	assert.Equal(t, model.DefaultSubjectColor, response.Color)

	mockRepo.AssertExpectations(t)
}

func TestGetAllSubjects(t *testing.T) {
	// Arrange
	router, mockRepo, userID := setupSubjectTest()

	subjects := []model.Subject{
		{ID: uuid.New(), UserID: userID, Name: "Biology", Color: "#00ff00"},
		{ID: uuid.New(), UserID: userID, Name: "History", Color: "#0000ff"},
	}
	mockRepo.On("GetByUser", mock.Anything, userID).Return(subjects, nil)

	req, _ := http.NewRequest("GET", "/subjects", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var response []handler.SubjectResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 2)
	assert.Equal(t, "Biology", response[0].Name)
	assert.Equal(t, "History", response[1].Name)

	mockRepo.AssertExpectations(t)
}

func TestDeleteSubject_NotFound(t *testing.T) {
	// Arrange
	router, mockRepo, userID := setupSubjectTest()

	subjectID := uuid.New()
	mockRepo.On("Delete", mock.Anything, subjectID, userID).Return(repository.ErrSubjectNotFound)

	req, _ := http.NewRequest("DELETE", "/subjects/"+subjectID.String(), nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Subject not found")

	mockRepo.AssertExpectations(t)
}
