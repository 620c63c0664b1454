package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studytask/internal/clock"
	"studytask/internal/handler"
	"studytask/internal/model"
	"studytask/internal/planner"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCalendarTest() (*gin.Engine, *MockTaskRepository, uuid.UUID) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockTaskRepository)
	userID := uuid.New()
	calendarHandler := handler.NewCalendarHandler(mockRepo, clock.Fixed(fixedNow), testLogger())

	r := gin.New()
	r.Use(authAs(userID))
	r.GET("/calendar/:year/:month", calendarHandler.Month)
	r.GET("/calendar/day/:date", calendarHandler.Day)

	return r, mockRepo, userID
}

func TestCalendarMonth_GridColorsAndStats(t *testing.T) {
	// Arrange
	router, mockRepo, userID := setupCalendarTest()

	tasks := []model.Task{
		{ID: uuid.New(), UserID: userID, Title: "past deadline", DueDate: dueOn(2024, 3, 10), Priority: model.PriorityLow},
		{ID: uuid.New(), UserID: userID, Title: "big exam", DueDate: dueOn(2024, 3, 20), Priority: model.PriorityHigh},
		{ID: uuid.New(), UserID: userID, Title: "reading", DueDate: dueOn(2024, 3, 20), Priority: model.PriorityMedium},
	}
	mockRepo.On("GetByMonth", mock.Anything, userID, 2024, 3).Return(tasks, nil)

	req, _ := http.NewRequest("GET", "/calendar/2024/3", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.MonthResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)

	assert.Equal(t, 2024, response.Year)
	assert.Equal(t, 3, response.Month)
	assert.Equal(t, "March", response.MonthName)

	// The grid is always six Monday-first weeks. March 2024 starts on a
	// Friday, so the first row is four leading zeros then 1, 2, 3.
	assert.Len(t, response.Grid, 6)
	for _, week := range response.Grid {
		assert.Len(t, week, 7)
	}
	assert.Equal(t, []int{0, 0, 0, 0, 1, 2, 3}, response.Grid[0])

	// Overdue beats priority for display color.
	assert.Equal(t, planner.ColorOverdue, response.TasksByDate["2024-03-10"][0].CalendarColor)

	day20 := response.TasksByDate["2024-03-20"]
	assert.Len(t, day20, 2)
	colors := []string{day20[0].CalendarColor, day20[1].CalendarColor}
	assert.Contains(t, colors, planner.ColorHigh)
	assert.Contains(t, colors, planner.ColorMedium)

	assert.Equal(t, 3, response.Stats.TotalTasks)
	assert.Equal(t, 2, response.Stats.DaysWithTasks)
	assert.Equal(t, 1, response.Stats.OverdueCount)

	mockRepo.AssertExpectations(t)
}

func TestCalendarMonth_NavigationWrapsYear(t *testing.T) {
	// Arrange
	router, mockRepo, userID := setupCalendarTest()
	mockRepo.On("GetByMonth", mock.Anything, userID, 2024, 12).Return([]model.Task{}, nil)

	req, _ := http.NewRequest("GET", "/calendar/2024/12", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.MonthResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)

	assert.Equal(t, 2024, response.Navigation.PrevYear)
	assert.Equal(t, 11, response.Navigation.PrevMonth)
	assert.Equal(t, 2025, response.Navigation.NextYear)
	assert.Equal(t, 1, response.Navigation.NextMonth)
	assert.Equal(t, "January", response.Navigation.NextMonthName)

	mockRepo.AssertExpectations(t)
}

func TestCalendarMonth_InvalidMonth(t *testing.T) {
	router, _, _ := setupCalendarTest()

	req, _ := http.NewRequest("GET", "/calendar/2024/13", nil)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid month")
}

func TestCalendarDay_OrderedByPriorityThenCreation(t *testing.T) {
	// Arrange
	router, mockRepo, userID := setupCalendarTest()

	date := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	later := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: uuid.New(), UserID: userID, Title: "low prio", DueDate: &date, Priority: model.PriorityLow, CreatedAt: earlier},
		{ID: uuid.New(), UserID: userID, Title: "high newer", DueDate: &date, Priority: model.PriorityHigh, CreatedAt: later},
		{ID: uuid.New(), UserID: userID, Title: "high older", DueDate: &date, Priority: model.PriorityHigh, CreatedAt: earlier},
	}
	mockRepo.On("GetByDate", mock.Anything, userID, date).Return(tasks, nil)

	req, _ := http.NewRequest("GET", "/calendar/day/2024-03-20", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var response struct {
		Date  string                 `json:"date"`
		Tasks []handler.TaskResponse `json:"tasks"`
	}
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)

	assert.Equal(t, "2024-03-20", response.Date)
	titles := make([]string, len(response.Tasks))
	for i, task := range response.Tasks {
		titles[i] = task.Title
	}
	assert.Equal(t, []string{"high older", "high newer", "low prio"}, titles)

	mockRepo.AssertExpectations(t)
}

func TestCalendarDay_MalformedDateMatchesNothing(t *testing.T) {
	// Arrange
	router, mockRepo, _ := setupCalendarTest()

	req, _ := http.NewRequest("GET", "/calendar/day/garbage", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"tasks":[]`)
	mockRepo.AssertNotCalled(t, "GetByDate")
}
