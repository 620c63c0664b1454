package handler

import (
	"net/http"
	"strconv"
	"time"

	"studytask/internal/clock"
	"studytask/internal/planner"
	"studytask/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CalendarHandler struct {
	taskRepo repository.TaskRepositoryInterface
	clock    clock.Clock
	log      *logrus.Logger
}

func NewCalendarHandler(taskRepo repository.TaskRepositoryInterface, clk clock.Clock, log *logrus.Logger) *CalendarHandler {
	return &CalendarHandler{taskRepo: taskRepo, clock: clk, log: log}
}

type CalendarTaskResponse struct {
	TaskResponse
	CalendarColor string `json:"calendar_color"`
}

type MonthResponse struct {
	Year        int                               `json:"year"`
	Month       int                               `json:"month"`
	MonthName   string                            `json:"month_name"`
	Grid        [][]int                           `json:"grid"`
	TasksByDate map[string][]CalendarTaskResponse `json:"tasks_by_date"`
	Stats       planner.MonthStats                `json:"stats"`
	Navigation  planner.Navigation                `json:"navigation"`
}

// Month returns the calendar view for one month: the day grid, tasks
// grouped by due date with display colors, statistics and navigation.
func (h *CalendarHandler) Month(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected 1-12"})
		return
	}

	tasks, err := h.taskRepo.GetByMonth(c.Request.Context(), ownerID, year, month)
	if err != nil {
		h.log.WithError(err).Error("failed to retrieve month tasks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	today := h.clock.Now()
	view := planner.BuildMonth(tasks, year, month, today)

	byDate := make(map[string][]CalendarTaskResponse, len(view.TasksByDate))
	for day, dayTasks := range view.TasksByDate {
		entries := make([]CalendarTaskResponse, len(dayTasks))
		for i, ct := range dayTasks {
			entries[i] = CalendarTaskResponse{
				TaskResponse:  taskResponse(ct.Task, today),
				CalendarColor: ct.Color,
			}
		}
		byDate[day] = entries
	}

	c.JSON(http.StatusOK, MonthResponse{
		Year:        view.Year,
		Month:       view.Month,
		MonthName:   view.MonthName,
		Grid:        view.Grid,
		TasksByDate: byDate,
		Stats:       view.Stats,
		Navigation:  view.Nav,
	})
}

// Day returns the tasks due on one specific date, ordered by priority then
// creation time. A malformed date matches nothing.
func (h *CalendarHandler) Day(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"date": c.Param("date"), "tasks": []TaskResponse{}})
		return
	}

	tasks, err := h.taskRepo.GetByDate(c.Request.Context(), ownerID, date)
	if err != nil {
		h.log.WithError(err).Error("failed to retrieve day tasks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	planner.SortDayTasks(tasks)

	today := h.clock.Now()
	response := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		response[i] = taskResponse(t, today)
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date.Format("2006-01-02"),
		"tasks": response,
	})
}
