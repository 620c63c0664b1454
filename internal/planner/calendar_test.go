package planner_test

import (
	"fmt"
	"testing"
	"time"

	"studytask/internal/model"
	"studytask/internal/planner"

	"github.com/stretchr/testify/assert"
)

func TestMonthGrid_Always42Cells(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month := 1; month <= 12; month++ {
			grid := planner.MonthGrid(year, month)

			assert.Len(t, grid, 6, "%d-%02d", year, month)
			cells := 0
			for _, week := range grid {
				assert.Len(t, week, 7, "%d-%02d", year, month)
				cells += len(week)
			}
			assert.Equal(t, 42, cells, "%d-%02d", year, month)
		}
	}
}

func TestMonthGrid_NonZeroCellsMatchMonthLength(t *testing.T) {
	tests := []struct {
		year, month, days int
	}{
		{2024, 1, 31},
		{2024, 2, 29}, // leap year
		{2025, 2, 28},
		{2024, 4, 30},
		{2024, 12, 31},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-%02d", tt.year, tt.month), func(t *testing.T) {
			grid := planner.MonthGrid(tt.year, tt.month)

			sum := 0
			count := 0
			for _, week := range grid {
				for _, day := range week {
					if day != 0 {
						count++
						sum += day
					}
				}
			}
			assert.Equal(t, tt.days, count)
			assert.Equal(t, tt.days*(tt.days+1)/2, sum, "each day appears exactly once")
		})
	}
}

func TestMonthGrid_MondayFirst(t *testing.T) {
	// January 2024 starts on a Monday.
	jan := planner.MonthGrid(2024, 1)
	assert.Equal(t, 1, jan[0][0])

	// February 2024 starts on a Thursday: three leading zeros.
	feb := planner.MonthGrid(2024, 2)
	assert.Equal(t, []int{0, 0, 0, 1, 2, 3, 4}, feb[0])

	// September 2024 starts on a Sunday, the last Monday-first column.
	sep := planner.MonthGrid(2024, 9)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 1}, sep[0])
}

func TestBuildMonth_NavigationWrapsYears(t *testing.T) {
	jan := planner.BuildMonth(nil, 2024, 1, date(2024, time.January, 5))
	assert.Equal(t, 12, jan.Nav.PrevMonth)
	assert.Equal(t, 2023, jan.Nav.PrevYear)
	assert.Equal(t, "December", jan.Nav.PrevMonthName)
	assert.Equal(t, 2, jan.Nav.NextMonth)
	assert.Equal(t, 2024, jan.Nav.NextYear)

	dec := planner.BuildMonth(nil, 2024, 12, date(2024, time.December, 5))
	assert.Equal(t, 11, dec.Nav.PrevMonth)
	assert.Equal(t, 2024, dec.Nav.PrevYear)
	assert.Equal(t, 1, dec.Nav.NextMonth)
	assert.Equal(t, 2025, dec.Nav.NextYear)
	assert.Equal(t, "January", dec.Nav.NextMonthName)
}

func TestBuildMonth_GroupsTasksByDate(t *testing.T) {
	today := date(2024, time.January, 5)
	tasks := []model.Task{
		task("a", model.PriorityHigh, datePtr(2024, time.January, 10)),
		task("b", model.PriorityLow, datePtr(2024, time.January, 10)),
		task("c", model.PriorityMedium, datePtr(2024, time.January, 20)),
		task("undated", model.PriorityMedium, nil),
	}

	view := planner.BuildMonth(tasks, 2024, 1, today)

	assert.Len(t, view.TasksByDate["2024-01-10"], 2)
	assert.Len(t, view.TasksByDate["2024-01-20"], 1)
	assert.Equal(t, 3, view.Stats.TotalTasks, "undated task is not on the calendar")
	assert.Equal(t, 2, view.Stats.DaysWithTasks)
	assert.Equal(t, "January", view.MonthName)
}

func TestBuildMonth_Colors(t *testing.T) {
	today := date(2024, time.January, 5)
	tasks := []model.Task{
		task("overdue-low", model.PriorityLow, datePtr(2024, time.January, 2)),
		task("high", model.PriorityHigh, datePtr(2024, time.January, 10)),
		task("medium", model.PriorityMedium, datePtr(2024, time.January, 10)),
		task("low", model.PriorityLow, datePtr(2024, time.January, 10)),
	}

	view := planner.BuildMonth(tasks, 2024, 1, today)

	// Overdue beats priority.
	assert.Equal(t, planner.ColorOverdue, view.TasksByDate["2024-01-02"][0].Color)

	day := view.TasksByDate["2024-01-10"]
	assert.Equal(t, planner.ColorHigh, day[0].Color)
	assert.Equal(t, planner.ColorMedium, day[1].Color)
	assert.Equal(t, planner.ColorLow, day[2].Color)
}

func TestBuildMonth_CompletedOverdueStillRed(t *testing.T) {
	// Completion does not suppress the overdue color: the calendar shows
	// schedule pressure, not remaining work.
	today := date(2024, time.January, 5)
	done := task("done", model.PriorityHigh, datePtr(2024, time.January, 4))
	done.Completed = true

	view := planner.BuildMonth([]model.Task{done}, 2024, 1, today)

	assert.Equal(t, planner.ColorOverdue, view.TasksByDate["2024-01-04"][0].Color)
}

func TestBuildMonth_OverdueCountIgnoresCompletion(t *testing.T) {
	today := date(2024, time.January, 5)
	done := task("done", model.PriorityLow, datePtr(2024, time.January, 2))
	done.Completed = true
	tasks := []model.Task{
		done,
		task("open overdue", model.PriorityLow, datePtr(2024, time.January, 3)),
		task("due today", model.PriorityLow, datePtr(2024, time.January, 5)),
		task("future", model.PriorityLow, datePtr(2024, time.January, 20)),
	}

	view := planner.BuildMonth(tasks, 2024, 1, today)

	// Date-only check: both past-due tasks count, today does not.
	assert.Equal(t, 2, view.Stats.OverdueCount)
}

func TestTaskColor_NoDueDateUsesPriority(t *testing.T) {
	today := date(2024, time.January, 5)

	assert.Equal(t, planner.ColorHigh, planner.TaskColor(task("t", model.PriorityHigh, nil), today))
	assert.Equal(t, planner.ColorDefault, planner.TaskColor(task("t", "", nil), today))
}
