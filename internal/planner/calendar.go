package planner

import (
	"time"

	"studytask/internal/model"
)

// Calendar display colors. Overdue wins over priority, and the computed
// value always overrides any stored subject color.
const (
	ColorOverdue = "#ff0000"
	ColorHigh    = "#ff4444"
	ColorMedium  = "#ffaa00"
	ColorLow     = "#44ff44"
	ColorDefault = "#666666"
)

// CalendarTask is a task annotated with its display color for the month
// view.
type CalendarTask struct {
	Task  model.Task
	Color string
}

// MonthStats summarizes one month of tasks. OverdueCount is a date-only
// check: completed tasks past their due date still count.
type MonthStats struct {
	TotalTasks    int `json:"total_tasks"`
	DaysWithTasks int `json:"days_with_tasks"`
	OverdueCount  int `json:"overdue_count"`
}

// Navigation points at the adjacent months, wrapping year boundaries.
type Navigation struct {
	PrevYear      int    `json:"prev_year"`
	PrevMonth     int    `json:"prev_month"`
	PrevMonthName string `json:"prev_month_name"`
	NextYear      int    `json:"next_year"`
	NextMonth     int    `json:"next_month"`
	NextMonthName string `json:"next_month_name"`
}

// MonthView is everything the calendar page needs for one month.
type MonthView struct {
	Year        int
	Month       int
	MonthName   string
	Grid        [][]int
	TasksByDate map[string][]CalendarTask
	Stats       MonthStats
	Nav         Navigation
}

// TaskColor derives the calendar display color for a task: red when the due
// date is strictly before today, otherwise by priority.
func TaskColor(t model.Task, today time.Time) string {
	if t.DueDate != nil && DateOnly(*t.DueDate).Before(DateOnly(today)) {
		return ColorOverdue
	}
	switch t.Priority {
	case model.PriorityHigh:
		return ColorHigh
	case model.PriorityMedium:
		return ColorMedium
	case model.PriorityLow:
		return ColorLow
	default:
		return ColorDefault
	}
}

// MonthGrid builds a Monday-first day-of-month grid. It is always 6 weeks of
// 7 cells; cells outside the month are zero.
func MonthGrid(year, month int) [][]int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Monday-first offset of the month's first day.
	offset := (int(first.Weekday()) + 6) % 7

	grid := make([][]int, 6)
	day := 1
	for w := 0; w < 6; w++ {
		week := make([]int, 7)
		for d := 0; d < 7; d++ {
			cell := w*7 + d
			if cell >= offset && day <= daysInMonth {
				week[d] = day
				day++
			}
		}
		grid[w] = week
	}
	return grid
}

// BuildMonth aggregates a month's tasks into the calendar view: the day
// grid, per-date task buckets with display colors, month statistics and
// navigation. tasks must already be restricted to the owner and month;
// tasks without a due date are skipped.
func BuildMonth(tasks []model.Task, year, month int, today time.Time) MonthView {
	byDate := make(map[string][]CalendarTask)
	todayDate := DateOnly(today)

	overdue := 0
	total := 0
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		total++
		due := DateOnly(*t.DueDate)
		key := due.Format("2006-01-02")
		byDate[key] = append(byDate[key], CalendarTask{
			Task:  t,
			Color: TaskColor(t, today),
		})
		if due.Before(todayDate) {
			overdue++
		}
	}

	prevYear, prevMonth := year, month-1
	if month == 1 {
		prevYear, prevMonth = year-1, 12
	}
	nextYear, nextMonth := year, month+1
	if month == 12 {
		nextYear, nextMonth = year+1, 1
	}

	return MonthView{
		Year:        year,
		Month:       month,
		MonthName:   time.Month(month).String(),
		Grid:        MonthGrid(year, month),
		TasksByDate: byDate,
		Stats: MonthStats{
			TotalTasks:    total,
			DaysWithTasks: len(byDate),
			OverdueCount:  overdue,
		},
		Nav: Navigation{
			PrevYear:      prevYear,
			PrevMonth:     prevMonth,
			PrevMonthName: time.Month(prevMonth).String(),
			NextYear:      nextYear,
			NextMonth:     nextMonth,
			NextMonthName: time.Month(nextMonth).String(),
		},
	}
}
