package planner

import (
	"sort"
	"time"

	"studytask/internal/model"
)

// PriorityRank orders priorities high → medium → low. Anything outside the
// enum ranks as medium.
func PriorityRank(p string) int {
	switch p {
	case model.PriorityHigh:
		return 1
	case model.PriorityLow:
		return 3
	default:
		return 2
	}
}

// SortTasks orders a task list for the dashboard: urgency bucket first
// (overdue, due today, due tomorrow, everything else), then priority, then
// due date ascending with undated tasks last. The sort is stable, ties keep
// their fetch order.
func SortTasks(tasks []model.Task, today time.Time) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		ra := ClassifyUrgency(a.DueDate, today).Rank()
		rb := ClassifyUrgency(b.DueDate, today).Rank()
		if ra != rb {
			return ra < rb
		}

		pa, pb := PriorityRank(a.Priority), PriorityRank(b.Priority)
		if pa != pb {
			return pa < pb
		}

		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return false
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		default:
			return DateOnly(*a.DueDate).Before(DateOnly(*b.DueDate))
		}
	})
}

// SortDayTasks orders the tasks of a single calendar day by priority, then
// by creation time.
func SortDayTasks(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		pa, pb := PriorityRank(tasks[i].Priority), PriorityRank(tasks[j].Priority)
		if pa != pb {
			return pa < pb
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
}

// ListStats summarizes a filtered task list.
type ListStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// ComputeListStats counts totals over the filtered result set, not the full
// task table.
func ComputeListStats(tasks []model.Task) ListStats {
	stats := ListStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}
