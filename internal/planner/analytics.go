package planner

import (
	"sort"
	"time"

	"studytask/internal/model"
)

// NoSubjectName labels the breakdown bucket for sessions logged without a
// subject.
const NoSubjectName = "No Subject"

// DayStat is one day's study totals.
type DayStat struct {
	Date         string `json:"date"`
	TotalMinutes int    `json:"total_minutes"`
	SessionCount int    `json:"session_count"`
}

// OverallStats are the all-time session totals.
type OverallStats struct {
	TotalMinutes  int     `json:"total_minutes"`
	TotalSessions int     `json:"total_sessions"`
	AvgDuration   float64 `json:"avg_duration"`
}

// SubjectStat is one subject's share of the study time.
type SubjectStat struct {
	Name         string `json:"name"`
	TotalMinutes int    `json:"total_minutes"`
	SessionCount int    `json:"session_count"`
}

// WeeklyStats buckets the trailing seven days of sessions by calendar date,
// most recent first. Days without sessions are omitted.
func WeeklyStats(sessions []model.StudySession, today time.Time) []DayStat {
	cutoff := DateOnly(today).AddDate(0, 0, -7)

	byDate := make(map[string]*DayStat)
	for _, s := range sessions {
		day := DateOnly(s.CreatedAt)
		if day.Before(cutoff) {
			continue
		}
		key := day.Format("2006-01-02")
		stat, ok := byDate[key]
		if !ok {
			stat = &DayStat{Date: key}
			byDate[key] = stat
		}
		stat.TotalMinutes += s.DurationMinutes
		stat.SessionCount++
	}

	stats := make([]DayStat, 0, len(byDate))
	for _, stat := range byDate {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date > stats[j].Date
	})
	return stats
}

// ComputeOverall sums all-time duration, count and average.
func ComputeOverall(sessions []model.StudySession) OverallStats {
	stats := OverallStats{TotalSessions: len(sessions)}
	for _, s := range sessions {
		stats.TotalMinutes += s.DurationMinutes
	}
	if stats.TotalSessions > 0 {
		stats.AvgDuration = float64(stats.TotalMinutes) / float64(stats.TotalSessions)
	}
	return stats
}

// SubjectBreakdown totals study time per subject, descending by minutes.
// Sessions without a subject are grouped under NoSubjectName.
func SubjectBreakdown(sessions []model.StudySession) []SubjectStat {
	byName := make(map[string]*SubjectStat)
	order := make([]string, 0)

	for _, s := range sessions {
		name := NoSubjectName
		if s.Subject != nil {
			name = s.Subject.Name
		}
		stat, ok := byName[name]
		if !ok {
			stat = &SubjectStat{Name: name}
			byName[name] = stat
			order = append(order, name)
		}
		stat.TotalMinutes += s.DurationMinutes
		stat.SessionCount++
	}

	stats := make([]SubjectStat, 0, len(order))
	for _, name := range order {
		stats = append(stats, *byName[name])
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalMinutes > stats[j].TotalMinutes
	})
	return stats
}

// Streak counts consecutive calendar days with at least one session, ending
// at the most recent study day and walking backward until the first gap.
// Any non-empty history yields a streak of at least one.
func Streak(sessions []model.StudySession) int {
	seen := make(map[time.Time]bool)
	dates := make([]time.Time, 0)
	for _, s := range sessions {
		day := DateOnly(s.CreatedAt)
		if !seen[day] {
			seen[day] = true
			dates = append(dates, day)
		}
	}
	if len(dates) == 0 {
		return 0
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	streak := 1
	for i := 1; i < len(dates); i++ {
		if !dates[i-1].AddDate(0, 0, -1).Equal(dates[i]) {
			break
		}
		streak++
	}
	return streak
}
