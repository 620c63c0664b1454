package planner_test

import (
	"testing"
	"time"

	"studytask/internal/planner"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestClassifyUrgency(t *testing.T) {
	today := date(2024, time.January, 5)

	tests := []struct {
		name string
		due  *time.Time
		want planner.Urgency
	}{
		{"no due date", nil, planner.UrgencyNone},
		{"overdue", datePtr(2024, time.January, 1), planner.UrgencyOverdue},
		{"due today", datePtr(2024, time.January, 5), planner.UrgencyToday},
		{"due tomorrow", datePtr(2024, time.January, 6), planner.UrgencyTomorrow},
		{"future", datePtr(2024, time.January, 20), planner.UrgencyNone},
		{"far past", datePtr(2020, time.June, 1), planner.UrgencyOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, planner.ClassifyUrgency(tt.due, today))
		})
	}
}

func TestClassifyUrgency_IgnoresTimeOfDay(t *testing.T) {
	// A due date late in the evening of "today" is still due today, not
	// overdue or tomorrow.
	today := time.Date(2024, time.January, 5, 23, 30, 0, 0, time.UTC)
	due := time.Date(2024, time.January, 5, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, planner.UrgencyToday, planner.ClassifyUrgency(&due, today))
}

func TestUrgencyRank(t *testing.T) {
	assert.Equal(t, 1, planner.UrgencyOverdue.Rank())
	assert.Equal(t, 2, planner.UrgencyToday.Rank())
	assert.Equal(t, 3, planner.UrgencyTomorrow.Rank())
	assert.Equal(t, 4, planner.UrgencyNone.Rank())
}

func TestParseDate(t *testing.T) {
	// Valid dates parse
	parsed := planner.ParseDate("2024-01-05")
	assert.NotNil(t, parsed)
	assert.Equal(t, date(2024, time.January, 5), *parsed)

	// Malformed input degrades to nil instead of erroring
	assert.Nil(t, planner.ParseDate(""))
	assert.Nil(t, planner.ParseDate("not-a-date"))
	assert.Nil(t, planner.ParseDate("2024-13-45"))
	assert.Nil(t, planner.ParseDate("05/01/2024"))
}

func TestParseDate_MalformedClassifiesAsNone(t *testing.T) {
	today := date(2024, time.January, 5)
	assert.Equal(t, planner.UrgencyNone, planner.ClassifyUrgency(planner.ParseDate("garbage"), today))
}
