// Package export renders task lists into downloadable plain-text reports.
package export

import (
	"fmt"
	"strings"
	"time"

	"studytask/internal/model"
)

// TaskListText formats a filtered task list as a printable text report.
func TaskListText(username string, tasks []model.Task, now time.Time) string {
	var b strings.Builder

	b.WriteString("Student Task Manager - Task List\n")
	fmt.Fprintf(&b, "Generated on: %s\n", now.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "User: %s\n", username)
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, t := range tasks {
		status := "⏳ PENDING"
		if t.Completed {
			status = "✅ COMPLETED"
		}

		subject := "No Subject"
		if t.Subject != nil {
			subject = t.Subject.Name
		}

		due := "none"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}

		fmt.Fprintf(&b, "TITLE: %s\n", t.Title)
		fmt.Fprintf(&b, "SUBJECT: %s\n", subject)
		fmt.Fprintf(&b, "PRIORITY: %s | DUE: %s | STATUS: %s\n", strings.ToUpper(t.Priority), due, status)
		if t.Description != "" {
			fmt.Fprintf(&b, "DESCRIPTION: %s\n", t.Description)
		}
		b.WriteString(strings.Repeat("-", 30) + "\n")
	}

	return b.String()
}

// Filename names the attachment after the day it was generated.
func Filename(now time.Time) string {
	return fmt.Sprintf("tasks_%s.txt", now.Format("20060102"))
}
