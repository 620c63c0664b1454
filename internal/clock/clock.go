package clock

import "time"

// Clock provides the current time. Urgency, calendar colors and streaks all
// depend on "today", so it is injected rather than read from time.Now inline.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Real returns a Clock backed by time.Now.
func Real() Clock { return realClock{} }

// Fixed returns a Clock pinned to t.
func Fixed(t time.Time) Clock { return fixedClock{t} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
