// Package reltime renders "expired N units ago" labels for the feed.
package reltime

import (
	"fmt"
	"time"
)

// Calendar-free approximations; the label only needs the coarsest bucket.
const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

// Since buckets the elapsed time between now and the given timestamp into
// the coarsest matching unit, descending from years to seconds. Anything
// under a second reads "expired just now". Timestamps in the future are
// clamped to "expired just now"; the feed never shows unexpired names.
func Since(now, expiredAt time.Time) string {
	elapsed := now.Sub(expiredAt)
	if elapsed < time.Second {
		return "expired just now"
	}

	switch {
	case elapsed >= year:
		return label(int(elapsed/year), "year")
	case elapsed >= month:
		return label(int(elapsed/month), "month")
	case elapsed >= day:
		return label(int(elapsed/day), "day")
	case elapsed >= time.Hour:
		return label(int(elapsed/time.Hour), "hour")
	case elapsed >= time.Minute:
		return label(int(elapsed/time.Minute), "minute")
	default:
		return label(int(elapsed/time.Second), "second")
	}
}

func label(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("expired 1 %s ago", unit)
	}
	return fmt.Sprintf("expired %d %ss ago", n, unit)
}
