package tezdomains

import "time"

// Window is the absolute expiry interval the query filters on.
type Window struct {
	From time.Time // older edge
	To   time.Time // newer edge
}

// windowAt derives the sliding window from "now": names that expired
// between fromDays and toDays ago. Recomputed on every fetch so the window
// keeps sliding while the process runs.
func windowAt(now time.Time, fromDays, toDays int) Window {
	return Window{
		From: now.AddDate(0, 0, -fromDays),
		To:   now.AddDate(0, 0, -toDays),
	}
}
