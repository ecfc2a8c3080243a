// Package models contains domain types for the Minecraft log statistics tool.
package models

import "time"

// LogFile is the acquired content of a single server log, ready for
// classification. Date is the calendar day the log covers, extracted from the
// file name; it is the zero time when the name carries no date (a live
// latest.log, for example) and the consumer falls back to the current date.
type LogFile struct {
	Path  string
	Name  string
	Date  time.Time
	Lines []string
}

// HasDate reports whether a calendar date was found in the file name.
func (f *LogFile) HasDate() bool {
	return !f.Date.IsZero()
}
