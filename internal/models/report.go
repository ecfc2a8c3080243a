package models

import "time"

// Entry is one player row inside a report section. SortKey carries the
// numeric value used for ordering; Value is the already-formatted display
// string (a count, a rate, or a duration).
type Entry struct {
	Name    string  `json:"name" msgpack:"name"`
	Value   string  `json:"value" msgpack:"value"`
	SortKey float64 `json:"-" msgpack:"-"`
}

// Section is one computed metric: a title, a human description and the
// per-player entries sorted by value, highest first.
type Section struct {
	Title       string  `json:"title" msgpack:"title"`
	Description string  `json:"description" msgpack:"description"`
	Entries     []Entry `json:"entries" msgpack:"entries"`
}

// Report is the full rendered result of one invocation.
type Report struct {
	Title       string    `json:"title" msgpack:"title"`
	ID          string    `json:"id" msgpack:"id"`
	GeneratedAt time.Time `json:"generatedAt" msgpack:"generatedAt"`
	Sections    []Section `json:"sections" msgpack:"sections"`
}
