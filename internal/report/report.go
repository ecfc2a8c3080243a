// Package report converts the per-player aggregates into a displayable
// report and renders it as terminal text, HTML or msgpack.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mcstats/mcstats/internal/models"
)

// New returns an empty report shell; sections are appended by the caller in
// the order they should display.
func New(title string) *models.Report {
	return &models.Report{
		Title:       title,
		ID:          uuid.New().String(),
		GeneratedAt: time.Now(),
	}
}

// AddCounts appends a section built from an integer tally.
func AddCounts(r *models.Report, title, description string, counts map[string]int) {
	entries := make([]models.Entry, 0, len(counts))
	for name, n := range counts {
		entries = append(entries, models.Entry{
			Name:    name,
			Value:   fmt.Sprintf("%d", n),
			SortKey: float64(n),
		})
	}
	appendSection(r, title, description, entries)
}

// AddDurations appends a section built from cumulative durations.
func AddDurations(r *models.Report, title, description string, durations map[string]time.Duration) {
	entries := make([]models.Entry, 0, len(durations))
	for name, d := range durations {
		entries = append(entries, models.Entry{
			Name:    name,
			Value:   formatDuration(d),
			SortKey: float64(d),
		})
	}
	appendSection(r, title, description, entries)
}

// AddRates appends a section built from float ratios.
func AddRates(r *models.Report, title, description string, rates map[string]float64) {
	entries := make([]models.Entry, 0, len(rates))
	for name, v := range rates {
		entries = append(entries, models.Entry{
			Name:    name,
			Value:   fmt.Sprintf("%.2f", v),
			SortKey: v,
		})
	}
	appendSection(r, title, description, entries)
}

func appendSection(r *models.Report, title, description string, entries []models.Entry) {
	// Highest value first, name as the tie break.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SortKey != entries[j].SortKey {
			return entries[i].SortKey > entries[j].SortKey
		}
		return entries[i].Name < entries[j].Name
	})
	r.Sections = append(r.Sections, models.Section{
		Title:       title,
		Description: description,
		Entries:     entries,
	})
}

// formatDuration renders a duration the way a server admin reads it:
// whole seconds, hours not wrapped into days.
func formatDuration(d time.Duration) string {
	neg := ""
	if d < 0 {
		neg = "-"
		d = -d
	}
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%s%d:%02d:%02d", neg, h, m, s)
}
