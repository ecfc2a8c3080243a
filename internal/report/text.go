package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcstats/mcstats/internal/models"
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true)
	styleDesc    = lipgloss.NewStyle().Faint(true)
	styleName    = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
)

// WriteText renders the report as styled terminal output, one block per
// section. With color disabled the same layout is written unstyled.
func WriteText(w io.Writer, r *models.Report, color bool) error {
	for i, sec := range r.Sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		heading := sec.Title + ":"
		desc := sec.Description
		if color {
			heading = styleHeading.Render(heading)
			desc = styleDesc.Render(desc)
		}
		if _, err := fmt.Fprintln(w, heading); err != nil {
			return err
		}
		fmt.Fprintf(w, "\t%s\n", desc)
		for _, e := range sec.Entries {
			name := e.Name
			if color {
				name = styleName.Render(name)
			}
			fmt.Fprintf(w, "\t%s: %s\n", name, e.Value)
		}
	}
	return nil
}
