package cmd

import (
	"fmt"

	"github.com/mcstats/mcstats/internal/config"
	"github.com/mcstats/mcstats/internal/diag"
	"github.com/mcstats/mcstats/internal/logfile"
	"github.com/mcstats/mcstats/internal/models"
	"github.com/mcstats/mcstats/internal/parser"
	"github.com/mcstats/mcstats/internal/report"
	"github.com/mcstats/mcstats/internal/stats"
)

// buildReport runs the whole pipeline for the selected metrics: acquisition,
// chat split, accounting, tallies, derived ratios, section assembly.
func buildReport(cfg *config.Config, rep *diag.Reporter, paths []string) (*models.Report, error) {
	files := logfile.ReadAll(paths, rep)
	if len(files) == 0 {
		return nil, fmt.Errorf("none of the %d given paths could be read", len(paths))
	}

	// Chat traffic is split off once; accounting and the login/death
	// tallies run on the chatless stream, the chat tally on the rest.
	chatless := make([]models.LogFile, len(files))
	chatOnly := make([]models.LogFile, len(files))
	for i, f := range files {
		chatLines, otherLines := parser.SplitChat(f.Lines)
		chatless[i] = f
		chatless[i].Lines = otherLines
		chatOnly[i] = f
		chatOnly[i].Lines = chatLines
	}

	var (
		chatResult  map[string]int
		deathResult map[string]int
		loginResult map[string]int
	)

	r := report.New(cfg.Report.Title)

	if opts.chat {
		chatResult = stats.Chats(chatOnly, rep)
		report.AddCounts(r, "Chats", "Number of times each player used the chat.", chatResult)
	}
	if opts.deaths {
		causes, err := parser.LoadDeathCauses(cfg.DeathList)
		if err != nil {
			return nil, err
		}
		deathResult = stats.Deaths(chatless, causes, rep)
		report.AddCounts(r, "Deaths", "Number of times each player died.", deathResult)
	}
	if opts.logins {
		loginResult = stats.Logins(chatless)
		report.AddCounts(r, "Logins", "Number of times each player logged in.", loginResult)
	}

	var online *stats.Accountant
	if opts.onlineTime {
		online = stats.NewAccountant(rep)
		for _, f := range chatless {
			online.ProcessFile(f)
		}
		if open := online.OpenSessions(); len(open) > 0 {
			rep.Verbosef("dropping %d sessions with no observed end: %v", len(open), open)
		}
		report.AddDurations(r, "Online Time", "Time each player was online.", online.Totals())
	}

	if opts.byLogin {
		if opts.chat {
			report.AddRates(r, "Chats by Logins",
				"Number of times each player used the chat by number of logins.",
				stats.PerLogin(chatResult, loginResult))
		}
		if opts.deaths {
			report.AddRates(r, "Deaths by Logins",
				"Number of times each player died by number of logins.",
				stats.PerLogin(deathResult, loginResult))
		}
	}

	if opts.byTime && online != nil {
		onlineTotals := online.Totals()
		if opts.chat {
			report.AddDurations(r, "Time by Chat",
				"Time each player was online per chat message.",
				stats.TimePer(onlineTotals, chatResult))
		}
		if opts.deaths {
			report.AddDurations(r, "Time by Death",
				"Time each player was online per death.",
				stats.TimePer(onlineTotals, deathResult))
		}
		if opts.logins {
			report.AddDurations(r, "Time by Login",
				"Time each player was online per login.",
				stats.TimePer(onlineTotals, loginResult))
		}
	}

	return r, nil
}
