// Package stats turns classified log lines into per-player aggregates:
// cumulative online time, simple event tallies and derived ratios.
package stats

import (
	"sort"
	"time"

	"github.com/mcstats/mcstats/internal/diag"
	"github.com/mcstats/mcstats/internal/models"
	"github.com/mcstats/mcstats/internal/parser"
)

// startupWindow is how many lines at the top of a file are scanned for a
// login when deciding whether the file is a fresh server start.
const startupWindow = 10

// Accountant reconstructs per-player online time from the chatless line
// stream. State is carried across files in the order they are fed in:
// sessions legitimately span file boundaries when logs are rotated while the
// server keeps running, so feeding files out of order changes the result.
type Accountant struct {
	online   map[string]time.Time
	totals   map[string]time.Duration
	lastTime time.Time
	hasLast  bool

	rep *diag.Reporter
	now func() time.Time
}

// NewAccountant returns an Accountant reporting diagnostics to rep.
func NewAccountant(rep *diag.Reporter) *Accountant {
	return &Accountant{
		online: make(map[string]time.Time),
		totals: make(map[string]time.Duration),
		rep:    rep,
		now:    time.Now,
	}
}

// ProcessFile accounts one file's lines. Files must be fed in chronological
// order; the file's lines are assumed to already have chat traffic removed.
func (a *Accountant) ProcessFile(f models.LogFile) {
	date := f.Date
	if !f.HasDate() {
		// Live logs (latest.log) carry no date in the name; assume today.
		date = a.now()
		a.rep.Verbosef("%s: no date in file name, assuming %s", f.Name, date.Format("2006-01-02"))
	}

	a.recoverUncleanShutdown(f)

	for _, line := range f.Lines {
		if line == "" {
			continue
		}
		tod, ok := parser.Match(parser.KindTime, line)
		if !ok {
			// Stack traces and wrapped lines land here; skip without
			// touching lastTime.
			a.rep.Problemf("online-time", "line contains no timestamp:\n\t%s", line)
			continue
		}
		ts, err := combine(date, tod)
		if err != nil {
			a.rep.Problemf("online-time", "unparseable time %q:\n\t%s", tod, line)
			continue
		}
		a.lastTime = ts
		a.hasLast = true
		a.processEvent(line, ts)
	}
}

// processEvent applies a single timestamped line to the online set.
func (a *Accountant) processEvent(line string, ts time.Time) {
	if actor, ok := parser.Match(parser.KindLogin, line); ok {
		if _, already := a.online[actor]; already {
			// Should not happen in a well-formed log; the later login wins.
			a.rep.Problemf("online-time", "%s logs in while already online, overwriting:\n\t%s", actor, line)
		}
		a.online[actor] = ts
		return
	}

	// Logout must be tried before kick and connection-lost: its grammar is
	// the least specific of the three.
	for _, kind := range []parser.Kind{parser.KindLogout, parser.KindKick, parser.KindConnLost} {
		actor, ok := parser.Match(kind, line)
		if !ok {
			continue
		}
		from, online := a.online[actor]
		if !online {
			a.rep.Verbosef("redundant part message: %s", line)
			return
		}
		delete(a.online, actor)
		a.charge(actor, from, ts, line)
		return
	}

	if _, ok := parser.Match(parser.KindServerStop, line); ok {
		a.closeAll(ts, line)
		return
	}

	a.rep.Verbosef("line contained no join/part/stop message:\n\t%s", line)
}

// recoverUncleanShutdown detects a server that died without logging a stop:
// the next file opens with a fresh login while players are still marked
// online. Those sessions are closed at the last timestamp the server was
// known to be alive, taken from the previous file.
func (a *Accountant) recoverUncleanShutdown(f models.LogFile) {
	if len(a.online) == 0 {
		return
	}
	window := f.Lines
	if len(window) > startupWindow {
		window = window[:startupWindow]
	}
	for _, line := range window {
		if _, ok := parser.Match(parser.KindLogin, line); !ok {
			continue
		}
		if !a.hasLast {
			// Nothing to charge against; drop the sessions rather than
			// invent an endpoint.
			a.rep.Problemf("online-time", "unclean shutdown with no prior timestamp, dropping %d open sessions", len(a.online))
			a.online = make(map[string]time.Time)
			return
		}
		a.rep.Verbosef("unclean shutdown, parting users at last known time the server was running")
		a.closeAll(a.lastTime, f.Name)
		return
	}
}

// closeAll charges every online player through ts and empties the set.
func (a *Accountant) closeAll(ts time.Time, context string) {
	// Collect first, then delete: never mutate the map mid-iteration.
	actors := make([]string, 0, len(a.online))
	for actor := range a.online {
		actors = append(actors, actor)
	}
	sort.Strings(actors)
	for _, actor := range actors {
		from := a.online[actor]
		delete(a.online, actor)
		a.charge(actor, from, ts, context)
	}
}

// charge adds one closed session to the player's total. A negative interval
// means the timestamps are out of order, usually a date-fallback crossing a
// day boundary; it is flagged but still accumulated.
func (a *Accountant) charge(actor string, from, to time.Time, context string) {
	d := to.Sub(from)
	if d < 0 {
		a.rep.Problemf("online-time", "negative session for %s (%s): check file order and dates near %s", actor, d, context)
	}
	a.totals[actor] += d
}

// Totals returns the accumulated online time per player. Players still in
// the online set at the end of the run have no observed session end and are
// deliberately not charged: only time between two definite endpoints counts.
func (a *Accountant) Totals() map[string]time.Duration {
	out := make(map[string]time.Duration, len(a.totals))
	for k, v := range a.totals {
		out[k] = v
	}
	return out
}

// OpenSessions returns the players whose sessions never ended, for
// diagnostics.
func (a *Accountant) OpenSessions() []string {
	actors := make([]string, 0, len(a.online))
	for actor := range a.online {
		actors = append(actors, actor)
	}
	sort.Strings(actors)
	return actors
}

// combine attaches a HH:MM:SS time of day to a calendar date.
func combine(date time.Time, tod string) (time.Time, error) {
	t, err := time.Parse("15:04:05", tod)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
}
