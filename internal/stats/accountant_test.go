package stats

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcstats/mcstats/internal/diag"
	"github.com/mcstats/mcstats/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixture(name string, date time.Time, lines ...string) models.LogFile {
	return models.LogFile{Name: name, Date: date, Lines: lines}
}

func TestSingleSession(t *testing.T) {
	a := NewAccountant(diag.Discard())
	a.ProcessFile(fixture("2014-03-28-1.log", day(2014, time.March, 28),
		"[10:00:00] [Server thread/INFO]: herobrine joined the game",
		"[10:05:00] [Server thread/INFO]: herobrine left the game",
	))

	totals := a.Totals()
	require.Len(t, totals, 1)
	assert.Equal(t, 5*time.Minute, totals["herobrine"])
	assert.Empty(t, a.OpenSessions())
}

func TestKickAndConnectionLostEndSessions(t *testing.T) {
	a := NewAccountant(diag.Discard())
	a.ProcessFile(fixture("2014-03-28-1.log", day(2014, time.March, 28),
		"[10:00:00] [Server thread/INFO]: herobrine joined the game",
		"[10:01:00] [Server thread/INFO]: notch joined the game",
		"[10:10:00] [Server thread/INFO]: Kicked herobrine from the game: 'bye'",
		"[10:21:00] [Server thread/INFO]: notch lost connection: TextComponent{text='Disconnected'}",
	))

	totals := a.Totals()
	assert.Equal(t, 10*time.Minute, totals["herobrine"])
	assert.Equal(t, 20*time.Minute, totals["notch"])
	assert.Empty(t, a.OpenSessions())
}

func TestServerStopChargesEveryone(t *testing.T) {
	a := NewAccountant(diag.Discard())
	a.ProcessFile(fixture("2014-03-28-1.log", day(2014, time.March, 28),
		"[10:00:00] [Server thread/INFO]: herobrine joined the game",
		"[10:30:00] [Server thread/INFO]: notch joined the game",
		"[11:00:00] [Server thread/INFO]: Stopping the server",
	))

	totals := a.Totals()
	assert.Equal(t, time.Hour, totals["herobrine"])
	assert.Equal(t, 30*time.Minute, totals["notch"])
	assert.Empty(t, a.OpenSessions())
}

func TestUncleanShutdownRecovery(t *testing.T) {
	a := NewAccountant(diag.Discard())
	// File A ends with both players still online; the last parseable line
	// is at 11:00:00.
	a.ProcessFile(fixture("2014-03-28-1.log", day(2014, time.March, 28),
		"[10:00:00] [Server thread/INFO]: herobrine joined the game",
		"[10:10:00] [Server thread/INFO]: notch joined the game",
		"[11:00:00] [Server thread/INFO]: Saving chunks",
	))
	require.Len(t, a.OpenSessions(), 2)

	// File B opens with a fresh start: a login inside the lookahead window.
	a.ProcessFile(fixture("2014-03-29-1.log", day(2014, time.March, 29),
		"[08:00:00] [Server thread/INFO]: Starting minecraft server version 1.7.2",
		"[08:00:05] [Server thread/INFO]: notch joined the game",
	))

	totals := a.Totals()
	// Sessions from file A are truncated at A's last known timestamp.
	assert.Equal(t, time.Hour, totals["herobrine"])
	assert.Equal(t, 50*time.Minute, totals["notch"])
	// Only notch's fresh session is open; neither leftover was carried over.
	assert.Equal(t, []string{"notch"}, a.OpenSessions())
}

func TestCleanRotationSpansFiles(t *testing.T) {
	a := NewAccountant(diag.Discard())
	// No login in file B's lookahead window: the server kept running and
	// the session spans the rotation boundary.
	a.ProcessFile(fixture("2014-03-28-1.log", day(2014, time.March, 28),
		"[23:00:00] [Server thread/INFO]: herobrine joined the game",
	))
	a.ProcessFile(fixture("2014-03-29-1.log", day(2014, time.March, 29),
		"[01:00:00] [Server thread/INFO]: herobrine left the game",
	))

	totals := a.Totals()
	assert.Equal(t, 2*time.Hour, totals["herobrine"])
}

func TestDuplicateLoginOverwrites(t *testing.T) {
	a := NewAccountant(diag.Discard())
	a.ProcessFile(fixture("2014-03-28-1.log", day(2014, time.March, 28),
		"[10:00:00] [Server thread/INFO]: herobrine joined the game",
		"[10:30:00] [Server thread/INFO]: herobrine joined the game",
		"[11:00:00] [Server thread/INFO]: herobrine left the game",
	))

	// Latest write wins: the session is charged from the second login.
	assert.Equal(t, 30*time.Minute, a.Totals()["herobrine"])
}

func TestRedundantPartIsNoOp(t *testing.T) {
	a := NewAccountant(diag.Discard())
	a.ProcessFile(fixture("2014-03-28-1.log", day(2014, time.March, 28),
		"[10:00:00] [Server thread/INFO]: herobrine left the game",
	))

	assert.Empty(t, a.Totals())
	assert.Empty(t, a.OpenSessions())
}

func TestTrailingSessionDropped(t *testing.T) {
	a := NewAccountant(diag.Discard())
	a.ProcessFile(fixture("latest.log", day(2014, time.March, 28),
		"[10:00:00] [Server thread/INFO]: herobrine joined the game",
	))

	// No observed end: not charged, only reported as open.
	assert.Empty(t, a.Totals())
	assert.Equal(t, []string{"herobrine"}, a.OpenSessions())
}

func TestNegativeSessionFlaggedAndAccumulated(t *testing.T) {
	var buf bytes.Buffer
	rep := diag.New(&buf, false)
	rep.SetColor(false)

	a := NewAccountant(rep)
	// A log rolled over midnight but both lines carry the same date: the
	// leave now precedes the join.
	a.ProcessFile(fixture("2014-03-28-1.log", day(2014, time.March, 28),
		"[23:00:00] [Server thread/INFO]: herobrine joined the game",
		"[01:00:00] [Server thread/INFO]: herobrine left the game",
	))

	// The out-of-order interval is reported but still lands in the total.
	assert.Equal(t, -22*time.Hour, a.Totals()["herobrine"])
	assert.Contains(t, buf.String(), "negative session for herobrine")
}

func TestMalformedLinesSkipped(t *testing.T) {
	a := NewAccountant(diag.Discard())
	a.ProcessFile(fixture("2014-03-28-1.log", day(2014, time.March, 28),
		"[10:00:00] [Server thread/INFO]: herobrine joined the game",
		"java.lang.OutOfMemoryError: Java heap space",
		"        at net.minecraft.server.MinecraftServer.run",
		"[10:05:00] [Server thread/INFO]: herobrine left the game",
	))

	assert.Equal(t, 5*time.Minute, a.Totals()["herobrine"])
}

func TestDateFallbackUsesCurrentDate(t *testing.T) {
	a := NewAccountant(diag.Discard())
	a.now = func() time.Time { return time.Date(2014, time.March, 28, 22, 15, 0, 0, time.UTC) }

	a.ProcessFile(models.LogFile{Name: "latest.log", Lines: []string{
		"[10:00:00] [Server thread/INFO]: herobrine joined the game",
		"[10:01:30] [Server thread/INFO]: herobrine left the game",
	}})

	assert.Equal(t, 90*time.Second, a.Totals()["herobrine"])
}

// Feeding files out of order changes online-time reconstruction; this is
// documented behavior, not a bug.
func TestFileOrderMatters(t *testing.T) {
	fileA := fixture("2014-03-28-1.log", day(2014, time.March, 28),
		"[10:00:00] [Server thread/INFO]: herobrine joined the game",
		"[11:00:00] [Server thread/INFO]: Saving chunks",
	)
	fileB := fixture("2014-03-29-1.log", day(2014, time.March, 29),
		"[08:00:00] [Server thread/INFO]: notch joined the game",
		"[09:00:00] [Server thread/INFO]: notch left the game",
	)

	forward := NewAccountant(diag.Discard())
	forward.ProcessFile(fileA)
	forward.ProcessFile(fileB)

	backward := NewAccountant(diag.Discard())
	backward.ProcessFile(fileB)
	backward.ProcessFile(fileA)

	// Forward order: herobrine's session is truncated at file A's last
	// timestamp by unclean-shutdown recovery. Backward order never closes it.
	assert.Equal(t, time.Hour, forward.Totals()["herobrine"])
	_, charged := backward.Totals()["herobrine"]
	assert.False(t, charged)
}
