package stats

import (
	"github.com/mcstats/mcstats/internal/diag"
	"github.com/mcstats/mcstats/internal/models"
	"github.com/mcstats/mcstats/internal/parser"
)

// Logins counts "joined the game" events per player over the chatless
// streams. Unlike online-time accounting the result is order-independent.
func Logins(files []models.LogFile) map[string]int {
	logins := make(map[string]int)
	for _, f := range files {
		for _, line := range f.Lines {
			if actor, ok := parser.Match(parser.KindLogin, line); ok {
				logins[actor]++
			}
		}
	}
	return logins
}

// Chats counts chat and emote messages per player over the chat streams.
// Every line fed in should already be chat traffic; anything that matches
// neither form is reported and skipped.
func Chats(files []models.LogFile, rep *diag.Reporter) map[string]int {
	chats := make(map[string]int)
	for _, f := range files {
		for _, line := range f.Lines {
			if line == "" {
				continue
			}
			actor, ok := parser.Match(parser.KindChat, line)
			if !ok {
				actor, ok = parser.Match(parser.KindEmote, line)
			}
			if !ok {
				rep.Problemf("chats", "chat line matches neither chat nor emote:\n\t%s", line)
				continue
			}
			chats[actor]++
		}
	}
	return chats
}

// Deaths counts death events per player over the chatless streams. A line
// counts as a death when it contains any of the supplied cause phrases; the
// victim is the first token after the log preamble. Death lines with no
// extractable name are reported and dropped.
func Deaths(files []models.LogFile, causes parser.DeathCauses, rep *diag.Reporter) map[string]int {
	deaths := make(map[string]int)
	for _, f := range files {
		for _, line := range f.Lines {
			if !causes.Matches(line) {
				continue
			}
			actor, ok := parser.Match(parser.KindName, line)
			if !ok {
				rep.Problemf("deaths", "found a line with a death, but no player name:\n\t%s", line)
				continue
			}
			deaths[actor]++
		}
	}
	return deaths
}
