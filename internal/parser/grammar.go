// Package parser classifies Minecraft server log lines against the fixed
// vanilla-server line grammar and splits chat traffic from the rest.
package parser

import "regexp"

// Kind names one recognizable line event.
type Kind string

const (
	// KindLogin matches "<player> joined the game".
	KindLogin Kind = "login"
	// KindLogout matches "<player> left the game".
	KindLogout Kind = "logout"
	// KindKick matches "Kicked <player> from the game".
	KindKick Kind = "kick"
	// KindConnLost matches "<player> lost connection:".
	KindConnLost Kind = "connection-lost"
	// KindServerStop matches "Stopping [the ]server". No actor.
	KindServerStop Kind = "server-stop"
	// KindServerStart matches "Starting [Mm]inecraft server ...". No actor.
	KindServerStart Kind = "server-start"
	// KindChat matches the action form "* <player> <text>".
	KindChat Kind = "chat"
	// KindEmote matches the bracketed form "<player> <text>".
	KindEmote Kind = "emote"
	// KindTime captures the HH:MM:SS prefix of any well-formed line.
	KindTime Kind = "time"
	// KindName captures the first token after the log preamble; the fallback
	// actor when no specific event matched (death attribution).
	KindName Kind = "name"
	// KindFileDate captures a YYYY-MM-DD fragment from a file name.
	KindFileDate Kind = "file-date"
)

// grammar is the single table of line patterns. There is exactly one grammar
// version, so plain named patterns suffice; the individual patterns are
// mutually exclusive for real server output.
var grammar = map[Kind]*regexp.Regexp{
	// ex: [10:42:23] [Server thread/INFO]: herobrine joined the game
	KindLogin: regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[Server thread/INFO\]: (\S+) joined the game`),
	// ex: [10:42:23] [Server thread/INFO]: herobrine left the game
	KindLogout: regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[Server thread/INFO\]: (\S+) left the game`),
	// ex: [10:42:23] [Server thread/INFO]: Kicked herobrine from the game: 'bye'
	KindKick: regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[Server thread/INFO\]: Kicked (\S+) from the game`),
	// ex: [10:42:23] [Server thread/INFO]: herobrine lost connection: TextComponent...
	KindConnLost: regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[Server thread/INFO\]: (\S+) lost connection:`),
	// ex: [10:42:23] [Server thread/INFO]: Stopping the server
	// ex: [10:42:23] [Server thread/INFO]: Stopping server
	KindServerStop: regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[Server thread/INFO\]: Stopping( the)* server`),
	// ex: [17:28:14] [Server thread/INFO]: Starting minecraft server version 1.7.2
	// ex: [17:28:15] [Server thread/INFO]: Starting Minecraft server on 192.169.0.1:25566
	// ex: [15:35:24] [Server thread/INFO]: Starting minecraft server version 14w11a
	KindServerStart: regexp.MustCompile(`\[\d{2}:\d{2}:\d{2}\] \[[\w\s]+/[A-Z]+\]: Starting [Mm]inecraft server (on \d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}:\d{1,5}|version (\d+\.\d+\.\d+|\d{2}w\d{2}[a-z]*))`),
	// ex: [17:42:42] [Server thread/INFO]: * herobrine waves
	KindChat: regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[Server thread/INFO\]: \* (\S+)`),
	// ex: [17:42:23] [Server thread/INFO]: <herobrine> nice game
	KindEmote: regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[Server thread/INFO\]: <(\S+)>`),
	// ex: [10:42:23] [<thread>/<INFO|WARN|...>]: <message>
	KindTime: regexp.MustCompile(`^\[(\d{2}:\d{2}:\d{2})\]`),
	// ex: [23:42:00] [Server thread/INFO]: herobrine drowned
	KindName: regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[Server thread/INFO\]: (\S+)`),
	// ex: 2014-03-28
	KindFileDate: regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
}

// Match tests line against the grammar for kind. It returns the captured
// field (the actor for player events, the time-of-day for KindTime, the date
// fragment for KindFileDate, empty for the actorless server events) and
// whether the line matched. A non-match is the normal case, not an error.
func Match(kind Kind, line string) (string, bool) {
	re, ok := grammar[kind]
	if !ok {
		return "", false
	}
	m := re.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	switch kind {
	case KindServerStop, KindServerStart:
		return "", true
	}
	return m[1], true
}

// IsChatLine reports whether the line is chat traffic in either form.
func IsChatLine(line string) bool {
	if _, ok := Match(KindChat, line); ok {
		return true
	}
	_, ok := Match(KindEmote, line)
	return ok
}
