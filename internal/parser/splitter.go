package parser

// SplitChat partitions a file's lines into chat traffic (chat and emote
// lines) and everything else, preserving relative order within each stream.
// Session accounting runs on the chatless stream so a player typing
// "* herobrine joined the game" cannot forge a login.
func SplitChat(lines []string) (chat, other []string) {
	chat = make([]string, 0)
	other = make([]string, 0, len(lines))
	for _, line := range lines {
		if IsChatLine(line) {
			chat = append(chat, line)
		} else {
			other = append(other, line)
		}
	}
	return chat, other
}
