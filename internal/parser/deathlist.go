package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DeathCauses is the externally-supplied list of death message fragments,
// loaded once at startup. Matching is plain substring containment against a
// log line, in list order.
type DeathCauses []string

// LoadDeathCauses reads a newline-delimited list of death-cause phrases.
// Blank lines are ignored.
func LoadDeathCauses(path string) (DeathCauses, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening death list: %w", err)
	}
	defer f.Close()

	causes := make(DeathCauses, 0, 64)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		causes = append(causes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading death list: %w", err)
	}
	return causes, nil
}

// Matches reports whether the line contains any of the death phrases.
func (c DeathCauses) Matches(line string) bool {
	for _, cause := range c {
		if strings.Contains(line, cause) {
			return true
		}
	}
	return false
}
