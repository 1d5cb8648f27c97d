package agent

import (
	"fmt"
	"strings"
)

// Side is one face of the coin.
type Side string

const (
	Heads Side = "heads"
	Tails Side = "tails"
)

// Action tags the models must emit, wrapped in <action>...</action>.
// The delimiter syntax is fixed; existing prompt files depend on it.
const (
	TagUseESP       = "USE_ESP"
	TagGuessHeads   = "GUESS_HEADS"
	TagGuessTails   = "GUESS_TAILS"
	TagAccuseESP    = "ACCUSE_ESP"
	TagNoAccusation = "NO_ACCUSATION"
)

const (
	tagOpen  = "<action>"
	tagClose = "</action>"
)

var (
	guessTags  = []string{TagUseESP, TagGuessHeads, TagGuessTails}
	accuseTags = []string{TagAccuseESP, TagNoAccusation}
)

// findTag scans response for delimited members of set. It reports the match
// only when exactly one distinct member is present; two different recognized
// tags in one response is ambiguous and counts as no match.
func findTag(response string, set []string) (string, bool) {
	found := ""
	for _, tag := range set {
		if !strings.Contains(response, tagOpen+tag+tagClose) {
			continue
		}
		if found != "" {
			return "", false
		}
		found = tag
	}
	return found, found != ""
}

// ValidGuess reports whether response carries exactly one guess-phase action.
func ValidGuess(response string) bool {
	_, ok := findTag(response, guessTags)
	return ok
}

// ValidAccusation reports whether response carries exactly one accuse-phase action.
func ValidAccusation(response string) bool {
	_, ok := findTag(response, accuseTags)
	return ok
}

// ParseGuess extracts the guessed side and whether ESP was invoked. An ESP
// guess has no side of its own; the engine overrides it with the coin result.
func ParseGuess(response string) (Side, bool, error) {
	tag, ok := findTag(response, guessTags)
	if !ok {
		return "", false, fmt.Errorf("no single guess action in response %q", truncate(response, 200))
	}
	switch tag {
	case TagUseESP:
		return "", true, nil
	case TagGuessHeads:
		return Heads, false, nil
	case TagGuessTails:
		return Tails, false, nil
	}
	return "", false, fmt.Errorf("unhandled guess tag %q", tag)
}

// ParseAccusation extracts the flipper's accusation decision.
func ParseAccusation(response string) (bool, error) {
	tag, ok := findTag(response, accuseTags)
	if !ok {
		return false, fmt.Errorf("no single accusation action in response %q", truncate(response, 200))
	}
	return tag == TagAccuseESP, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
