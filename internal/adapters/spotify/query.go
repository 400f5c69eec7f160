package spotify

import (
	"strings"
	"unicode"
)

// Tokens that add noise to a catalog keyword query without narrowing it.
var queryNoiseTokens = map[string]struct{}{
	"playlist": {},
	"music":    {},
	"songs":    {},
	"track":    {},
	"tracks":   {},
	"vibe":     {},
	"vibes":    {},
	"mood":     {},
}

// buildSearchQuery turns a mood descriptor into a catalog search query:
// lowercased, stripped to letters and digits, noise tokens removed.
// Returns "" when nothing searchable remains.
func buildSearchQuery(descriptor string) string {
	if strings.TrimSpace(descriptor) == "" {
		return ""
	}

	tokens := strings.Fields(cleanSeparators(strings.ToLower(descriptor)))
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, drop := queryNoiseTokens[token]; drop {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

func cleanSeparators(input string) string {
	var out strings.Builder
	lastSpace := false
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			out.WriteRune(' ')
			lastSpace = true
		}
	}
	return out.String()
}
