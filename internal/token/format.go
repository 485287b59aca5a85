package token

import (
	"strings"

	"github.com/arcanaland/manufactor/internal/card"
)

// maxExpandableWords bounds the ability text that gets reminder text added.
const maxExpandableWords = 6

// Normalize turns captured ability text into presentation lines:
// quoted abilities joined with `and "` move to their own line, short comma
// and "and" lists become ", " separated keyword lists, and one layer of
// enclosing quotes is removed from each line.
func Normalize(rules string) string {
	rules = splitQuotedAbilities(rules)
	rules = rejoinKeywordLists(rules, ",", false)
	rules = rejoinKeywordLists(rules, " and ", true)
	rules = stripQuotes(rules)
	return strings.ReplaceAll(rules, "..", ".")
}

func splitQuotedAbilities(rules string) string {
	parts := strings.Split(rules, `and "`)
	if len(parts) == 1 {
		return rules
	}
	var b strings.Builder
	b.WriteString(strings.TrimSpace(parts[0]))
	for _, part := range parts[1:] {
		b.WriteString("\n")
		b.WriteString(strings.Replace(strings.TrimSpace(part), `"`, "", 1))
	}
	return strings.ReplaceAll(b.String(), ",\n", "\n")
}

// rejoinKeywordLists rewrites every line made only of short phrases (two
// words at most) separated by sep as a ", " list without a final period.
func rejoinKeywordLists(rules, sep string, protectionCarveOut bool) string {
	lines := strings.Split(rules, "\n")
	for i, line := range lines {
		var phrases []string
		long := false
		for _, phrase := range strings.Split(line, sep) {
			phrase = strings.TrimSpace(phrase)
			if phrase == "" {
				continue
			}
			if words := strings.Fields(phrase); len(words) > 2 &&
				!(protectionCarveOut && strings.EqualFold(words[0], "protection") && strings.EqualFold(words[1], "from")) {
				long = true
				break
			}
			phrases = append(phrases, phrase)
		}
		if long || len(phrases) == 0 {
			continue
		}
		if n := len(phrases); n > 1 && strings.HasPrefix(phrases[n-1], "and ") {
			phrases[n-2] += ", " + strings.TrimPrefix(phrases[n-1], "and ")
			phrases = phrases[:n-1]
		}
		phrases[len(phrases)-1] = strings.TrimSuffix(phrases[len(phrases)-1], ".")
		lines[i] = strings.Join(phrases, ", ")
	}
	return strings.Join(lines, "\n")
}

func stripQuotes(rules string) string {
	lines := strings.Split(rules, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, `"`) {
			continue
		}
		switch {
		case len(line) >= 2 && strings.HasSuffix(line, `"`):
			lines[i] = line[1 : len(line)-1]
		case len(line) >= 3 && strings.HasSuffix(line, `".`):
			lines[i] = line[1 : len(line)-2]
		}
	}
	return strings.Join(lines, "\n")
}

// expandKeyword appends reminder text when short ability text ends with a
// keyword from the ability table.
func expandKeyword(rules string, table map[string]card.Ability) string {
	if len(strings.Fields(rules)) > maxExpandableWords {
		return rules
	}
	phrases := strings.Split(rules, ",")
	ab, ok := table[card.AbilityKey(phrases[len(phrases)-1])]
	if !ok {
		return rules
	}
	return rules + " (" + ab.Reminder + ")"
}
