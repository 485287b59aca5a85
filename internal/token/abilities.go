package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// captureAbilities returns the words after "with" up to the end of the
// sentence, ignoring periods inside quotations. "named" stops the capture.
func (c *clause) captureAbilities() []string {
	if c.with < 0 || c.with >= len(c.orig) {
		return nil
	}
	var (
		captured []string
		quotes   quoteTracker
	)
	for i := c.with + 1; i < len(c.orig); i++ {
		word := c.orig[i]
		if strings.EqualFold(word, "named") {
			break
		}
		ends := quotes.observe(word)
		if i == c.with+1 {
			word = upperFirst(word)
		}
		captured = append(captured, word)
		if ends {
			break
		}
	}
	return captured
}

// splitSiblings splits captured ability words at "and a", "or a" and ", a",
// which introduce another token in the same sentence. The first group is the
// ability text; every other group describes a sibling token.
func splitSiblings(words []string) (first []string, siblings [][]string) {
	var (
		groups [][]string
		after  []string
		last   int
	)
	for i := 0; i < len(words)-1; i++ {
		if words[i+1] != "a" {
			continue
		}
		var end int
		switch {
		case words[i] == "and" || words[i] == "or":
			end = i
		case strings.HasSuffix(words[i], ","):
			end = i + 1
		default:
			continue
		}
		groups = append(groups, words[last:end])
		after = words[i+1:]
		last = i + 1
	}
	if after != nil {
		groups = append(groups, after)
	}
	if len(groups) < 2 {
		return words, nil
	}
	return groups[0], groups[1:]
}

func upperFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError || len(word) <= size {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
