package token

import (
	"strings"
)

var continuationWords = map[string]bool{"and": true, "or": true, "a": true, "then": true}

var copyPhrases = []string{"token copy", "token that's a copy", "tokens that are copies"}

// clause is one candidate sentence, trimmed to start at its creation verb.
type clause struct {
	orig  []string // words as written
	words []string // lowercase words
	head  int      // index where the type description starts
	token int      // index of the token noun
	with  int      // index of the "with" introducing abilities, or -1
}

// locate finds the creation verb and the token noun in text. It reports
// false when either anchor is missing.
func locate(text string) (*clause, bool) {
	orig := strings.Fields(text)
	words := lowerAll(orig)

	create := -1
	for i, w := range words {
		if isCreateVerb(w) {
			create = i
			break
		}
	}
	if create < 0 {
		return nil, false
	}

	c := &clause{orig: orig[create:], words: words[create:], head: 1, with: -1}
	c.token = tokenNounIndex(c.words, 0)
	if c.token < 0 {
		return nil, false
	}
	c.resolveAppositive()
	c.with = c.abilityIntroducer()
	return c, true
}

// resolveAppositive handles "a token named Boknok, a legendary artifact
// token": the description after the name's comma is the one to read.
func (c *clause) resolveAppositive() {
	named := c.token + 1
	if named >= len(c.words) || c.words[named] != "named" {
		return
	}
	for i := named + 1; i < len(c.words); i++ {
		w := c.words[i]
		if w == "with" || strings.Contains(w, ".") {
			return
		}
		if !strings.Contains(w, ",") {
			continue
		}
		second := tokenNounIndex(c.words, i+1)
		if second < 0 {
			return
		}
		for _, between := range c.words[i+1 : second] {
			if between == "with" || strings.Contains(between, ".") {
				return
			}
		}
		c.head, c.token = i+1, second
		return
	}
}

// abilityIntroducer returns the index of the first "with" after the token
// noun, unless a sentence boundary comes before it.
func (c *clause) abilityIntroducer() int {
	with := -1
	for i := c.token; i < len(c.words); i++ {
		if c.words[i] == "with" {
			with = i
			break
		}
	}
	if with < 0 {
		return -1
	}
	if p := periodIndex(c.words, c.token); p >= 0 && p < with {
		return -1
	}
	return with
}

// splitTrailing pushes text that follows the current token description onto
// q and shortens the clause to end at that description.
func (c *clause) splitTrailing(q *clauseQueue) {
	if p := periodIndex(c.words, c.token); p >= 0 {
		if verb := createVerbIndex(c.words, c.token); verb >= 0 && p < verb {
			q.push(strings.Join(c.orig[p+1:], " "))
			c.truncate(p + 1)
		}
	}

	next := c.token + 1
	if next >= len(c.words) || strings.Contains(c.words[c.token], ".") || !continuationWords[c.words[next]] {
		return
	}
	if next+1 < len(c.words) {
		end := periodIndex(c.words, next)
		if end < 0 {
			end = len(c.words) - 1
		}
		var rest []string
		switch {
		case tokenNounIndex(c.words[:end+1], next) < 0:
			rest = c.orig[next:]
		case c.words[next] == "a":
			rest = append([]string{"create"}, c.orig[next:]...)
		default:
			rest = append([]string{c.orig[next], "create"}, c.orig[next+1:]...)
		}
		q.push(strings.Join(rest, " "))
	}
	c.truncate(next)
}

func (c *clause) truncate(n int) {
	c.orig = c.orig[:n]
	c.words = c.words[:n]
	if c.with >= n {
		c.with = -1
	}
}

// isCopy reports whether the clause creates a copy of an existing token.
func (c *clause) isCopy() bool {
	text := c.text()
	for _, phrase := range copyPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

func (c *clause) text() string {
	return strings.Join(c.orig, " ")
}

func isCreateVerb(word string) bool {
	return word == "create" || word == "creates"
}

func isTokenNoun(word string) bool {
	w := stripPunct(word)
	return w == "token" || w == "tokens"
}

// tokenNounIndex returns the index of the first token noun at or after from.
func tokenNounIndex(words []string, from int) int {
	for i := from; i < len(words); i++ {
		if isTokenNoun(words[i]) {
			return i
		}
	}
	return -1
}

// periodIndex returns the index of the first word at or after from that
// contains a period.
func periodIndex(words []string, from int) int {
	for i := from; i < len(words); i++ {
		if strings.Contains(words[i], ".") {
			return i
		}
	}
	return -1
}

func createVerbIndex(words []string, from int) int {
	for i := from; i < len(words); i++ {
		if isCreateVerb(words[i]) {
			return i
		}
	}
	return -1
}

func stripPunct(word string) string {
	return strings.NewReplacer(",", "", ".", "").Replace(word)
}

func lowerAll(words []string) []string {
	lower := make([]string, len(words))
	for i, w := range words {
		lower[i] = strings.ToLower(w)
	}
	return lower
}
