package token

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arcanaland/manufactor/internal/card"
)

var powerToughnessRe = regexp.MustCompile(`^([0-9]+)/([0-9]+)$`)

// subtypeFillers are words that can sit between the quantity and the token
// noun without being part of the subtype.
var subtypeFillers = map[string]bool{
	"legendary": true, "colorless": true, "tapped": true,
	"x": true, "a": true, "an": true, "and": true,
}

// name returns the token's explicit name. When the text gives none it
// reports fromSubtype so the caller can fall back to the subtype.
func (c *clause) name() (name string, fromSubtype bool) {
	for i, w := range c.words {
		if w != "named" {
			continue
		}
		var parts []string
		for _, next := range c.words[i+1:] {
			if next == "with" {
				break
			}
			parts = append(parts, strings.NewReplacer(",", "", ".", "", `"`, "").Replace(next))
			if strings.ContainsAny(next, ",.") {
				break
			}
		}
		return titleCase(strings.Join(parts, " ")), false
	}

	if len(c.words) > 2 && !isQuantity(c.words[1], c.words[2]) {
		var parts []string
		for _, next := range c.words[1:] {
			parts = append(parts, strings.ReplaceAll(next, ",", ""))
			if strings.Contains(next, ",") {
				break
			}
		}
		return titleCase(strings.Join(parts, " ")), false
	}
	return "", true
}

// quantityIndex returns the index of the first quantity word before the
// token noun, or the word before the description (usually the creation verb)
// when there is none.
func (c *clause) quantityIndex() int {
	for i := c.head; i < c.token; i++ {
		if i < c.token-1 && isQuantity(c.words[i], c.words[i+1]) {
			return i
		}
		if i == c.token-1 && isQuantity(c.words[i], "") {
			return i
		}
	}
	return c.head - 1
}

// span returns the punctuation-free words from..token.
func (c *clause) span(from int) []string {
	if from > c.token {
		return nil
	}
	span := make([]string, 0, c.token-from)
	for _, w := range c.words[from:c.token] {
		span = append(span, stripPunct(w))
	}
	return span
}

// typeLine composes "Legendary"? + "Token" + matched base types.
func (c *clause) typeLine(quantity int, cardTypes []string) string {
	span := c.span(quantity)
	var matched []string
	for _, ct := range cardTypes {
		if containsWord(span, strings.ToLower(ct)) {
			matched = append(matched, strings.ToLower(ct))
		}
	}
	line := "Token"
	if len(matched) > 0 {
		line += " " + titleCase(strings.Join(matched, " "))
	}
	if containsWord(span, "legendary") {
		line = "Legendary " + line
	}
	return line
}

// subtype collects the words between the quantity and the token noun that are
// not quantities, colors, card types, fillers, stopwords or the name itself.
func (c *clause) subtype(quantity int, name string, vocab Vocabulary) string {
	lowerName := strings.ToLower(name)
	var kept []string
	for i, w := range c.span(quantity) {
		if i == 0 {
			// the quantity word itself
			continue
		}
		switch {
		case strings.Contains(w, "/"),
			w == lowerName,
			containsFold(vocab.Stopwords, w),
			containsFold(vocab.CardTypes, w),
			isNumberWord(w),
			subtypeFillers[w]:
			continue
		}
		if _, isColor := card.ColorCode(w); isColor {
			continue
		}
		kept = append(kept, w)
	}
	return strings.TrimSpace(titleCase(strings.Join(kept, " ")))
}

// powerToughness returns the first plain N/N pair in the clause.
func (c *clause) powerToughness() (power, toughness *string) {
	for _, w := range c.words {
		if m := powerToughnessRe.FindStringSubmatch(w); m != nil {
			return &m[1], &m[2]
		}
	}
	return nil, nil
}

// colors returns the color identity named between quantity and token noun.
func (c *clause) colors(quantity int) []string {
	span := c.span(quantity)
	var colors []string
	for _, name := range card.ColorWords {
		if containsWord(span, name) {
			colors = append(colors, card.ColorNames[name])
		}
	}
	return card.SortColors(colors)
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}

func containsFold(list []string, word string) bool {
	_, ok := lookup(list, word)
	return ok
}
