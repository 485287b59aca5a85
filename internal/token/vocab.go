package token

import (
	"strings"

	"github.com/arcanaland/manufactor/internal/card"
)

// DefaultCommonTokens are the tokens referenced by name only.
var DefaultCommonTokens = []string{"Treasure", "Clue", "Food", "Blood", "Map", "Powerstone"}

// DefaultExclude holds generic type words that are never token names.
var DefaultExclude = []string{
	"Creature", "Noncreature", "Artifact", "Nonartifact", "Enchantment", "Nonenchantment",
	"Land", "Nonland", "Planeswalker", "Nonplaneswalker", "Battle", "Nonbattle",
}

// DefaultStopwords are structural words that never belong to a subtype.
var DefaultStopwords = []string{"goaded", "attach", "to", "that", "many"}

// Vocabulary is the set of word tables an Extractor consults. Empty fields
// fall back to the defaults.
type Vocabulary struct {
	CardTypes    []string
	CommonTokens []string
	Exclude      []string
	Stopwords    []string
	Abilities    []card.Ability
	Rewrites     []Rewrite
}

// DefaultVocabulary returns the built-in tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{}.withDefaults()
}

func (v Vocabulary) withDefaults() Vocabulary {
	if len(v.CardTypes) == 0 {
		v.CardTypes = card.CardTypes
	}
	if len(v.CommonTokens) == 0 {
		v.CommonTokens = DefaultCommonTokens
	}
	if len(v.Exclude) == 0 {
		v.Exclude = DefaultExclude
	}
	if len(v.Stopwords) == 0 {
		v.Stopwords = DefaultStopwords
	}
	if len(v.Abilities) == 0 {
		v.Abilities = card.Abilities
	}
	if v.Rewrites == nil {
		v.Rewrites = DefaultRewrites
	}
	return v
}

// lookup returns the entry of list equal to name ignoring case.
func lookup(list []string, name string) (string, bool) {
	for _, entry := range list {
		if strings.EqualFold(entry, name) {
			return entry, true
		}
	}
	return "", false
}
