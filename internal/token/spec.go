// Package token extracts the tokens a card creates from its rules text.
//
// Extraction is a heuristic scan over templated rules text. Every line of the
// input becomes a clause on a FIFO work queue; while a clause is examined the
// scanner may discover further tokens in it and push the remainder back onto
// the queue as new clauses. Out-of-pattern text yields no token rather than an
// error.
package token

import (
	"strings"

	"github.com/arcanaland/manufactor/internal/card"
)

// Spec is the structured description of one synthesized token.
type Spec struct {
	Name        string   `json:"name" yaml:"name"`
	CardType    string   `json:"cardtype" yaml:"cardtype"`
	Subtype     string   `json:"subtype" yaml:"subtype"`
	Power       *string  `json:"power,omitempty" yaml:"power,omitempty"`
	Toughness   *string  `json:"toughness,omitempty" yaml:"toughness,omitempty"`
	Rules       string   `json:"rules" yaml:"rules"`
	Colors      []string `json:"colors" yaml:"colors"`
	Frame       string   `json:"frame" yaml:"frame"`
	SourceCards []string `json:"related" yaml:"related"`
	Complete    bool     `json:"complete" yaml:"complete"`
}

// CommonRef names a token whose definition lives in the common-token table.
type CommonRef struct {
	Name        string   `json:"name" yaml:"name"`
	SourceCards []string `json:"related" yaml:"related"`
}

// Source is one block of rules text and the card it came from.
type Source struct {
	Card     string
	Text     string
	Complete bool
}

// Result holds everything extracted from one Source, in queue order.
type Result struct {
	Specs  []Spec      `json:"tokens" yaml:"tokens"`
	Common []CommonRef `json:"common_tokens" yaml:"common_tokens"`
}

// Key identifies a spec for deduplication. SourceCards and Complete are not
// part of a token's identity.
func (s Spec) Key() string {
	fields := []string{
		s.Name,
		s.CardType,
		s.Subtype,
		optional(s.Power),
		optional(s.Toughness),
		s.Rules,
		strings.Join(s.Colors, ""),
		s.Frame,
	}
	return strings.Join(fields, "\x1f")
}

// Valid reports whether the type line names at least one base card type.
func (s Spec) Valid() bool {
	return len(card.ParseTypeLine(s.CardType).CardTypes) > 0
}

// HasPowerToughness reports whether a power/toughness pair was found.
func (s Spec) HasPowerToughness() bool {
	return s.Power != nil && s.Toughness != nil
}

func optional(s *string) string {
	if s == nil {
		return "\x00"
	}
	return *s
}
