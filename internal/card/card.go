package card

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Supertypes are the type-line words that precede the base card types.
var Supertypes = []string{"token", "legendary", "basic", "snow"}

// CardTypes is the ordered vocabulary of base card types.
var CardTypes = []string{"artifact", "enchantment", "land", "creature", "planeswalker", "instant", "sorcery", "battle"}

// Card represents a card entry in a deck file
type Card struct {
	Name      string     `json:"name"`
	CardType  string     `json:"cardtype,omitempty"`
	Subtype   string     `json:"subtype,omitempty"`
	Mana      string     `json:"mana,omitempty"`
	Power     FlexString `json:"power,omitempty"`
	Toughness FlexString `json:"toughness,omitempty"`
	Rules     string     `json:"rules,omitempty"`
	Rules1    string     `json:"rules1,omitempty"`
	Rules2    string     `json:"rules2,omitempty"`
	Rules3    string     `json:"rules3,omitempty"`
	Rules4    string     `json:"rules4,omitempty"`
	Rules5    string     `json:"rules5,omitempty"`
	Rules6    string     `json:"rules6,omitempty"`
	Flavor    string     `json:"flavor,omitempty"`
	Special   string     `json:"special,omitempty"`
	Colors    []string   `json:"colors,omitempty"`
	Frame     string     `json:"frame,omitempty"`
	Complete  FlexBool   `json:"complete,omitempty"`
	Legendary FlexBool   `json:"legendary,omitempty"`
	Token     FlexBool   `json:"token,omitempty"`
}

// RulesTexts returns every non-empty rules field in layout order.
func (c *Card) RulesTexts() []string {
	var texts []string
	for _, r := range []string{c.Rules, c.Rules1, c.Rules2, c.Rules3, c.Rules4, c.Rules5, c.Rules6} {
		if strings.TrimSpace(r) != "" {
			texts = append(texts, r)
		}
	}
	return texts
}

// FlexBool decodes 0/1, true/false and "0"/"1" alike.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	switch strings.ToLower(s) {
	case "", "null", "0", "false":
		*b = false
	case "1", "true":
		*b = true
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid boolean value %s", string(data))
		}
		*b = n != 0
	}
	return nil
}

func (b FlexBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// FlexString accepts both JSON numbers and strings.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("invalid value %s", string(data))
	}
	*s = FlexString(num.String())
	return nil
}

// TypeLine is a type line split into supertypes and base card types.
type TypeLine struct {
	Supertypes []string
	CardTypes  []string
}

// ParseTypeLine splits a space separated type line such as
// "Legendary Token Artifact Land". Unknown words are ignored.
func ParseTypeLine(line string) TypeLine {
	var tl TypeLine
	for _, word := range strings.Fields(strings.ToLower(line)) {
		switch {
		case contains(Supertypes, word):
			tl.Supertypes = append(tl.Supertypes, word)
		case contains(CardTypes, word):
			tl.CardTypes = append(tl.CardTypes, word)
		}
	}
	return tl
}

func (tl TypeLine) Has(word string) bool {
	return contains(tl.Supertypes, word) || contains(tl.CardTypes, word)
}

// IsCardType reports whether word is a base card type.
func IsCardType(word string) bool {
	return contains(CardTypes, strings.ToLower(word))
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
