package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/arcanaland/manufactor/internal/card"
	"github.com/arcanaland/manufactor/internal/token"
)

// TokenKeyPrefix starts every token key in a token table.
const TokenKeyPrefix = "_TOKEN_"

// tableEntry is one token as persisted in a token table.
type tableEntry struct {
	Name      string        `json:"name"`
	CardType  string        `json:"cardtype"`
	Subtype   string        `json:"subtype"`
	Rules     string        `json:"rules"`
	Power     *string       `json:"power,omitempty"`
	Toughness *string       `json:"toughness,omitempty"`
	Colors    []string      `json:"colors"`
	Frame     string        `json:"frame"`
	Complete  card.FlexBool `json:"complete"`
	Related   []string      `json:"related"`
}

func entryFromSpec(s token.Spec) tableEntry {
	e := tableEntry{
		Name:      s.Name,
		CardType:  s.CardType,
		Subtype:   s.Subtype,
		Rules:     s.Rules,
		Power:     s.Power,
		Toughness: s.Toughness,
		Colors:    s.Colors,
		Frame:     s.Frame,
		Complete:  card.FlexBool(s.Complete),
		Related:   s.SourceCards,
	}
	if e.Colors == nil {
		e.Colors = []string{}
	}
	if e.Related == nil {
		e.Related = []string{}
	}
	return e
}

func (e tableEntry) spec() token.Spec {
	return token.Spec{
		Name:        e.Name,
		CardType:    e.CardType,
		Subtype:     e.Subtype,
		Rules:       e.Rules,
		Power:       e.Power,
		Toughness:   e.Toughness,
		Colors:      e.Colors,
		Frame:       e.Frame,
		Complete:    bool(e.Complete),
		SourceCards: e.Related,
	}
}

// TokenKeys assigns every token its table key. Tokens sharing a name get
// _B, _C, ... suffixes in table order.
func (t *Table) TokenKeys() []string {
	keys := make([]string, len(t.Tokens))
	seen := map[string]int{}
	for i, spec := range t.Tokens {
		base := TokenKeyPrefix + spec.Name
		n := seen[base]
		seen[base] = n + 1
		keys[i] = base + collisionSuffix(n)
	}
	return keys
}

func collisionSuffix(n int) string {
	switch {
	case n == 0:
		return ""
	case n < 26:
		return "_" + string(rune('A'+n))
	default:
		return fmt.Sprintf("_%d", n+1)
	}
}

// MarshalTable renders the token table as indented JSON. The common token
// list is only written when the deck creates common tokens.
func MarshalTable(t *Table) ([]byte, error) {
	out := make(map[string]interface{}, len(t.Tokens)+1)
	for i, key := range t.TokenKeys() {
		out[key] = entryFromSpec(t.Tokens[i])
	}
	if len(t.Common) > 0 {
		out[CommonTokensKey] = t.CommonNames()
	}

	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("error encoding token table: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteTokenTable writes t to path.
func WriteTokenTable(path string, t *Table) error {
	data, err := MarshalTable(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing token table: %w", err)
	}
	return nil
}

// LoadTokenTable reads a token table written by WriteTokenTable. Tokens come
// back in key order; common tokens carry no source cards.
func LoadTokenTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading token table: %w", err)
	}
	table, _, err := ParseTokenTable(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return table, nil
}

// ParseTokenTable decodes a token table and also returns the key of each
// token, aligned with Tokens.
func ParseTokenTable(data []byte) (*Table, []string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}

	table := &Table{}
	if common, ok := raw[CommonTokensKey]; ok {
		var names []string
		if err := json.Unmarshal(common, &names); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", CommonTokensKey, err)
		}
		for _, name := range names {
			table.Common = append(table.Common, token.CommonRef{Name: name})
		}
	}

	var keys []string
	for key := range raw {
		if strings.HasPrefix(key, TokenKeyPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		var e tableEntry
		if err := json.Unmarshal(raw[key], &e); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", key, err)
		}
		table.Tokens = append(table.Tokens, e.spec())
	}
	return table, keys, nil
}

// Materialize turns common token references into full specs using defs.
// Names without a definition are returned in missing.
func Materialize(common []token.CommonRef, defs map[string]token.Spec) (specs []token.Spec, missing []string) {
	for _, ref := range common {
		def, ok := LookupDef(defs, ref.Name)
		if !ok {
			missing = append(missing, ref.Name)
			continue
		}
		def.SourceCards = union(nil, ref.SourceCards)
		specs = append(specs, def)
	}
	return specs, missing
}

// LookupDef finds the definition of a common token, ignoring case.
func LookupDef(defs map[string]token.Spec, name string) (token.Spec, bool) {
	if def, ok := defs[name]; ok {
		return def, true
	}
	for key, def := range defs {
		if strings.EqualFold(key, name) {
			return def, true
		}
	}
	return token.Spec{}, false
}
