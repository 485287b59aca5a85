package deck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/manufactor/internal/card"
)

// Reserved top-level keys of a deck file that do not hold cards.
const (
	BasicsKey       = "_BASICS"
	CommonTokensKey = "_COMMON_TOKENS"
)

// ErrDeckNotFound is returned when no deck file exists at a path.
var ErrDeckNotFound = errors.New("deck not found")

// Deck represents a card collection loaded from a deck file
type Deck struct {
	Name string
	Dir  string
	File string

	// Cards in deck file order
	Keys  []string
	Cards []*card.Card
}

// FileName returns the deck file name for a deck called name.
func FileName(name string) string {
	return strings.ReplaceAll(name, " ", "_") + ".json"
}

// TokenFileName returns the token table file name for a deck called name.
func TokenFileName(name string) string {
	return strings.ReplaceAll(name, " ", "_") + "_Tokens.json"
}

// LoadDeck loads a deck from a deck folder (<Deck>/<Deck>.json) or directly
// from a deck file.
func LoadDeck(deckPath string) (*Deck, error) {
	info, err := os.Stat(deckPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, deckPath)
		}
		return nil, fmt.Errorf("error reading deck: %w", err)
	}

	d := &Deck{}
	if info.IsDir() {
		d.Dir = deckPath
		d.Name = filepath.Base(filepath.Clean(deckPath))
		d.File = filepath.Join(deckPath, FileName(d.Name))
	} else {
		d.Dir = filepath.Dir(deckPath)
		d.File = deckPath
		d.Name = strings.TrimSuffix(filepath.Base(deckPath), filepath.Ext(deckPath))
	}

	data, err := os.ReadFile(d.File)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s not found in %s", ErrDeckNotFound, filepath.Base(d.File), d.Dir)
		}
		return nil, fmt.Errorf("error reading deck file: %w", err)
	}

	cards, keys, err := parseCards(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filepath.Base(d.File), err)
	}
	d.Cards, d.Keys = cards, keys
	return d, nil
}

// parseCards decodes the cards of a deck file in the order they appear in
// the file.
func parseCards(data []byte) ([]*card.Card, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil {
		return nil, nil, err
	} else if tok != json.Delim('{') {
		return nil, nil, errors.New("deck file must hold a JSON object")
	}

	var (
		cards []*card.Card
		keys  []string
		seen  = make(map[string]int)
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, fmt.Errorf("card %q: %w", key, err)
		}
		if key == BasicsKey || key == CommonTokensKey {
			continue
		}

		var c card.Card
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, nil, fmt.Errorf("card %q: %w", key, err)
		}
		if c.Name == "" {
			c.Name = key
		}
		// a repeated key replaces the earlier card in place
		if i, ok := seen[key]; ok {
			cards[i] = &c
			continue
		}
		seen[key] = len(cards)
		cards = append(cards, &c)
		keys = append(keys, key)
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return cards, keys, nil
}

// TokenTablePath returns where the deck's token table is written.
func (d *Deck) TokenTablePath() string {
	return filepath.Join(d.Dir, TokenFileName(d.Name))
}

// TokensDir returns the folder holding rendered token images.
func (d *Deck) TokensDir() string {
	return filepath.Join(d.Dir, "Tokens")
}

// GetCard gets a card by name, ignoring case
func (d *Deck) GetCard(name string) (*card.Card, error) {
	for _, c := range d.Cards {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("card not found: %s", name)
}
