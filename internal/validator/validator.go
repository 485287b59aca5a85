package validator

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/manufactor/internal/card"
	"github.com/arcanaland/manufactor/internal/config"
	"github.com/arcanaland/manufactor/internal/deck"
	"github.com/arcanaland/manufactor/internal/token"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults

	// CommonTokens holds the known common token definitions. When nil the
	// built-in definitions are used.
	CommonTokens map[string]token.Spec

	deck *deck.Deck
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks the deck file, its token table and the rendered token
// images. An error is returned only when the deck cannot be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateDeckFile(); err != nil {
		return v.Results, err
	}
	if v.CommonTokens == nil {
		defs, err := config.LoadTokenDefs("")
		if err != nil {
			return v.Results, err
		}
		v.CommonTokens = defs
	}

	v.validateCards()
	table := v.validateTokenTable()
	v.validateTokenImages(table)

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...interface{}) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...interface{}) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateDeckFile() error {
	d, err := deck.LoadDeck(v.DeckPath)
	if err != nil {
		return err
	}
	if len(d.Cards) == 0 {
		v.warnf("deck %s has no cards", d.Name)
	}
	v.deck = d
	return nil
}

// validateCards checks every card of the deck file
func (v *Validator) validateCards() {
	names := map[string]string{}
	for i, c := range v.deck.Cards {
		key := v.deck.Keys[i]

		if other, ok := names[strings.ToLower(c.Name)]; ok {
			v.warnf("card %q: name %q is also used by %q", key, c.Name, other)
		} else {
			names[strings.ToLower(c.Name)] = key
		}

		if c.CardType == "" {
			v.errorf("card %q: cardtype is required", key)
		} else if len(card.ParseTypeLine(c.CardType).CardTypes) == 0 {
			v.errorf("card %q: cardtype %q has no base card type", key, c.CardType)
		}

		if (c.Power == "") != (c.Toughness == "") {
			v.errorf("card %q: power and toughness must be given together", key)
		}
		v.checkColors(fmt.Sprintf("card %q", key), c.Colors)
	}
}

// validateTokenTable checks the deck's token table and returns it, or nil
// when it is missing or unreadable.
func (v *Validator) validateTokenTable() *deck.Table {
	path := v.deck.TokenTablePath()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		v.warnf("token table not found, run 'manufactor tokens' to create %s", deck.TokenFileName(v.deck.Name))
		return nil
	}
	if err != nil {
		v.errorf("error reading token table: %v", err)
		return nil
	}

	table, keys, err := deck.ParseTokenTable(data)
	if err != nil {
		v.errorf("error parsing token table: %v", err)
		return nil
	}

	for i, spec := range table.Tokens {
		key := keys[i]
		where := fmt.Sprintf("token %s", key)

		if spec.Name == "" {
			v.errorf("%s: name is required", where)
		} else if !keyMatchesName(key, spec.Name) {
			v.errorf("%s: key does not match name %q", where, spec.Name)
		}
		if !spec.Valid() {
			v.errorf("%s: cardtype %q has no base card type", where, spec.CardType)
		}
		if !card.ParseTypeLine(spec.CardType).Has("token") {
			v.warnf("%s: cardtype %q is missing the Token supertype", where, spec.CardType)
		}
		if (spec.Power == nil) != (spec.Toughness == nil) {
			v.errorf("%s: power and toughness must be given together", where)
		}
		if spec.Frame == "" {
			v.warnf("%s: no frame", where)
		}
		if len(spec.SourceCards) == 0 {
			v.warnf("%s: no related cards", where)
		}
		for _, related := range spec.SourceCards {
			if _, err := v.deck.GetCard(related); err != nil {
				v.warnf("%s: related card %q is not in the deck", where, related)
			}
		}
		v.checkColors(where, spec.Colors)
	}

	for _, ref := range table.Common {
		if _, ok := deck.LookupDef(v.CommonTokens, ref.Name); !ok {
			v.errorf("common token %q has no definition", ref.Name)
		}
	}
	return table
}

// validateTokenImages warns about incomplete tokens without a rendered image
func (v *Validator) validateTokenImages(table *deck.Table) {
	if table == nil {
		return
	}
	images, err := v.deck.TokenImages()
	if err != nil {
		v.errorf("error reading %s: %v", v.deck.TokensDir(), err)
		return
	}
	for _, spec := range table.Tokens {
		if spec.Complete {
			continue
		}
		if _, ok := images[deck.ImageKey(spec.Name)]; !ok {
			v.warnf("no rendered image for token %q in Tokens/", spec.Name)
		}
	}
}

func (v *Validator) checkColors(where string, colors []string) {
	for _, c := range colors {
		if len(c) != 1 || !strings.Contains(card.WUBRG, strings.ToLower(c)) {
			v.errorf("%s: invalid color %q", where, c)
		}
	}
}

// keyMatchesName accepts _TOKEN_<name> and its collision suffixes.
func keyMatchesName(key, name string) bool {
	base := deck.TokenKeyPrefix + name
	if key == base {
		return true
	}
	suffix := strings.TrimPrefix(key, base+"_")
	return suffix != key && len(suffix) > 0 && (len(suffix) == 1 && suffix[0] >= 'B' && suffix[0] <= 'Z' || isDigits(suffix))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
