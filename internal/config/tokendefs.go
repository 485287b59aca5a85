package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/manufactor/internal/card"
	"github.com/arcanaland/manufactor/internal/token"
)

// TokenDef is the full definition of a common token as written in the
// common token file.
type TokenDef struct {
	Name      string   `toml:"name"`
	CardType  string   `toml:"cardtype"`
	Subtype   string   `toml:"subtype"`
	Power     string   `toml:"power,omitempty"`
	Toughness string   `toml:"toughness,omitempty"`
	Rules     string   `toml:"rules"`
	Colors    []string `toml:"colors"`
	Frame     string   `toml:"frame,omitempty"`
}

type tokenDefFile struct {
	Tokens []TokenDef `toml:"token"`
}

// DefaultTokenDefs are used when no common token file is configured.
var DefaultTokenDefs = []TokenDef{
	{Name: "Treasure", CardType: "Token Artifact", Subtype: "Treasure", Rules: "{T}, Sacrifice this artifact: Add one mana of any color."},
	{Name: "Clue", CardType: "Token Artifact", Subtype: "Clue", Rules: "{2}, Sacrifice this artifact: Draw a card."},
	{Name: "Food", CardType: "Token Artifact", Subtype: "Food", Rules: "{2}, {T}, Sacrifice this artifact: You gain 3 life."},
	{Name: "Blood", CardType: "Token Artifact", Subtype: "Blood", Rules: "{1}, {T}, Discard a card, Sacrifice this artifact: Draw a card."},
	{Name: "Map", CardType: "Token Artifact", Subtype: "Map", Rules: "{1}, {T}, Sacrifice this artifact: Target creature you control explores. Activate only as a sorcery."},
	{Name: "Powerstone", CardType: "Token Artifact", Subtype: "Powerstone", Rules: "{T}: Add {C}. This mana can't be spent to cast a nonartifact spell."},
}

// GetTokenDefsPath resolves the configured common token file. Relative
// paths are taken from the config directory.
func (c *Config) GetTokenDefsPath() string {
	if c.CommonTokenFile == "" || filepath.IsAbs(c.CommonTokenFile) {
		return c.CommonTokenFile
	}
	return filepath.Join(filepath.Dir(GetConfigFilePath()), c.CommonTokenFile)
}

// LoadTokenDefs reads common token definitions from a TOML file with one
// [[token]] table per entry. An empty path returns the defaults.
func LoadTokenDefs(path string) (map[string]token.Spec, error) {
	defs := DefaultTokenDefs
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("common token file not found: %w", err)
		}
		var file tokenDefFile
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return nil, fmt.Errorf("error parsing common token file: %w", err)
		}
		defs = file.Tokens
	}

	specs := make(map[string]token.Spec, len(defs))
	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("common token without a name in %s", path)
		}
		specs[def.Name] = def.Spec()
	}
	return specs, nil
}

// Spec converts the definition into a token spec, classifying its frame
// when the file does not give one.
func (d TokenDef) Spec() token.Spec {
	spec := token.Spec{
		Name:     d.Name,
		CardType: d.CardType,
		Subtype:  d.Subtype,
		Rules:    d.Rules,
		Colors:   card.SortColors(d.Colors),
		Frame:    d.Frame,
		Complete: true,
	}
	if d.Power != "" && d.Toughness != "" {
		power, toughness := d.Power, d.Toughness
		spec.Power, spec.Toughness = &power, &toughness
	}
	if spec.Frame == "" {
		// unsupported frames stay empty
		spec.Frame, _ = card.ClassifyFrame(card.Facts{
			TypeLine: spec.CardType,
			Subtype:  spec.Subtype,
			Colors:   spec.Colors,
			Rules:    spec.Rules,
		})
	}
	return spec
}

// WriteTokenDefs writes defs as a common token file that LoadTokenDefs can
// read back. An existing file is left untouched.
func WriteTokenDefs(path string, defs []TokenDef) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("error creating token file directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tokenDefFile{Tokens: defs}); err != nil {
		return false, fmt.Errorf("error encoding common tokens: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return false, fmt.Errorf("error writing common token file: %w", err)
	}
	return true, nil
}
