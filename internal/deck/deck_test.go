package deck

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arcanaland/manufactor/internal/token"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const goblinDeck = `{
	"_BASICS": {"Mountain": 10},
	"_COMMON_TOKENS": ["Treasure"],
	"Goblin Instigator": {
		"name": "Goblin Instigator",
		"cardtype": "Creature",
		"rules": "When this enters, create a 1/1 red Goblin creature token.",
		"complete": 1
	},
	"Beetleback Chief": {
		"name": "Beetleback Chief",
		"cardtype": "Creature",
		"rules": "When this enters, create two 1/1 red Goblin creature tokens.",
		"complete": 0
	},
	"Goldvein Hydra": {
		"name": "Goldvein Hydra",
		"cardtype": "Creature",
		"rules": "Vigilance, trample, haste",
		"rules2": "When this dies, create a tapped Treasure token for each +1/+1 counter on it.",
		"complete": true
	},
	"Shock": {
		"name": "Shock",
		"cardtype": "Instant",
		"rules": "Shock deals 2 damage to any target."
	}
}`

func writeDeck(t *testing.T, name, data string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName(name)), []byte(data), 0644))
	return dir
}

func TestLoadDeck(t *testing.T) {
	dir := writeDeck(t, "Goblin Horde", goblinDeck)

	d, err := LoadDeck(dir)
	require.NoError(t, err)
	assert.Equal(t, "Goblin Horde", d.Name)
	assert.Equal(t, filepath.Join(dir, "Goblin_Horde.json"), d.File)
	assert.Equal(t, []string{"Goblin Instigator", "Beetleback Chief", "Goldvein Hydra", "Shock"}, d.Keys)
	require.Len(t, d.Cards, 4)
	assert.True(t, bool(d.Cards[0].Complete))
	assert.False(t, bool(d.Cards[1].Complete))
	assert.Equal(t, filepath.Join(dir, "Goblin_Horde_Tokens.json"), d.TokenTablePath())

	byFile, err := LoadDeck(d.File)
	require.NoError(t, err)
	assert.Equal(t, d.Keys, byFile.Keys)

	c, err := d.GetCard("shock")
	require.NoError(t, err)
	assert.Equal(t, "Shock", c.Name)
}

func TestLoadDeckErrors(t *testing.T) {
	_, err := LoadDeck(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, errors.Is(err, ErrDeckNotFound))

	empty := t.TempDir()
	_, err = LoadDeck(empty)
	assert.True(t, errors.Is(err, ErrDeckNotFound))

	bad := writeDeck(t, "Bad", `{"x": {"complete": "maybe"}}`)
	_, err = LoadDeck(bad)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrDeckNotFound))
}

func TestLoadDeckKeepsFileOrder(t *testing.T) {
	data := `{
		"Zombie Lord": {"cardtype": "Creature", "rules": "Create a 2/2 black Zombie creature token."},
		"_BASICS": {"Swamp": 8},
		"Army of the Damned": {"cardtype": "Sorcery", "rules": "Create a 2/2 black Zombie creature token with menace."},
		"Bad Moon": {"cardtype": "Enchantment"}
	}`
	d, err := LoadDeck(writeDeck(t, "Undead", data))
	require.NoError(t, err)
	assert.Equal(t, []string{"Zombie Lord", "Army of the Damned", "Bad Moon"}, d.Keys)
	assert.Equal(t, "Zombie Lord", d.Cards[0].Name)

	table, err := Tokens(context.Background(), d, token.NewExtractor(token.DefaultVocabulary()), 3, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, table.Tokens, 2)
	assert.Equal(t, []string{"_TOKEN_Zombie", "_TOKEN_Zombie_B"}, table.TokenKeys())
	assert.Equal(t, []string{"Zombie Lord"}, table.Tokens[0].SourceCards)
	assert.Equal(t, "Menace", table.Tokens[1].Rules)

	_, err = LoadDeck(writeDeck(t, "List", `["not", "a", "deck"]`))
	assert.Error(t, err)
}

func TestTokens(t *testing.T) {
	d, err := LoadDeck(writeDeck(t, "Goblins", goblinDeck))
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	e := token.NewExtractor(token.DefaultVocabulary())
	table, err := Tokens(context.Background(), d, e, 2, zap.New(core))
	require.NoError(t, err)

	one := "1"
	want := []token.Spec{{
		Name:        "Goblin",
		CardType:    "Token Creature",
		Subtype:     "Goblin",
		Power:       &one,
		Toughness:   &one,
		Colors:      []string{"r"},
		Frame:       "r_token_creature",
		SourceCards: []string{"Goblin Instigator", "Beetleback Chief"},
		Complete:    false,
	}}
	if diff := cmp.Diff(want, table.Tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []token.CommonRef{{Name: "Treasure", SourceCards: []string{"Goldvein Hydra"}}}, table.Common)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "found tokens", logs.All()[0].Message)
}

func TestExtractTokensCancelled(t *testing.T) {
	d, err := LoadDeck(writeDeck(t, "Goblins", goblinDeck))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ExtractTokens(ctx, d, token.NewExtractor(token.DefaultVocabulary()), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenImages(t *testing.T) {
	dir := writeDeck(t, "Goblins", goblinDeck)
	tokens := filepath.Join(dir, "Tokens", "creatures")
	require.NoError(t, os.MkdirAll(tokens, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tokens, "Goblin_Shaman.png"), []byte("png"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Tokens", "notes.txt"), []byte("x"), 0644))

	d, err := LoadDeck(dir)
	require.NoError(t, err)

	images, err := d.TokenImages()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"goblin shaman": filepath.Join(tokens, "Goblin_Shaman.png")}, images)

	p, ok := d.TokenImage("Goblin Shaman")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(tokens, "Goblin_Shaman.png"), p)

	_, ok = d.TokenImage("Treasure")
	assert.False(t, ok)
}

func TestScanLibrary(t *testing.T) {
	lib := t.TempDir()
	for name, data := range map[string]string{
		"Goblins": goblinDeck,
		"Broken":  `{"Card": "not an object"}`,
	} {
		dir := filepath.Join(lib, name)
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName(name)), []byte(data), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(lib, "Scratch"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(lib, "notes.txt"), []byte("x"), 0644))

	entries, err := ScanLibrary(lib)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Broken", entries[0].Name)
	assert.Error(t, entries[0].Err)

	goblins := entries[1]
	assert.Equal(t, "Goblins", goblins.Name)
	assert.NoError(t, goblins.Err)
	assert.Equal(t, 4, goblins.Cards)
	assert.False(t, goblins.HasTable())

	d, err := LoadDeck(goblins.Path)
	require.NoError(t, err)
	table, err := Tokens(context.Background(), d, token.NewExtractor(token.DefaultVocabulary()), 2, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, WriteTokenTable(d.TokenTablePath(), table))

	entries, err = ScanLibrary(lib)
	require.NoError(t, err)
	assert.True(t, entries[1].HasTable())
	assert.Equal(t, 1, entries[1].Tokens)
	assert.Equal(t, 1, entries[1].Common)

	_, err = ScanLibrary(filepath.Join(lib, "missing"))
	assert.Error(t, err)
}
