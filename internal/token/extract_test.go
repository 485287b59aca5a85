package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/arcanaland/manufactor/internal/card"
)

func strPtr(s string) *string { return &s }

func extract(t *testing.T, text string) Result {
	t.Helper()
	e := NewExtractor(DefaultVocabulary(), WithLogger(zaptest.NewLogger(t)))
	return e.Extract(Source{Card: "Test Card", Text: text})
}

func TestExtract_TwoTokensInOneSentence(t *testing.T) {
	res := extract(t, "Create a 2/2 green Bear creature token and a 6/6 white Angel creature token.")

	require.Len(t, res.Specs, 2)
	assert.Empty(t, res.Common)

	bear := res.Specs[0]
	assert.Equal(t, "Bear", bear.Name)
	assert.Equal(t, "Token Creature", bear.CardType)
	assert.Equal(t, "Bear", bear.Subtype)
	assert.Equal(t, strPtr("2"), bear.Power)
	assert.Equal(t, strPtr("2"), bear.Toughness)
	assert.Equal(t, []string{"g"}, bear.Colors)
	assert.Equal(t, "g_token_creature", bear.Frame)
	assert.Equal(t, []string{"Test Card"}, bear.SourceCards)

	angel := res.Specs[1]
	assert.Equal(t, "Angel", angel.Name)
	assert.Equal(t, "Token Creature", angel.CardType)
	assert.Equal(t, "Angel", angel.Subtype)
	assert.Equal(t, strPtr("6"), angel.Power)
	assert.Equal(t, strPtr("6"), angel.Toughness)
	assert.Equal(t, []string{"w"}, angel.Colors)
}

func TestExtract_NameFallsBackToSubtype(t *testing.T) {
	res := extract(t, "create a 1/1 white Human Soldier creature token")

	require.Len(t, res.Specs, 1)
	spec := res.Specs[0]
	assert.Equal(t, "Human Soldier", spec.Name)
	assert.Equal(t, "Human Soldier", spec.Subtype)
	assert.Equal(t, "", spec.Rules)
}

func TestExtract_NamedLegendaryLand(t *testing.T) {
	res := extract(t, `When this enters, create a token named Boknok, a legendary artifact land token with "{T}: Add {R}."`)

	require.Len(t, res.Specs, 1)
	spec := res.Specs[0]
	assert.Equal(t, "Boknok", spec.Name)
	assert.Equal(t, "Legendary Token Artifact Land", spec.CardType)
	assert.Contains(t, spec.CardType, "Legendary")
	assert.Contains(t, spec.CardType, "Artifact")
	assert.Contains(t, spec.CardType, "Land")
	assert.Equal(t, "", spec.Subtype)
	assert.Equal(t, "{T}: Add {R}.", spec.Rules)
	assert.Nil(t, spec.Power)
	assert.Equal(t, "r_token_artifact-noncreature_legendary", spec.Frame)
}

func TestExtract_TrailingNonTokenClause(t *testing.T) {
	res := extract(t, "create a 1/1 red Goblin creature token and tokens you control gain indestructible")

	require.Len(t, res.Specs, 1)
	assert.Equal(t, "Goblin", res.Specs[0].Name)
	assert.Equal(t, []string{"r"}, res.Specs[0].Colors)
	assert.Empty(t, res.Common)
}

func TestExtract_CommonToken(t *testing.T) {
	res := extract(t, "Whenever you attack, create a Treasure token.")

	assert.Empty(t, res.Specs)
	require.Len(t, res.Common, 1)
	assert.Equal(t, "Treasure", res.Common[0].Name)
	assert.Equal(t, []string{"Test Card"}, res.Common[0].SourceCards)
}

func TestExtract_CommonTokenCasing(t *testing.T) {
	e := NewExtractor(Vocabulary{CommonTokens: []string{"Clue"}})
	res := e.Extract(Source{Text: "create a CLUE token."})

	require.Len(t, res.Common, 1)
	assert.Equal(t, "Clue", res.Common[0].Name)
	assert.Nil(t, res.Common[0].SourceCards)
}

func TestExtract_SentenceSplit(t *testing.T) {
	res := extract(t, "Create a 1/1 red Goblin creature token. Then create a Treasure token.")

	require.Len(t, res.Specs, 1)
	assert.Equal(t, "Goblin", res.Specs[0].Name)
	require.Len(t, res.Common, 1)
	assert.Equal(t, "Treasure", res.Common[0].Name)
}

func TestExtract_SiblingInsideAbilities(t *testing.T) {
	res := extract(t, "Create a 1/1 white Spirit creature token with flying and a 2/2 green Bear creature token.")

	require.Len(t, res.Specs, 2)
	assert.Equal(t, "Spirit", res.Specs[0].Name)
	assert.Equal(t, "Flying", res.Specs[0].Rules)
	assert.Equal(t, "w_token_creature", res.Specs[0].Frame)
	assert.Equal(t, "Bear", res.Specs[1].Name)
	assert.Equal(t, "", res.Specs[1].Rules)
}

func TestExtract_KeywordList(t *testing.T) {
	res := extract(t, "Create a 4/4 red Dragon creature token with flying, vigilance, and trample.")

	require.Len(t, res.Specs, 1)
	assert.Equal(t, "Flying, vigilance, trample", res.Specs[0].Rules)
}

func TestExtract_KeywordReminder(t *testing.T) {
	res := extract(t, "Create a 2/2 black Zombie creature token with decayed.")

	require.Len(t, res.Specs, 1)
	assert.Equal(t, "Decayed (This creature can't block. When it attacks, sacrifice it at end of combat.)", res.Specs[0].Rules)
}

func TestExtract_QuotedAbility(t *testing.T) {
	res := extract(t, `Create a 1/1 colorless Thopter artifact creature token with flying and "When this creature dies, draw a card."`)

	require.Len(t, res.Specs, 1)
	spec := res.Specs[0]
	assert.Equal(t, "Thopter", spec.Name)
	assert.Equal(t, "Token Artifact Creature", spec.CardType)
	assert.Equal(t, "Flying\nWhen this creature dies, draw a card.", spec.Rules)
	assert.Equal(t, []string{}, spec.Colors)
	assert.Equal(t, "c_token_artifact-creature", spec.Frame)
}

func TestExtract_Role(t *testing.T) {
	text := "Create a Wicked Role token attached to up to one target creature you control. " +
		"(If you control another Role on it, put that one into the graveyard. " +
		"Enchanted creature gets +1/+1. When this creature dies, each opponent loses 1 life.)"
	res := extract(t, text)

	require.Len(t, res.Specs, 1)
	spec := res.Specs[0]
	assert.Equal(t, "Wicked", spec.Name)
	assert.Equal(t, "Aura Role", spec.Subtype)
	assert.Equal(t, "Token Enchantment", spec.CardType)
	assert.Equal(t, "Enchant creature\nEnchanted creature gets +1/+1. When this creature dies, each opponent loses 1 life.", spec.Rules)
	assert.Nil(t, spec.Power)
	assert.Equal(t, "c_token_noncreature", spec.Frame)
}

func TestExtract_SkipsCopies(t *testing.T) {
	res := extract(t, "Create a token that's a copy of target creature you control.")
	assert.Empty(t, res.Specs)
	assert.Empty(t, res.Common)
}

func TestExtract_NoTokens(t *testing.T) {
	for _, text := range []string{
		"",
		"Flying",
		"Destroy target creature token.",
		"Create an emblem with \"Creatures you control get +1/+1.\"",
	} {
		res := extract(t, text)
		assert.Empty(t, res.Specs, text)
		assert.Empty(t, res.Common, text)
	}
}

func TestExtract_MultipleLines(t *testing.T) {
	res := extract(t, "Flying\nWhen this enters, create a 3/3 green Beast creature token.\nAt the beginning of your upkeep, create a Food token.")

	require.Len(t, res.Specs, 1)
	assert.Equal(t, "Beast", res.Specs[0].Name)
	require.Len(t, res.Common, 1)
	assert.Equal(t, "Food", res.Common[0].Name)
}

func TestExtract_Deterministic(t *testing.T) {
	text := "Create a 2/2 green Bear creature token and a 6/6 white Angel creature token with flying."
	e := NewExtractor(DefaultVocabulary())
	first := e.Extract(Source{Card: "A", Text: text})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Extract(Source{Card: "A", Text: text}))
	}
}

func TestExtract_CompleteFlag(t *testing.T) {
	e := NewExtractor(DefaultVocabulary())
	res := e.Extract(Source{Card: "A", Text: "create a 1/1 red Goblin creature token", Complete: true})

	require.Len(t, res.Specs, 1)
	assert.True(t, res.Specs[0].Complete)
}

func TestExtract_CustomClassifier(t *testing.T) {
	e := NewExtractor(DefaultVocabulary(), WithClassifier(func(f card.Facts) (string, error) {
		return "custom_" + f.Subtype, nil
	}))
	res := e.Extract(Source{Text: "create a 1/1 red Goblin creature token"})

	require.Len(t, res.Specs, 1)
	assert.Equal(t, "custom_Goblin", res.Specs[0].Frame)
}

func TestSpecKey(t *testing.T) {
	a := Spec{Name: "Bear", CardType: "Token Creature", Power: strPtr("2"), Toughness: strPtr("2"), SourceCards: []string{"A"}}
	b := a
	b.SourceCards = []string{"B"}
	b.Complete = true
	assert.Equal(t, a.Key(), b.Key())

	c := a
	c.Power = nil
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestSpecValid(t *testing.T) {
	assert.True(t, Spec{CardType: "Token Creature"}.Valid())
	assert.True(t, Spec{CardType: "Legendary Token Artifact Land"}.Valid())
	assert.False(t, Spec{CardType: "Token"}.Valid())
	assert.False(t, Spec{CardType: "Legendary Token"}.Valid())
}

func TestExtract_ExcludedNames(t *testing.T) {
	e := NewExtractor(Vocabulary{Exclude: []string{"Goblin"}}, WithLogger(zaptest.NewLogger(t)))
	res := e.Extract(Source{Card: "Goblin Instigator", Text: "create a 1/1 red Goblin creature token"})
	assert.Empty(t, res.Specs)
	assert.Empty(t, res.Common)

	res = extract(t, "create Creature, a 1/1 artifact creature token")
	assert.Empty(t, res.Specs)
	assert.Empty(t, res.Common)
}

func TestExtract_NamedStopsAbilities(t *testing.T) {
	res := extract(t, "create two 2/2 black Zombie creature tokens with menace named Grave Guard.")

	require.Len(t, res.Specs, 1)
	assert.Equal(t, "Grave Guard", res.Specs[0].Name)
	assert.Equal(t, "Zombie", res.Specs[0].Subtype)
	assert.Equal(t, "Menace", res.Specs[0].Rules)
}

func TestExtract_OrSibling(t *testing.T) {
	res := extract(t, "Create a 1/1 red Kobold creature token with menace or a 1/2 black Spider creature token with reach.")

	require.Len(t, res.Specs, 2)
	assert.Equal(t, "Kobold", res.Specs[0].Name)
	assert.Equal(t, "Menace", res.Specs[0].Rules)
	assert.Equal(t, "Spider", res.Specs[1].Name)
	assert.Equal(t, "Reach", res.Specs[1].Rules)
	assert.Equal(t, []string{"b"}, res.Specs[1].Colors)
}
