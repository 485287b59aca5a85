package card

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardUnmarshal(t *testing.T) {
	data := `{
		"name": "Goblin Instigator",
		"cardtype": "Creature",
		"subtype": "Goblin",
		"power": 1,
		"toughness": "1",
		"rules": "When this enters, create a 1/1 red Goblin creature token.",
		"rules2": "Haste",
		"complete": 1,
		"legendary": false
	}`

	var c Card
	require.NoError(t, json.Unmarshal([]byte(data), &c))
	assert.Equal(t, "Goblin Instigator", c.Name)
	assert.Equal(t, FlexString("1"), c.Power)
	assert.Equal(t, FlexString("1"), c.Toughness)
	assert.True(t, bool(c.Complete))
	assert.False(t, bool(c.Legendary))
	assert.Equal(t, []string{
		"When this enters, create a 1/1 red Goblin creature token.",
		"Haste",
	}, c.RulesTexts())
}

func TestFlexBool(t *testing.T) {
	for in, want := range map[string]bool{
		`1`: true, `0`: false, `true`: true, `false`: false, `"1"`: true, `null`: false, `2`: true,
	} {
		var b FlexBool
		require.NoError(t, json.Unmarshal([]byte(in), &b), in)
		assert.Equal(t, want, bool(b), in)
	}

	var b FlexBool
	assert.Error(t, json.Unmarshal([]byte(`"yes"`), &b))

	out, err := json.Marshal(FlexBool(true))
	require.NoError(t, err)
	assert.Equal(t, "1", string(out))
}

func TestParseTypeLine(t *testing.T) {
	tl := ParseTypeLine("Legendary Token Artifact Land")
	assert.Equal(t, []string{"legendary", "token"}, tl.Supertypes)
	assert.Equal(t, []string{"artifact", "land"}, tl.CardTypes)
	assert.True(t, tl.Has("land"))
	assert.False(t, tl.Has("creature"))

	assert.Empty(t, ParseTypeLine("Token").CardTypes)
	assert.True(t, IsCardType("Creature"))
	assert.False(t, IsCardType("Goblin"))
}

func TestAbilityTable(t *testing.T) {
	table := AbilityTable(Abilities)
	ab, ok := table[AbilityKey("Protection From Everything.")]
	require.True(t, ok)
	assert.Equal(t, "Protection from everything", ab.Name)

	_, ok = table[AbilityKey("flying")]
	assert.False(t, ok)
}
