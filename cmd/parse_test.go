package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/manufactor/internal/token"
)

func TestEncodeResult(t *testing.T) {
	res := token.NewExtractor(token.DefaultVocabulary()).Extract(token.Source{
		Card: "Goblin Instigator",
		Text: "When this enters, create a 1/1 red Goblin creature token.",
	})

	out, err := encodeResult(res, "json")
	require.NoError(t, err)
	var decoded map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded["tokens"], 1)
	assert.Equal(t, "Goblin", decoded["tokens"][0]["name"])
	assert.Equal(t, []interface{}{"Goblin Instigator"}, decoded["tokens"][0]["related"])
	assert.Empty(t, decoded["common_tokens"])

	out, err = encodeResult(res, "yaml")
	require.NoError(t, err)
	var fromYAML token.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	require.Len(t, fromYAML.Specs, 1)
	assert.Equal(t, "r_token_creature", fromYAML.Specs[0].Frame)

	_, err = encodeResult(res, "xml")
	assert.Error(t, err)
}

func TestParseCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"parse", "--card", "Trove", `Create a Treasure token.\nCreate a 2/2 green Bear creature token.`})
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	})
	require.NoError(t, RootCmd.Execute())

	var res token.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	require.Len(t, res.Specs, 1)
	assert.Equal(t, "Bear", res.Specs[0].Name)
	require.Len(t, res.Common, 1)
	assert.Equal(t, "Treasure", res.Common[0].Name)
	assert.Equal(t, []string{"Trove"}, res.Common[0].SourceCards)
}
