package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/manufactor/internal/config"
	"github.com/arcanaland/manufactor/internal/token"
)

var parseCmd = &cobra.Command{
	Use:   "parse <rules text>",
	Short: "Extract tokens from a piece of rules text",
	Long: `Parse runs token extraction on rules text given on the command line and
prints the result. Use "\n" inside the text to separate abilities.

Examples:
  manufactor parse "Create a 2/2 green Bear creature token."
  manufactor parse --format yaml --card "Goblin Instigator" "When this enters, create a 1/1 red Goblin creature token."`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		cardName, _ := cmd.Flags().GetString("card")
		complete, _ := cmd.Flags().GetBool("complete")

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		text := strings.ReplaceAll(strings.Join(args, " "), `\n`, "\n")
		res := newExtractor(cfg).Extract(token.Source{Card: cardName, Text: text, Complete: complete})

		out, err := encodeResult(res, format)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")
	parseCmd.Flags().StringP("card", "c", "", "Name of the card the text belongs to")
	parseCmd.Flags().Bool("complete", false, "Mark extracted tokens as complete")
}

func encodeResult(res token.Result, format string) (string, error) {
	if res.Specs == nil {
		res.Specs = []token.Spec{}
	}
	if res.Common == nil {
		res.Common = []token.CommonRef{}
	}

	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return "", fmt.Errorf("error encoding result: %w", err)
		}
		return string(data) + "\n", nil
	case "yaml", "yml":
		data, err := yaml.Marshal(res)
		if err != nil {
			return "", fmt.Errorf("error encoding result: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown format %q (expected json or yaml)", format)
	}
}
