package cmd

import (
	"errors"
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/manufactor/internal/config"
	"github.com/arcanaland/manufactor/internal/validator"
)

var strict bool

var errValidation = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate [deck]",
	Short: "Validate a deck and its token table",
	Long: `Validate checks the cards of a deck file, the token table written by
'manufactor tokens' and the rendered token images in the deck's Tokens folder.

Errors fail the command. With --strict, warnings do too.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		}
		deckPath, err := resolveDeck(name)
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		defs, err := config.LoadTokenDefs(cfg.GetTokenDefsPath())
		if err != nil {
			return err
		}

		v := validator.NewValidator(deckPath)
		v.CommonTokens = defs
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("cannot validate %s: %w", deckPath, err)
		}

		printResults(deckPath, results)
		if len(results.Errors) > 0 || (strict && len(results.Warnings) > 0) {
			return errValidation
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors")
}

func printResults(deckPath string, results validator.ValidationResults) {
	list := func(items []string, mark func(string, ...interface{}) string) {
		for _, item := range items {
			fmt.Printf("  %s %s\n", mark("•"), item)
		}
	}

	if len(results.Errors) == 0 {
		fmt.Println(colorize.GreenString("✔"), deckPath, "is valid")
	} else {
		fmt.Println(colorize.RedString("✘"), deckPath, colorize.RedString("has %d errors", len(results.Errors)))
		list(results.Errors, colorize.RedString)
	}

	if len(results.Warnings) > 0 {
		fmt.Println(colorize.YellowString("%d warnings", len(results.Warnings)))
		list(results.Warnings, colorize.YellowString)
	}
}
