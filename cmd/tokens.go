package cmd

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/manufactor/internal/config"
	"github.com/arcanaland/manufactor/internal/deck"
	"github.com/arcanaland/manufactor/internal/logger"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [deck]",
	Short: "Find the tokens a deck creates and write its token table",
	Long: `Tokens reads the rules text of every card in a deck, collects the tokens
those cards create and writes them to <deck>_Tokens.json in the deck folder.

The deck is looked up in your deck library (XDG_DATA_HOME/manufactor/decks),
as a path, or taken from the default deck in your config.

Examples:
  manufactor tokens
  manufactor tokens "Goblin Horde" --dry-run
  manufactor tokens ./decks/Goblin_Horde/Goblin_Horde.json --workers 8`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		workers, _ := cmd.Flags().GetInt("workers")

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("workers") && cfg.Workers > 0 {
			workers = cfg.Workers
		}

		var name string
		if len(args) == 1 {
			name = args[0]
		}
		deckPath, err := resolveDeck(name)
		if err != nil {
			return err
		}
		d, err := deck.LoadDeck(deckPath)
		if err != nil {
			return fmt.Errorf("error loading deck: %w", err)
		}

		table, err := deck.Tokens(cmd.Context(), d, newExtractor(cfg), workers, logger.L())
		if err != nil {
			return fmt.Errorf("error extracting tokens: %w", err)
		}

		printTable(d, table)

		defs, err := config.LoadTokenDefs(cfg.GetTokenDefsPath())
		if err != nil {
			return err
		}
		if _, missing := deck.Materialize(table.Common, defs); len(missing) > 0 {
			colorize.Yellow("Common tokens without a definition: %s", strings.Join(missing, ", "))
		}

		if dryRun {
			return nil
		}
		if err := deck.WriteTokenTable(d.TokenTablePath(), table); err != nil {
			return err
		}
		fmt.Println("Token table written to:", d.TokenTablePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().Bool("dry-run", false, "Print the tokens without writing the token table")
	tokensCmd.Flags().IntP("workers", "w", 0, "Number of cards processed concurrently (default: number of CPUs)")
}

func printTable(d *deck.Deck, table *deck.Table) {
	fmt.Printf("%s %s\n", colorize.CyanString("Deck:"), colorize.HiWhiteString("%s", d.Name))
	fmt.Printf("Found %s tokens and %s common tokens\n",
		colorize.HiWhiteString("%d", len(table.Tokens)),
		colorize.HiWhiteString("%d", len(table.Common)))

	for _, spec := range table.Tokens {
		line := colorize.HiWhiteString("%s", spec.Name) + " · " + spec.CardType
		if spec.Subtype != "" {
			line += " — " + spec.Subtype
		}
		if spec.HasPowerToughness() {
			line += fmt.Sprintf(" %s/%s", *spec.Power, *spec.Toughness)
		}
		status := colorize.GreenString("complete")
		if !spec.Complete {
			status = colorize.YellowString("needs art")
		}
		fmt.Printf("  %s [%s] %s\n", line, status, colorize.HiBlackString("from %s", strings.Join(spec.SourceCards, ", ")))
	}
	for _, ref := range table.Common {
		fmt.Printf("  %s %s\n", colorize.CyanString(ref.Name), colorize.HiBlackString("from %s", strings.Join(ref.SourceCards, ", ")))
	}
}
