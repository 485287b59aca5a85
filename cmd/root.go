package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/manufactor/internal/config"
	"github.com/arcanaland/manufactor/internal/logger"
	"github.com/arcanaland/manufactor/internal/token"
)

var verbose bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "manufactor",
	Short: "Tool for finding and managing the tokens of custom card sets",
	Long: `Manufactor reads the rules text of a custom card set, finds every token
its cards create and keeps a token table next to the deck so the tokens can be
rendered alongside the cards.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.New(verbose)
		if err != nil {
			return err
		}
		logger.Set(l)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.L().Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// resolveDeck returns the path of the named deck, or of the default deck
// from the config when name is empty.
func resolveDeck(name string) (string, error) {
	if name == "" {
		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return "", fmt.Errorf("error getting default deck: %w", err)
		}
		if defaultDeck == "" {
			return "", fmt.Errorf("no deck given and no default deck set, run 'manufactor deck set-default'")
		}
		name = defaultDeck
	}
	return config.GetDeckPath(name)
}

// newExtractor builds an extractor from the config's vocabulary.
func newExtractor(cfg *config.Config) *token.Extractor {
	return token.NewExtractor(cfg.Vocabulary(), token.WithLogger(logger.L().Named("token")))
}
