package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/manufactor/internal/config"
	"github.com/arcanaland/manufactor/internal/deck"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage the deck library",
	Long: `Commands for the deck library. Every deck is a folder holding
<Deck_Name>.json, its token table and a Tokens folder of rendered token art.`,
}

var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the decks of the library and their token tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetDeckLibraryPath()
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("No deck library at %s, run 'manufactor deck init' to create it.\n", libraryPath)
			return nil
		}

		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return fmt.Errorf("error getting default deck: %w", err)
		}
		decks, err := deck.ScanLibrary(libraryPath)
		if err != nil {
			return err
		}
		if len(decks) == 0 {
			fmt.Println("The deck library is empty. Copy deck folders to:", libraryPath)
			return nil
		}

		for _, d := range decks {
			marker := " "
			if d.Name == defaultDeck {
				marker = colorize.GreenString("*")
			}
			switch {
			case d.Err != nil:
				fmt.Printf("%s %s  %s\n", marker, d.Name, colorize.RedString("error: %v", d.Err))
			case !d.HasTable():
				fmt.Printf("%s %s  %d cards, %s\n", marker, d.Name, d.Cards, colorize.YellowString("no token table"))
			default:
				fmt.Printf("%s %s  %d cards, %d tokens, %d common\n", marker, d.Name, d.Cards, d.Tokens, d.Common)
			}
		}
		return nil
	},
}

var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default <deck>",
	Short: "Set the deck used when a command is given none",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath, err := config.GetDeckPath(args[0])
		if err != nil {
			return err
		}
		d, err := deck.LoadDeck(deckPath)
		if err != nil {
			return fmt.Errorf("not a valid deck: %w", err)
		}

		if err := config.SetDefaultDeck(args[0]); err != nil {
			return fmt.Errorf("error setting default deck: %w", err)
		}
		fmt.Printf("Default deck set to %s (%d cards)\n", d.Name, len(d.Cards))
		return nil
	},
}

var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the deck library, config file and common token file",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetDeckLibraryPath()
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %w", err)
		}
		fmt.Println("Deck library:", libraryPath)

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Println("Config file: ", config.GetConfigFilePath())

		if cfg.CommonTokenFile == "" {
			cfg.CommonTokenFile = "common_tokens.toml"
			if err := config.Update(func(c *config.Config) { c.CommonTokenFile = cfg.CommonTokenFile }); err != nil {
				return err
			}
		}
		path := cfg.GetTokenDefsPath()
		written, err := config.WriteTokenDefs(path, config.DefaultTokenDefs)
		if err != nil {
			return err
		}
		if written {
			fmt.Println("Common tokens:", path)
		} else {
			fmt.Println("Common tokens:", path, colorize.HiBlackString("(kept)"))
		}

		fmt.Printf("\nCopy deck folders to %s and run 'manufactor tokens <deck>'.\n", filepath.Clean(libraryPath))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd, deckSetDefaultCmd, deckInitCmd)
}
