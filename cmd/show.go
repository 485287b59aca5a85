package cmd

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/arcanaland/manufactor/internal/ansi"
	"github.com/arcanaland/manufactor/internal/config"
	"github.com/arcanaland/manufactor/internal/deck"
	"github.com/arcanaland/manufactor/internal/logger"
	"github.com/arcanaland/manufactor/internal/token"
)

var showCmd = &cobra.Command{
	Use:   "show [deck] <token name>",
	Short: "Display a token with ANSI art",
	Long: `Show displays a token of a deck together with ANSI art of its rendered
image from the deck's Tokens folder. Tokens without an image are shown with a
swatch of their colors.

The token table is used when it exists; otherwise the deck is scanned.

Examples:
  manufactor show Goblin
  manufactor show "Goblin Horde" "Goblin Shaman"
  manufactor show "Goblin Horde" Treasure`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var deckName, tokenName string
		if len(args) == 2 {
			deckName, tokenName = args[0], args[1]
		} else {
			tokenName = args[0]
		}

		deckPath, err := resolveDeck(deckName)
		if err != nil {
			return err
		}
		d, err := deck.LoadDeck(deckPath)
		if err != nil {
			return fmt.Errorf("error loading deck: %w", err)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		table, err := loadOrExtract(cmd, d, cfg)
		if err != nil {
			return err
		}
		defs, err := config.LoadTokenDefs(cfg.GetTokenDefsPath())
		if err != nil {
			return err
		}

		spec, ok := findToken(table, defs, tokenName)
		if !ok {
			return fmt.Errorf("token not found in %s: %s", d.Name, tokenName)
		}

		art := tokenArt(d, spec)
		displayToken(spec, art, d.Name)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// loadOrExtract reads the deck's token table, scanning the deck when there
// is none yet.
func loadOrExtract(cmd *cobra.Command, d *deck.Deck, cfg *config.Config) (*deck.Table, error) {
	if _, err := os.Stat(d.TokenTablePath()); err == nil {
		return deck.LoadTokenTable(d.TokenTablePath())
	}
	logger.L().Debug("no token table, scanning deck", zap.String("deck", d.Name))
	return deck.Tokens(cmd.Context(), d, newExtractor(cfg), cfg.Workers, logger.L())
}

func findToken(table *deck.Table, defs map[string]token.Spec, name string) (token.Spec, bool) {
	for _, spec := range table.Tokens {
		if strings.EqualFold(spec.Name, name) {
			return spec, true
		}
	}
	common, _ := deck.Materialize(table.Common, defs)
	for _, spec := range common {
		if strings.EqualFold(spec.Name, name) {
			return spec, true
		}
	}
	return token.Spec{}, false
}

// tokenArt renders the token's image, cached under the cache dir, or a
// color swatch when there is no usable image.
func tokenArt(d *deck.Deck, spec token.Spec) string {
	swatch := ansi.Swatch(spec.Colors, ansi.DefaultWidth, ansi.DefaultHeight/2)

	imagePath, ok := d.TokenImage(spec.Name)
	if !ok {
		return swatch
	}

	cacheDir := filepath.Join(config.GetCacheDir(), "ansi_cache")
	cachePath := filepath.Join(cacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(imagePath))))
	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data)
	}

	art, err := ansi.RenderFile(imagePath, ansi.DefaultWidth, ansi.DefaultHeight)
	if err != nil {
		logger.L().Debug("cannot render token image", zap.String("path", imagePath), zap.Error(err))
		return swatch
	}
	if err := os.MkdirAll(cacheDir, 0755); err == nil {
		_ = os.WriteFile(cachePath, []byte(art), 0644)
	}
	return art
}

// displayToken prints the art on the left and the token details on the right
func displayToken(spec token.Spec, art, deckName string) {
	artLines := strings.Split(art, "\n")
	maxArtWidth := 0
	for _, line := range artLines {
		if w := len([]rune(ansi.Strip(line))); w > maxArtWidth {
			maxArtWidth = w
		}
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	spacing := 4
	infoStartCol := maxArtWidth + spacing
	infoWidth := width - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}

	label := func(s string) string { return colorize.CyanString("%-8s", s) }

	var infoLines []string
	infoLines = append(infoLines, label("Token:")+colorize.HiWhiteString("%s", spec.Name))
	infoLines = append(infoLines, label("Deck:")+colorize.HiWhiteString("%s", deckName))
	typeLine := spec.CardType
	if spec.Subtype != "" {
		typeLine += " — " + spec.Subtype
	}
	infoLines = append(infoLines, label("Type:")+colorize.HiWhiteString("%s", typeLine))
	if spec.HasPowerToughness() {
		infoLines = append(infoLines, label("P/T:")+colorize.HiWhiteString("%s/%s", *spec.Power, *spec.Toughness))
	}
	colors := strings.ToUpper(strings.Join(spec.Colors, ""))
	if colors == "" {
		colors = "colorless"
	}
	infoLines = append(infoLines, label("Colors:")+colorize.HiWhiteString("%s", colors))
	if spec.Frame != "" {
		infoLines = append(infoLines, label("Frame:")+colorize.HiWhiteString("%s", spec.Frame))
	}
	if len(spec.SourceCards) > 0 {
		infoLines = append(infoLines, label("From:")+colorize.HiWhiteString("%s", strings.Join(spec.SourceCards, ", ")))
	}
	if spec.Complete {
		infoLines = append(infoLines, label("Status:")+colorize.GreenString("complete"))
	} else {
		infoLines = append(infoLines, label("Status:")+colorize.YellowString("needs art"))
	}

	if spec.Rules != "" {
		infoLines = append(infoLines, "", colorize.CyanString("Rules:"))
		infoLines = append(infoLines, ansi.Wrap(spec.Rules, infoWidth)...)
	}

	fmt.Println()
	for i := 0; i < max(len(artLines), len(infoLines)); i++ {
		fmt.Print("  ")
		if i < len(artLines) {
			fmt.Print(artLines[i])
			fmt.Print(strings.Repeat(" ", infoStartCol-len([]rune(ansi.Strip(artLines[i])))))
		} else {
			fmt.Print(strings.Repeat(" ", infoStartCol))
		}
		if i < len(infoLines) {
			fmt.Print(infoLines[i])
		}
		fmt.Println()
	}
	fmt.Println()
}
