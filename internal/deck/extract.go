package deck

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arcanaland/manufactor/internal/card"
	"github.com/arcanaland/manufactor/internal/token"
)

// ExtractCard runs the extractor over every rules field of c.
func ExtractCard(e *token.Extractor, c *card.Card) token.Result {
	var res token.Result
	for _, text := range c.RulesTexts() {
		r := e.Extract(token.Source{Card: c.Name, Text: text, Complete: bool(c.Complete)})
		res.Specs = append(res.Specs, r.Specs...)
		res.Common = append(res.Common, r.Common...)
	}
	return res
}

// ExtractTokens extracts tokens from every card of d using up to workers
// goroutines. Results are returned in card order.
func ExtractTokens(ctx context.Context, d *Deck, e *token.Extractor, workers int) ([]token.Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]token.Result, len(d.Cards))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range d.Cards {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = ExtractCard(e, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Tokens extracts and aggregates every token of d.
func Tokens(ctx context.Context, d *Deck, e *token.Extractor, workers int, logger *zap.Logger) (*Table, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	results, err := ExtractTokens(ctx, d, e, workers)
	if err != nil {
		return nil, err
	}
	table := Aggregate(results)
	logger.Info("found tokens",
		zap.String("deck", d.Name),
		zap.Int("tokens", len(table.Tokens)),
		zap.Int("common_tokens", len(table.Common)),
	)
	return table, nil
}
