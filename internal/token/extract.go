package token

import (
	"strings"

	"go.uber.org/zap"

	"github.com/arcanaland/manufactor/internal/card"
)

// FrameClassifier maps a token description to its frame class.
type FrameClassifier func(card.Facts) (string, error)

// Extractor finds token descriptions in rules text. It holds no mutable
// state and may be shared between goroutines.
type Extractor struct {
	vocab     Vocabulary
	abilities map[string]card.Ability
	classify  FrameClassifier
	logger    *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClassifier replaces card.ClassifyFrame.
func WithClassifier(fc FrameClassifier) Option {
	return func(e *Extractor) {
		if fc != nil {
			e.classify = fc
		}
	}
}

// NewExtractor returns an Extractor over vocab.
func NewExtractor(vocab Vocabulary, opts ...Option) *Extractor {
	vocab = vocab.withDefaults()
	e := &Extractor{
		vocab:     vocab,
		abilities: card.AbilityTable(vocab.Abilities),
		classify:  card.ClassifyFrame,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns every token the source text creates, in queue order.
func (e *Extractor) Extract(src Source) Result {
	var res Result
	if strings.TrimSpace(src.Text) == "" {
		return res
	}

	var sources []string
	if src.Card != "" {
		sources = []string{src.Card}
	}

	queue := newClauseQueue(src.Text)
	for queue.len() > 0 {
		text, _ := queue.pop()
		spec, ok := e.extractClause(text, queue)
		if !ok {
			continue
		}
		spec.SourceCards = sources
		spec.Complete = src.Complete

		if _, excluded := lookup(e.vocab.Exclude, spec.Name); excluded {
			e.logger.Debug("excluded token name", zap.String("name", spec.Name), zap.String("card", src.Card))
			continue
		}
		if name, common := lookup(e.vocab.CommonTokens, spec.Name); common {
			res.Common = append(res.Common, CommonRef{Name: name, SourceCards: sources})
			continue
		}
		if !spec.Valid() {
			e.logger.Debug("dropping token without a card type",
				zap.String("name", spec.Name), zap.String("cardtype", spec.CardType), zap.String("card", src.Card))
			continue
		}
		res.Specs = append(res.Specs, spec)
	}
	return res
}

// extractClause builds the spec described by one clause. Trailing clauses
// discovered on the way are pushed onto queue.
func (e *Extractor) extractClause(text string, queue *clauseQueue) (Spec, bool) {
	c, ok := locate(text)
	if !ok {
		return Spec{}, false
	}
	c.splitTrailing(queue)
	if c.isCopy() {
		e.logger.Debug("skipping token copy", zap.String("clause", c.text()))
		return Spec{}, false
	}

	name, fromSubtype := c.name()
	quantity := c.quantityIndex()
	subtype := c.subtype(quantity, name, e.vocab)
	if fromSubtype {
		name = subtype
	} else if subtype == name {
		subtype = ""
	}

	spec := Spec{
		Name:     strings.TrimSpace(name),
		CardType: c.typeLine(quantity, e.vocab.CardTypes),
		Subtype:  subtype,
		Colors:   c.colors(quantity),
	}
	spec.Power, spec.Toughness = c.powerToughness()

	abilities, siblings := splitSiblings(c.captureAbilities())
	for _, sibling := range siblings {
		queue.push("create " + strings.Join(sibling, " "))
	}
	spec.Rules = expandKeyword(Normalize(strings.Join(abilities, " ")), e.abilities)

	for _, rw := range e.vocab.Rewrites {
		if rw.Match(&spec) {
			rw.Apply(&spec, c.text())
		}
	}

	frame, err := e.classify(card.Facts{
		TypeLine: spec.CardType,
		Subtype:  spec.Subtype,
		Colors:   spec.Colors,
		Rules:    spec.Rules,
	})
	if err != nil {
		e.logger.Debug("no frame for token", zap.String("name", spec.Name), zap.Error(err))
	}
	spec.Frame = frame
	return spec, true
}
