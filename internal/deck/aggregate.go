package deck

import (
	"sort"
	"strings"

	"github.com/arcanaland/manufactor/internal/token"
)

// Table is the deduplicated token list of a deck.
type Table struct {
	Tokens []token.Spec
	Common []token.CommonRef
}

// Aggregate merges per-card results. Specs equal on every field except
// SourceCards and Complete collapse into one whose SourceCards is the union
// and whose Complete is the conjunction. Tokens keep first-seen order and
// common tokens are sorted by name.
func Aggregate(results []token.Result) *Table {
	table := &Table{}
	index := map[string]int{}
	common := map[string]int{}

	for _, res := range results {
		for _, spec := range res.Specs {
			key := spec.Key()
			i, ok := index[key]
			if !ok {
				spec.SourceCards = union(nil, spec.SourceCards)
				index[key] = len(table.Tokens)
				table.Tokens = append(table.Tokens, spec)
				continue
			}
			merged := &table.Tokens[i]
			merged.SourceCards = union(merged.SourceCards, spec.SourceCards)
			merged.Complete = merged.Complete && spec.Complete
		}

		for _, ref := range res.Common {
			key := strings.ToLower(ref.Name)
			i, ok := common[key]
			if !ok {
				common[key] = len(table.Common)
				table.Common = append(table.Common, token.CommonRef{Name: ref.Name, SourceCards: union(nil, ref.SourceCards)})
				continue
			}
			table.Common[i].SourceCards = union(table.Common[i].SourceCards, ref.SourceCards)
		}
	}

	sort.SliceStable(table.Common, func(i, j int) bool {
		return table.Common[i].Name < table.Common[j].Name
	})
	return table
}

// CommonNames returns the names of the common tokens in table order.
func (t *Table) CommonNames() []string {
	names := make([]string, 0, len(t.Common))
	for _, ref := range t.Common {
		names = append(names, ref.Name)
	}
	return names
}

func union(dst, src []string) []string {
	out := append([]string{}, dst...)
	for _, s := range src {
		found := false
		for _, existing := range out {
			if existing == s {
				found = true
				break
			}
		}
		if !found {
			out = append(out, s)
		}
	}
	return out
}
