package token

import "strings"

type quoteState int

const (
	unquoted quoteState = iota
	quoted
)

// quoteTracker follows quotation balance word by word.
//
// A word with an even number of quote marks leaves the state unchanged.
// A word whose last period comes before its first quote mark (`card."`) ends
// a quotation that contains the period: the sentence-end test for that word
// still sees the quotation as open and the toggle is applied afterwards.
type quoteTracker struct {
	state quoteState
}

func (t *quoteTracker) toggle() {
	if t.state == quoted {
		t.state = unquoted
	} else {
		t.state = quoted
	}
}

// observe consumes one word and reports whether it ends the sentence.
func (t *quoteTracker) observe(word string) bool {
	deferred := false
	if strings.Count(word, `"`)%2 == 1 {
		q := strings.Index(word, `"`)
		if p := strings.LastIndex(word, "."); p >= 0 && p < q {
			deferred = true
		} else {
			t.toggle()
		}
	}
	ends := strings.Contains(word, ".") && t.state == unquoted
	if deferred {
		t.toggle()
	}
	return ends
}
