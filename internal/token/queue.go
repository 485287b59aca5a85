package token

import "strings"

// clauseQueue is the FIFO of clauses still to be examined. Clauses may be
// pushed while the queue is being drained.
type clauseQueue struct {
	items []string
}

// newClauseQueue seeds one clause per line of text.
func newClauseQueue(text string) *clauseQueue {
	return &clauseQueue{items: strings.Split(text, "\n")}
}

func (q *clauseQueue) push(clause string) {
	q.items = append(q.items, clause)
}

func (q *clauseQueue) pop() (string, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	clause := q.items[0]
	q.items = q.items[1:]
	return clause, true
}

func (q *clauseQueue) len() int {
	return len(q.items)
}
