package httpmatch

import "github.com/quay/xuma"

// Condition pairs one input with the value matcher it must satisfy.
type Condition struct {
	Input   xuma.DataInput[Context]
	Matcher xuma.ValueMatcher
	Label   string
}

// Row is a set of Conditions combined with AND. An empty Row is a
// tautology — it always matches, since [xuma.And] of no children is
// true.
type Row []Condition

// Compile builds a predicate that matches if any Row matches: AND within
// a row, OR across rows. A nil or empty rows slice never matches, since
// [xuma.Or] of no children is false.
func Compile(rows []Row) xuma.Predicate[Context] {
	rowPreds := make([]xuma.Predicate[Context], 0, len(rows))
	for _, row := range rows {
		conds := make([]xuma.Predicate[Context], 0, len(row))
		for _, c := range row {
			conds = append(conds, xuma.Single[Context](c.Input, c.Matcher, c.Label))
		}
		rowPreds = append(rowPreds, xuma.And[Context](conds...))
	}
	return xuma.Or[Context](rowPreds...)
}
