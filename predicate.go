package xuma

// Predicate is a boolean expression over a context: a [Single] input and
// value-matcher pair, or a boolean composition of other predicates
// ([And], [Or], [Not]).
//
// Composite evaluation is short-circuit and, per spec.md §4.2, evaluated
// in declaration order: And returns false on the first false child, Or
// returns true on the first true child. An empty And is true; an empty Or
// is false (the same convention as a fold over "&&"/"||" starting from
// the appropriate identity).
type Predicate[Ctx any] interface {
	Eval(ctx Ctx) bool

	// text returns a short, stable, human-readable rendering for trace
	// output. It never depends on ctx.
	text() string
}

// singlePredicate evaluates matcher.Matches(input.Extract(ctx)).
type singlePredicate[Ctx any] struct {
	input   DataInput[Ctx]
	matcher ValueMatcher
	label   string // optional, used in text() when set; else a generic rendering
}

// Single builds a predicate that extracts one datum and tests it against
// one value matcher. label is an optional human-readable name (e.g. the
// input's type URL) used only in trace output; pass "" to get a generic
// rendering.
func Single[Ctx any](input DataInput[Ctx], matcher ValueMatcher, label string) Predicate[Ctx] {
	return &singlePredicate[Ctx]{input: input, matcher: matcher, label: label}
}

func (p *singlePredicate[Ctx]) Eval(ctx Ctx) bool {
	return p.matcher.Matches(p.input.Extract(ctx))
}

func (p *singlePredicate[Ctx]) text() string {
	if p.label != "" {
		return p.label
	}
	return "single(...)"
}

type andPredicate[Ctx any] struct {
	children []Predicate[Ctx]
}

// And builds a short-circuiting conjunction, evaluated in declaration
// order. And() with no children is always true.
func And[Ctx any](children ...Predicate[Ctx]) Predicate[Ctx] {
	return &andPredicate[Ctx]{children: children}
}

func (p *andPredicate[Ctx]) Eval(ctx Ctx) bool {
	for _, c := range p.children {
		if !c.Eval(ctx) {
			return false
		}
	}
	return true
}

func (p *andPredicate[Ctx]) text() string { return joinText("and", p.children) }

type orPredicate[Ctx any] struct {
	children []Predicate[Ctx]
}

// Or builds a short-circuiting disjunction, evaluated in declaration
// order. Or() with no children is always false.
func Or[Ctx any](children ...Predicate[Ctx]) Predicate[Ctx] {
	return &orPredicate[Ctx]{children: children}
}

func (p *orPredicate[Ctx]) Eval(ctx Ctx) bool {
	for _, c := range p.children {
		if c.Eval(ctx) {
			return true
		}
	}
	return false
}

func (p *orPredicate[Ctx]) text() string { return joinText("or", p.children) }

type notPredicate[Ctx any] struct {
	child Predicate[Ctx]
}

// Not negates a predicate. Not(Not(p)) evaluates identically to p for
// every context, including one where p's input extracts [Absent]: the
// inner predicate reports false (absent-is-false), so Not reports true.
func Not[Ctx any](child Predicate[Ctx]) Predicate[Ctx] {
	return &notPredicate[Ctx]{child: child}
}

func (p *notPredicate[Ctx]) Eval(ctx Ctx) bool {
	return !p.child.Eval(ctx)
}

func (p *notPredicate[Ctx]) text() string {
	return "not(" + p.child.text() + ")"
}

func joinText[Ctx any](op string, children []Predicate[Ctx]) string {
	s := op + "("
	for i, c := range children {
		if i > 0 {
			s += ", "
		}
		s += c.text()
	}
	return s + ")"
}
