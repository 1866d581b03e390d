package httpmatch

import (
	"net/http"
	"testing"

	"github.com/quay/xuma"
	"github.com/quay/xuma/valuematch"
)

func mustMatcher(t *testing.T, rules []xuma.FieldMatcher[Context, string], onNoMatch *xuma.OnMatch[Context, string]) *xuma.Matcher[Context, string] {
	t.Helper()
	m, err := xuma.NewMatcher(rules, onNoMatch)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// Scenario 1: exact HTTP path.
func TestExactPath(t *testing.T) {
	m := mustMatcher(t, []xuma.FieldMatcher[Context, string]{
		{
			Predicate: xuma.Single[Context](PathInput{}, valuematch.Exact{Literal: "/api/users"}, ""),
			OnMatch:   xuma.OnAction[Context, string]("users"),
		},
	}, nil)

	if got, ok := m.Evaluate(Context{Method: "GET", Path: "/api/users"}); !ok || got != "users" {
		t.Errorf("got (%q, %v), want (\"users\", true)", got, ok)
	}
	if _, ok := m.Evaluate(Context{Method: "GET", Path: "/api/posts"}); ok {
		t.Error("expected no match for /api/posts")
	}
}

// Scenario 2: AND path+method.
func TestAndPathMethod(t *testing.T) {
	m := mustMatcher(t, []xuma.FieldMatcher[Context, string]{
		{
			Predicate: xuma.And[Context](
				xuma.Single[Context](PathInput{}, valuematch.Prefix{Literal: "/api"}, ""),
				xuma.Single[Context](MethodInput{}, valuematch.Exact{Literal: "POST"}, ""),
			),
			OnMatch: xuma.OnAction[Context, string]("api_write"),
		},
	}, nil)

	if got, ok := m.Evaluate(Context{Method: "POST", Path: "/api/x"}); !ok || got != "api_write" {
		t.Errorf("POST /api/x: got (%q, %v), want (\"api_write\", true)", got, ok)
	}
	if _, ok := m.Evaluate(Context{Method: "GET", Path: "/api/x"}); ok {
		t.Error("GET /api/x should not match")
	}
	if _, ok := m.Evaluate(Context{Method: "POST", Path: "/x"}); ok {
		t.Error("POST /x should not match")
	}
}

func nestedNoFallback(t *testing.T) *xuma.Matcher[Context, string] {
	inner := mustMatcher(t, []xuma.FieldMatcher[Context, string]{
		{
			Predicate: xuma.Single[Context](PathInput{}, valuematch.Prefix{Literal: "/api"}, ""),
			OnMatch:   xuma.OnAction[Context, string]("get_api"),
		},
	}, nil)
	return mustMatcher(t, []xuma.FieldMatcher[Context, string]{
		{
			Predicate: xuma.Single[Context](MethodInput{}, valuematch.Exact{Literal: "GET"}, ""),
			OnMatch:   xuma.OnNested[Context, string](inner),
		},
	}, nil)
}

// Scenario 3: nested, no fallback.
func TestNestedNoFallback(t *testing.T) {
	m := nestedNoFallback(t)
	if got, ok := m.Evaluate(Context{Method: "GET", Path: "/api/a"}); !ok || got != "get_api" {
		t.Errorf("got (%q, %v), want (\"get_api\", true)", got, ok)
	}
	if _, ok := m.Evaluate(Context{Method: "GET", Path: "/health"}); ok {
		t.Error("nested no-match must not fall through to any outer fallback")
	}
}

// Scenario 4: on_no_match at outer level.
func TestOnNoMatchAtOuter(t *testing.T) {
	inner := mustMatcher(t, []xuma.FieldMatcher[Context, string]{
		{
			Predicate: xuma.Single[Context](PathInput{}, valuematch.Prefix{Literal: "/api"}, ""),
			OnMatch:   xuma.OnAction[Context, string]("get_api"),
		},
	}, nil)
	onNoMatch := xuma.OnAction[Context, string]("default")
	m := mustMatcher(t, []xuma.FieldMatcher[Context, string]{
		{
			Predicate: xuma.Single[Context](MethodInput{}, valuematch.Exact{Literal: "GET"}, ""),
			OnMatch:   xuma.OnNested[Context, string](inner),
		},
	}, &onNoMatch)

	if got, ok := m.Evaluate(Context{Method: "GET", Path: "/health"}); !ok || got != "default" {
		t.Errorf("got (%q, %v), want (\"default\", true): outer fallback fires because no outer rule produced an action", got, ok)
	}
}

// Scenario 5: NOT absent semantics.
func TestNotAbsentSemantics(t *testing.T) {
	p := xuma.Not[Context](xuma.Single[Context](HeaderInput{Name: "x"}, valuematch.Exact{Literal: "y"}, ""))
	if !p.Eval(Context{Header: http.Header{}}) {
		t.Error("Exact.Matches(Absent)==false, so Not should yield true for a request with no header x")
	}
}

// Scenario 6: tiered routing (fallback through nested).
func TestTieredRouting(t *testing.T) {
	type tierCtx struct {
		tier, region string
	}
	tierInput := xuma.InputFunc[tierCtx](func(c tierCtx) xuma.Value {
		if c.tier == "" {
			return xuma.Absent
		}
		return xuma.Str(c.tier)
	})
	regionInput := xuma.InputFunc[tierCtx](func(c tierCtx) xuma.Value {
		if c.region == "" {
			return xuma.Absent
		}
		return xuma.Str(c.region)
	})

	premiumOnNoMatch := xuma.OnAction[tierCtx, string]("premium_default")
	premiumNested, err := xuma.NewMatcher(
		[]xuma.FieldMatcher[tierCtx, string]{
			{
				Predicate: xuma.Single[tierCtx](regionInput, valuematch.Exact{Literal: "us-east"}, ""),
				OnMatch:   xuma.OnAction[tierCtx, string]("premium_us_east"),
			},
		},
		&premiumOnNoMatch,
	)
	if err != nil {
		t.Fatal(err)
	}

	outerOnNoMatch := xuma.OnAction[tierCtx, string]("free_tier")
	outer, err := xuma.NewMatcher(
		[]xuma.FieldMatcher[tierCtx, string]{
			{
				Predicate: xuma.Single[tierCtx](tierInput, valuematch.Exact{Literal: "premium"}, ""),
				OnMatch:   xuma.OnNested[tierCtx, string](premiumNested),
			},
		},
		&outerOnNoMatch,
	)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		ctx  tierCtx
		want string
	}{
		{tierCtx{tier: "premium", region: "us-east"}, "premium_us_east"},
		{tierCtx{tier: "premium", region: "ap"}, "premium_default"},
		{tierCtx{tier: "free"}, "free_tier"},
	}
	for _, c := range cases {
		if got, ok := outer.Evaluate(c.ctx); !ok || got != c.want {
			t.Errorf("Evaluate(%+v) = (%q, %v), want (%q, true)", c.ctx, got, ok, c.want)
		}
	}
}
