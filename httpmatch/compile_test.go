package httpmatch

import (
	"testing"

	"github.com/quay/xuma/valuematch"
)

func TestCompileAndWithinOrAcrossRows(t *testing.T) {
	p := Compile([]Row{
		{
			{Input: PathInput{}, Matcher: valuematch.Prefix{Literal: "/api"}},
			{Input: MethodInput{}, Matcher: valuematch.Exact{Literal: "POST"}},
		},
		{
			{Input: PathInput{}, Matcher: valuematch.Exact{Literal: "/health"}},
		},
	})

	if !p.Eval(Context{Method: "POST", Path: "/api/widgets"}) {
		t.Error("POST /api/widgets should match the first row")
	}
	if p.Eval(Context{Method: "GET", Path: "/api/widgets"}) {
		t.Error("GET /api/widgets should fail the first row's AND")
	}
	if !p.Eval(Context{Method: "GET", Path: "/health"}) {
		t.Error("GET /health should match the second row")
	}
}

func TestCompileEmptyRowIsTautology(t *testing.T) {
	p := Compile([]Row{{}})
	if !p.Eval(Context{}) {
		t.Error("an empty row should always match")
	}
}

func TestCompileNoRowsNeverMatches(t *testing.T) {
	p := Compile(nil)
	if p.Eval(Context{Method: "GET", Path: "/"}) {
		t.Error("no rows should never match")
	}
}
