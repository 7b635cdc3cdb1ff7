package treeconf_test

import (
	"errors"
	"fmt"
	"testing"

	treeconf "github.com/reoring/treeconf"
)

func TestIssues_ErrorRendering(t *testing.T) {
	leaf := errors.New("boom")
	iss := treeconf.Issues{
		{Path: "/db/dsn", Code: treeconf.CodeRequired, Message: "key missing", Cause: leaf},
	}
	want := "required at /db/dsn: key missing: boom"
	if got := iss.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	multi := treeconf.Issues{
		{Code: treeconf.CodeParseError, Message: "bad input"},
		{Path: "/port", Code: treeconf.CodeInvalidType, Message: "not an int"},
	}
	want = "parse_error at /: bad input; invalid_type at /port: not an int"
	if got := multi.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if treeconf.Issues(nil).Error() != "" {
		t.Fatalf("empty issues must render empty")
	}
}

func TestIssues_UnwrapChain(t *testing.T) {
	leaf := errors.New("leaf")
	inner := treeconf.Issues{{Code: treeconf.CodeRequired, Message: "missing", Cause: leaf}}
	outer := treeconf.Issues{{Code: treeconf.CodeBuildFailed, Message: "cannot build", Cause: inner}}
	wrapped := fmt.Errorf("loading: %w", outer)

	if !errors.Is(wrapped, leaf) {
		t.Fatalf("errors.Is must reach the leaf through the cause chain")
	}
	var got treeconf.Issues
	if !errors.As(wrapped, &got) || got[0].Code != treeconf.CodeBuildFailed {
		t.Fatalf("errors.As should find the outermost Issues, got %v", got)
	}
}

func TestAsIssues(t *testing.T) {
	iss := treeconf.Issues{{Code: treeconf.CodeParseError, Message: "x"}}
	if got, ok := treeconf.AsIssues(fmt.Errorf("wrap: %w", iss)); !ok || len(got) != 1 {
		t.Fatalf("expected wrapped issues, got %v, %v", got, ok)
	}
	if _, ok := treeconf.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error must not yield issues")
	}
	if _, ok := treeconf.AsIssues(nil); ok {
		t.Fatalf("nil error must not yield issues")
	}
}

func TestIsCode_Depth(t *testing.T) {
	inner := treeconf.Issues{{Code: treeconf.CodeRequired, Message: "missing"}}
	mid := treeconf.Issues{{Code: treeconf.CodeNestedBuild, Message: "nested", Cause: inner}}
	outer := treeconf.Issues{{Code: treeconf.CodeBuildFailed, Message: "top", Cause: mid}}

	for _, code := range []string{treeconf.CodeBuildFailed, treeconf.CodeNestedBuild, treeconf.CodeRequired} {
		if !treeconf.IsCode(outer, code) {
			t.Errorf("IsCode should find %q in the chain", code)
		}
	}
	if treeconf.IsCode(outer, treeconf.CodeParseError) {
		t.Fatalf("IsCode must not report absent codes")
	}
	if treeconf.IsCode(nil, treeconf.CodeRequired) {
		t.Fatalf("IsCode(nil) must be false")
	}
}

func TestAppendIssues(t *testing.T) {
	iss := treeconf.AppendIssues(nil, treeconf.Issue{Code: treeconf.CodeRequired})
	iss = treeconf.AppendIssues(iss, treeconf.Issue{Code: treeconf.CodeInvalidType})
	if len(iss) != 2 || iss[0].Code != treeconf.CodeRequired || iss[1].Code != treeconf.CodeInvalidType {
		t.Fatalf("unexpected issues: %v", iss)
	}
}
