package treeconf_test

import (
	"fmt"
	"strings"
	"testing"

	treeconf "github.com/reoring/treeconf"
)

// line renders one field line the way the fixed column layout specifies,
// duplicated here on purpose so the test fails if the layout drifts.
func line(indent, name, baseType, opt, def, desc string) string {
	return indent + fmt.Sprintf(" %-10s %-10s %-9s %-10s Description: %s", name, baseType, opt, def, desc)
}

func TestDescribe_Layout(t *testing.T) {
	got := appType.Describe()
	want := strings.Join([]string{
		"App",
		"Description: application settings",
		"Fields:",
		line("", "name", "string", "", "", "application name"),
		line("", "debug", "bool", "Optional", "", "verbose diagnostics"),
		line("", "limits", "Limits", "", "", "connection limits"),
		" limits fields:",
		line("  ", "max_conns", "int", "Default: ", "64", "connection cap"),
		line("  ", "burst", "int", "Default: ", "8", "burst allowance"),
		line("", "db", "Database", "Optional", "", "primary database"),
		" db fields:",
		line("  ", "dsn", "string", "", "", "connection string"),
		line("  ", "replicas", "[]string", "Optional", "", "replica addresses"),
		line("", "workers", "[]int", "", "", "worker pool sizes"),
	}, "\n")
	if got != want {
		t.Fatalf("describe mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestDescribe_Deterministic(t *testing.T) {
	a := appType.Describe()
	b := appType.Describe()
	if a != b {
		t.Fatalf("describe must be byte-identical across calls")
	}
}

func TestDescribe_RequiredVectorNotMarkedOptional(t *testing.T) {
	out := appType.Describe()
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, " workers") && strings.Contains(l, "Optional") {
			t.Fatalf("required vector must not be described as optional: %q", l)
		}
	}
}

func TestDescribe_NestedIndentation(t *testing.T) {
	out := appType.Describe()
	if !strings.Contains(out, "\n limits fields:") {
		t.Fatalf("expected nested fields header, got:\n%s", out)
	}
	// nested lines sit one level (two spaces) deeper than their parent's
	if !strings.Contains(out, "\n   max_conns") {
		t.Fatalf("expected nested field indented one level deeper, got:\n%s", out)
	}
}

// Recursive carries a reference to its own type; description must terminate.
type Recursive struct {
	Name  string
	Child *Recursive
}

var recursiveType *treeconf.Type[Recursive]

func init() {
	recursiveType = treeconf.Define[Recursive]("Recursive", "self-referential chain",
		func(b *treeconf.Builder[Recursive]) {
			treeconf.Field(b, "name", "node name", func(c *Recursive) *string { return &c.Name })
			treeconf.FieldSubOpt(b, "child", "next node", recursiveType, func(c *Recursive) **Recursive { return &c.Child })
		})
}

func TestDescribe_SelfReferentialTerminates(t *testing.T) {
	out := recursiveType.Describe()
	if !strings.Contains(out, "...") {
		t.Fatalf("expected elision marker for recursive schema, got:\n%s", out)
	}
	if c := strings.Count(out, "child fields:"); c < 8 || c > 16 {
		t.Fatalf("unexpected recursion depth, %d headers:\n%s", c, out)
	}
}
