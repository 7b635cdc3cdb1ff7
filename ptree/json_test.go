package ptree_test

import (
	"testing"

	"github.com/reoring/treeconf/ptree"
)

func TestParseJSON_ObjectOrder(t *testing.T) {
	n, err := ptree.ParseJSON([]byte(`{"z":1,"a":2,"m":3}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []string{"z", "a", "m"}
	cs := n.Children()
	if len(cs) != len(want) {
		t.Fatalf("expected %d children, got %d", len(want), len(cs))
	}
	for i, k := range want {
		if cs[i].Key != k {
			t.Fatalf("expected key %q at %d, got %q", k, i, cs[i].Key)
		}
	}
}

func TestParseJSON_NestedAndArrays(t *testing.T) {
	n, err := ptree.ParseJSON([]byte(`{"db":{"dsn":"postgres://x"},"ports":[8080,8081],"ok":true,"none":null}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	db, ok := n.Child("db")
	if !ok {
		t.Fatalf("expected db subtree")
	}
	if v, err := ptree.Get[string](db, "dsn"); err != nil || v != "postgres://x" {
		t.Fatalf("dsn = %q, %v", v, err)
	}
	ports, ok := n.Child("ports")
	if !ok || ports.Len() != 2 {
		t.Fatalf("expected 2 ports")
	}
	// array elements carry empty keys in tree order
	for _, c := range ports.Children() {
		if c.Key != "" {
			t.Fatalf("expected empty key for array element, got %q", c.Key)
		}
	}
	if v, err := ptree.As[int](ports.Children()[1].Node); err != nil || v != 8081 {
		t.Fatalf("second port = %v, %v", v, err)
	}
	if v, err := ptree.Get[bool](n, "ok"); err != nil || !v {
		t.Fatalf("ok = %v, %v", v, err)
	}
	none, _ := n.Child("none")
	if none.Value() != "" {
		t.Fatalf("null must map to empty value, got %q", none.Value())
	}
}

func TestParseJSON_NumbersKeepSpelling(t *testing.T) {
	n, err := ptree.ParseJSON([]byte(`{"a":0.5,"b":10000000000,"c":1e3}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, err := ptree.Get[float64](n, "a"); err != nil || v != 0.5 {
		t.Fatalf("a = %v, %v", v, err)
	}
	if v, err := ptree.Get[int64](n, "b"); err != nil || v != 10000000000 {
		t.Fatalf("b = %v, %v", v, err)
	}
	if v, err := ptree.Get[float64](n, "c"); err != nil || v != 1000 {
		t.Fatalf("c = %v, %v", v, err)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	for _, src := range []string{`{`, `{"a":}`, `{"a":1} extra`} {
		if _, err := ptree.ParseJSON([]byte(src)); err == nil {
			t.Fatalf("expected error for %q", src)
		}
	}
}
