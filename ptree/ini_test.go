package ptree_test

import (
	"testing"

	"github.com/reoring/treeconf/ptree"
)

func TestParseINI_RootAndSections(t *testing.T) {
	src := []byte(`
name = demo

[server]
host = localhost
port = 8080

[db.pool]
size = 4
`)
	n, err := ptree.ParseINI(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, err := ptree.Get[string](n, "name"); err != nil || v != "demo" {
		t.Fatalf("name = %q, %v", v, err)
	}
	server, ok := n.Child("server")
	if !ok {
		t.Fatalf("expected server section")
	}
	if v, err := ptree.Get[int](server, "port"); err != nil || v != 8080 {
		t.Fatalf("port = %v, %v", v, err)
	}
	db, ok := n.Child("db")
	if !ok {
		t.Fatalf("expected db subtree from dotted section")
	}
	pool, ok := db.Child("pool")
	if !ok {
		t.Fatalf("expected pool under db")
	}
	if v, err := ptree.Get[int](pool, "size"); err != nil || v != 4 {
		t.Fatalf("size = %v, %v", v, err)
	}
}

func TestParseINI_KeyOrder(t *testing.T) {
	src := []byte("[s]\nz = 1\na = 2\nm = 3\n")
	n, err := ptree.ParseINI(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s, _ := n.Child("s")
	want := []string{"z", "a", "m"}
	for i, c := range s.Children() {
		if c.Key != want[i] {
			t.Fatalf("expected key %q at %d, got %q", want[i], i, c.Key)
		}
	}
}

func TestParseINI_Malformed(t *testing.T) {
	if _, err := ptree.ParseINI([]byte("[unclosed\nk=v\n")); err == nil {
		t.Fatalf("expected error for malformed ini")
	}
}
