package treeconf

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/reoring/treeconf/i18n"
	"github.com/reoring/treeconf/ptree"
)

// Type holds the schema metadata of config type T: its name, description,
// and ordered field descriptors. The descriptor list is populated exactly
// once, lazily, on first use; afterwards it is read-only and safe for
// concurrent readers.
type Type[T any] struct {
	name     string
	desc     string
	register func(*Builder[T])

	once   sync.Once
	fields []*fieldDescriptor[T]
}

// Define declares a config type. The register function runs once, on first
// use, and must register every field in declaration order. Typical usage is a
// package-level variable:
//
//	type Server struct {
//		Host string
//		Port int
//	}
//
//	var serverType = treeconf.Define[Server]("Server", "HTTP server settings",
//		func(b *treeconf.Builder[Server]) {
//			treeconf.Field(b, "host", "listen address", func(c *Server) *string { return &c.Host })
//			treeconf.FieldDef(b, "port", "listen port", 8080, func(c *Server) *int { return &c.Port })
//		})
func Define[T any](name, description string, register func(*Builder[T])) *Type[T] {
	if name == "" {
		panic("treeconf: Define requires a config type name")
	}
	if register == nil {
		panic("treeconf: Define requires a registration function")
	}
	return &Type[T]{name: name, desc: description, register: register}
}

// Name returns the config type's name as used in errors and descriptions.
func (t *Type[T]) Name() string { return t.name }

func (t *Type[T]) descriptors() []*fieldDescriptor[T] {
	t.once.Do(func() {
		b := &Builder[T]{}
		t.register(b)
		t.fields = b.fields
	})
	return t.fields
}

// Defaultable reports whether every field of the type tolerates absence, in
// which case the whole config can be built from an empty subtree. The check
// is structural and looks one level deep: a nested field counts as tolerating
// absence only when registered as optional.
func (t *Type[T]) Defaultable() bool {
	for _, f := range t.descriptors() {
		if !f.hasDefault() && !f.optional() {
			return false
		}
	}
	return true
}

// FromTree builds one instance of T from an already-loaded tree by running
// every descriptor in registration order. The first failure aborts the build
// and is rewrapped with the config type's name; on failure the zero T is
// returned, never a partially populated instance.
func (t *Type[T]) FromTree(ctx context.Context, tree *ptree.Node) (T, error) {
	var cfg T
	if tree == nil {
		tree = ptree.New()
	}
	for _, f := range t.descriptors() {
		if err := f.assign(ctx, &cfg, tree); err != nil {
			var zero T
			return zero, AppendIssues(nil, Issue{
				Path:    "/",
				Code:    CodeBuildFailed,
				Message: i18n.T(CodeBuildFailed, map[string]string{"config": t.name}),
				Cause:   err,
			})
		}
	}
	return cfg, nil
}

// Make loads the source into a tree and builds one instance of T from it.
func (t *Type[T]) Make(ctx context.Context, src Source) (T, error) {
	tree, err := src.Load()
	if err != nil {
		var zero T
		return zero, AppendIssues(nil, Issue{
			Path:    "/",
			Code:    CodeParseError,
			Message: i18n.T(CodeParseError, nil),
			Hint:    fmt.Sprintf("cannot parse config from %s", src.Name()),
			Cause:   err,
		})
	}
	return t.FromTree(ctx, tree)
}

// MakeText builds T from raw text, sniffing the format.
func (t *Type[T]) MakeText(ctx context.Context, text string) (T, error) {
	return t.Make(ctx, Text(text, FormatAuto))
}

// MakeReader builds T from a stream, sniffing the format.
func (t *Type[T]) MakeReader(ctx context.Context, r io.Reader) (T, error) {
	return t.Make(ctx, Reader(r, FormatAuto))
}

// MakeFile builds T from a file, dispatching the format on the extension and
// falling back to sniffing.
func (t *Type[T]) MakeFile(ctx context.Context, path string) (T, error) {
	return t.Make(ctx, File(path))
}
