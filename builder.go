package treeconf

import "fmt"

// Builder collects the field descriptors of a config type during its
// registration function. Fields are kept in registration order, which governs
// both build order and description order.
type Builder[S any] struct {
	fields []*fieldDescriptor[S]
	names  map[string]struct{}
}

func (b *Builder[S]) add(d *fieldDescriptor[S]) {
	if d.name == "" {
		panic("treeconf: field name must not be empty")
	}
	if b.names == nil {
		b.names = map[string]struct{}{}
	}
	if _, dup := b.names[d.name]; dup {
		panic(fmt.Sprintf("treeconf: duplicate field %q", d.name))
	}
	b.names[d.name] = struct{}{}
	b.fields = append(b.fields, d)
}
