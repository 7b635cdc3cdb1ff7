package treeconf

import (
	"context"
	"errors"
	"fmt"

	"github.com/reoring/treeconf/i18n"
	"github.com/reoring/treeconf/ptree"
)

// fieldKind tags the seven field shapes. The kind is fixed when the field is
// registered and selects both extraction and description behavior.
type fieldKind int

const (
	kindRequired fieldKind = iota
	kindDefault
	kindOptional
	kindVector
	kindOptionalVector
	kindNested
	kindOptionalNested
)

// nestedDescriber is the view a descriptor needs of a nested config type for
// description and defaultability checks. *Type[N] implements it.
type nestedDescriber interface {
	Defaultable() bool
	describeFields(prefix string, depth int) string
}

// fieldDescriptor describes one field of config type S: its metadata plus the
// closure that extracts the field's value from a tree into an instance. The
// closure touches only its own storage location.
type fieldDescriptor[S any] struct {
	kind        fieldKind
	name        string
	desc        string
	baseType    string
	defaultText string
	assign      func(ctx context.Context, cfg *S, tree *ptree.Node) error
	nested      nestedDescriber // set for the two nested kinds
}

func (d *fieldDescriptor[S]) hasDefault() bool { return d.kind == kindDefault }

func (d *fieldDescriptor[S]) optional() bool {
	switch d.kind {
	case kindOptional, kindOptionalVector, kindOptionalNested:
		return true
	}
	return false
}

// typeNameOf renders the displayed base type for a scalar or slice field.
func typeNameOf[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// fieldIssue maps a ptree extraction error onto the field's path.
func fieldIssue(name string, err error) error {
	var ke *ptree.KeyError
	if errors.As(err, &ke) {
		return AppendIssues(nil, Issue{
			Path:    "/" + name,
			Code:    CodeRequired,
			Message: i18n.T(CodeRequired, map[string]string{"key": name}),
			Cause:   err,
		})
	}
	return AppendIssues(nil, Issue{
		Path:    "/" + name,
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"key": name}),
		Cause:   err,
	})
}

// nestedIssue wraps a nested build failure at the field site. The cause keeps
// the nested config's own Issues, so the rendered chain runs from the
// outermost config down to the failing leaf.
func nestedIssue(name string, err error) error {
	return AppendIssues(nil, Issue{
		Path:    "/" + name,
		Code:    CodeNestedBuild,
		Message: i18n.T(CodeNestedBuild, map[string]string{"key": name}),
		Cause:   err,
	})
}

// Field registers a required scalar field: a missing key or an unconvertible
// value fails the build.
func Field[S any, F ptree.Scalar](b *Builder[S], name, description string, at func(*S) *F) {
	b.add(&fieldDescriptor[S]{
		kind:     kindRequired,
		name:     name,
		desc:     description,
		baseType: typeNameOf[F](),
		assign: func(_ context.Context, cfg *S, tree *ptree.Node) error {
			v, err := ptree.Get[F](tree, name)
			if err != nil {
				return fieldIssue(name, err)
			}
			*at(cfg) = v
			return nil
		},
	})
}

// FieldDef registers a scalar field with a declared default: a missing key
// assigns the default, an unconvertible value still fails.
func FieldDef[S any, F ptree.Scalar](b *Builder[S], name, description string, def F, at func(*S) *F) {
	b.add(&fieldDescriptor[S]{
		kind:        kindDefault,
		name:        name,
		desc:        description,
		baseType:    typeNameOf[F](),
		defaultText: fmt.Sprintf("%v", def),
		assign: func(_ context.Context, cfg *S, tree *ptree.Node) error {
			v, err := ptree.GetOpt[F](tree, name)
			if err != nil {
				return fieldIssue(name, err)
			}
			if v == nil {
				*at(cfg) = def
			} else {
				*at(cfg) = *v
			}
			return nil
		},
	})
}

// FieldOpt registers an optional scalar field stored as *F: a missing key
// leaves it nil.
func FieldOpt[S any, F ptree.Scalar](b *Builder[S], name, description string, at func(*S) **F) {
	b.add(&fieldDescriptor[S]{
		kind:     kindOptional,
		name:     name,
		desc:     description,
		baseType: typeNameOf[F](),
		assign: func(_ context.Context, cfg *S, tree *ptree.Node) error {
			v, err := ptree.GetOpt[F](tree, name)
			if err != nil {
				return fieldIssue(name, err)
			}
			*at(cfg) = v
			return nil
		},
	})
}

// FieldVec registers a required vector field: the key's subtree must be
// present and each child converts independently, in tree order. The first
// conversion failure aborts the whole field.
func FieldVec[S any, F ptree.Scalar](b *Builder[S], name, description string, at func(*S) *[]F) {
	b.add(&fieldDescriptor[S]{
		kind:     kindVector,
		name:     name,
		desc:     description,
		baseType: typeNameOf[[]F](),
		assign: func(_ context.Context, cfg *S, tree *ptree.Node) error {
			sub, ok := tree.Child(name)
			if !ok {
				return fieldIssue(name, &ptree.KeyError{Key: name})
			}
			out, err := vectorOf[F](name, sub)
			if err != nil {
				return err
			}
			*at(cfg) = out
			return nil
		},
	})
}

// FieldVecOpt registers an optional vector field: a missing key yields a nil
// slice instead of an error.
func FieldVecOpt[S any, F ptree.Scalar](b *Builder[S], name, description string, at func(*S) *[]F) {
	b.add(&fieldDescriptor[S]{
		kind:     kindOptionalVector,
		name:     name,
		desc:     description,
		baseType: typeNameOf[[]F](),
		assign: func(_ context.Context, cfg *S, tree *ptree.Node) error {
			sub, ok := tree.Child(name)
			if !ok {
				*at(cfg) = nil
				return nil
			}
			out, err := vectorOf[F](name, sub)
			if err != nil {
				return err
			}
			*at(cfg) = out
			return nil
		},
	})
}

func vectorOf[F ptree.Scalar](name string, sub *ptree.Node) ([]F, error) {
	out := make([]F, 0, sub.Len())
	for _, c := range sub.Children() {
		v, err := ptree.As[F](c.Node)
		if err != nil {
			return nil, fieldIssue(name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// FieldSub registers a nested config field. When the nested type is fully
// defaultable (every field defaulted or optional) a missing key builds it
// from an empty subtree; otherwise a missing key fails. Defaultability is
// re-evaluated on every build since it depends only on the nested type's
// static schema.
func FieldSub[S any, N any](b *Builder[S], name, description string, nt *Type[N], at func(*S) *N) {
	b.add(&fieldDescriptor[S]{
		kind:     kindNested,
		name:     name,
		desc:     description,
		baseType: nt.name,
		nested:   nt,
		assign: func(ctx context.Context, cfg *S, tree *ptree.Node) error {
			sub, ok := tree.Child(name)
			if !ok {
				if !nt.Defaultable() {
					return fieldIssue(name, &ptree.KeyError{Key: name})
				}
				sub = ptree.New()
			}
			v, err := nt.FromTree(ctx, sub)
			if err != nil {
				return nestedIssue(name, err)
			}
			*at(cfg) = v
			return nil
		},
	})
}

// FieldSubOpt registers an optional nested config field stored as *N: a
// missing key leaves it nil, a present key builds it recursively.
func FieldSubOpt[S any, N any](b *Builder[S], name, description string, nt *Type[N], at func(*S) **N) {
	b.add(&fieldDescriptor[S]{
		kind:     kindOptionalNested,
		name:     name,
		desc:     description,
		baseType: nt.name,
		nested:   nt,
		assign: func(ctx context.Context, cfg *S, tree *ptree.Node) error {
			sub, ok := tree.Child(name)
			if !ok {
				*at(cfg) = nil
				return nil
			}
			v, err := nt.FromTree(ctx, sub)
			if err != nil {
				return nestedIssue(name, err)
			}
			*at(cfg) = &v
			return nil
		},
	})
}
