package treeconf

import (
	"fmt"
	"strings"
)

// Field lines use a fixed column layout: name, base type, optionality or
// default marker, default value, then the free-form description.
const describeFormat = "%s%-10s %-10s %-9s %-10s Description: %s"

const (
	describeOptional = "Optional"
	describeDefault  = "Default: "
)

// maxDescribeDepth caps nested description recursion. A self-referential
// schema graph would otherwise recurse without bound; deeper levels render a
// single elision marker.
const maxDescribeDepth = 8

// Describe renders the config type's name, description, and one line per
// field in registration order. Nested config fields append a
// "<name> fields:" header followed by the nested type's lines, indented one
// level deeper, recursively. Output is deterministic.
func (t *Type[T]) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nDescription: %s\nFields:", t.name, t.desc)
	b.WriteString(t.describeFields("", 0))
	return b.String()
}

func (t *Type[T]) describeFields(indent string, depth int) string {
	var b strings.Builder
	for _, f := range t.descriptors() {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(f.describe(" ", indent, depth))
	}
	return b.String()
}

func (d *fieldDescriptor[S]) describe(prefix, indent string, depth int) string {
	optCol, defCol := "", ""
	switch d.kind {
	case kindOptional, kindOptionalVector, kindOptionalNested:
		optCol = describeOptional
	case kindDefault:
		optCol = describeDefault
		defCol = d.defaultText
	}
	line := fmt.Sprintf(describeFormat, prefix, d.name, d.baseType, optCol, defCol, d.desc)
	if d.nested != nil {
		line += fmt.Sprintf("\n%s%s%s fields:", indent, prefix, d.name)
		if depth >= maxDescribeDepth {
			line += "\n" + indent + prefix + " ..."
		} else {
			line += d.nested.describeFields(indent+prefix+" ", depth+1)
		}
	}
	return line
}
