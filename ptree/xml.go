package ptree

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// AttrKey is the pseudo-child under which an XML element's attributes are
// stored, mirroring the "<xmlattr>" convention of boost property_tree so that
// the same schema works across input formats.
const AttrKey = "<xmlattr>"

// ParseXML builds a property tree from XML text. Element text becomes the
// node value, attributes go under AttrKey, and child elements keep document
// order. Repeated element names simply repeat as children.
func ParseXML(b []byte) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(b); err != nil {
		return nil, fmt.Errorf("xml: %w", err)
	}
	root := New()
	for _, el := range doc.ChildElements() {
		root.Add(el.Tag, xmlElement(el))
	}
	return root, nil
}

func xmlElement(el *etree.Element) *Node {
	n := Leaf(strings.TrimSpace(el.Text()))
	if len(el.Attr) > 0 {
		attrs := New()
		for _, a := range el.Attr {
			attrs.Add(a.Key, Leaf(a.Value))
		}
		n.Add(AttrKey, attrs)
	}
	for _, c := range el.ChildElements() {
		n.Add(c.Tag, xmlElement(c))
	}
	return n
}
