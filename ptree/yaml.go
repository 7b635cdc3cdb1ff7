package ptree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML builds a property tree from YAML text. Decoding goes through
// yaml.Node rather than a map so that mapping key order survives.
func ParseYAML(b []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return New(), nil
	}
	return yamlNode(doc.Content[0])
}

func yamlNode(y *yaml.Node) (*Node, error) {
	switch y.Kind {
	case yaml.ScalarNode:
		if y.Tag == "!!null" {
			return Leaf(""), nil
		}
		return Leaf(y.Value), nil
	case yaml.MappingNode:
		n := New()
		for i := 0; i+1 < len(y.Content); i += 2 {
			child, err := yamlNode(y.Content[i+1])
			if err != nil {
				return nil, err
			}
			n.Add(y.Content[i].Value, child)
		}
		return n, nil
	case yaml.SequenceNode:
		n := New()
		for _, item := range y.Content {
			child, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			n.Add("", child)
		}
		return n, nil
	case yaml.AliasNode:
		return yamlNode(y.Alias)
	}
	return nil, fmt.Errorf("yaml: unsupported node kind %d at line %d", y.Kind, y.Line)
}
