package ptree

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// ParseINI builds a property tree from INI text. Keys of the default section
// land at the root, every named section becomes a subtree, and dotted section
// names ("db.pool") nest.
func ParseINI(b []byte) (*Node, error) {
	f, err := ini.LoadSources(ini.LoadOptions{}, b)
	if err != nil {
		return nil, fmt.Errorf("ini: %w", err)
	}
	root := New()
	for _, sec := range f.Sections() {
		target := root
		if sec.Name() != ini.DefaultSection {
			for _, part := range strings.Split(sec.Name(), ".") {
				next, ok := target.Child(part)
				if !ok {
					next = target.Add(part, New())
				}
				target = next
			}
		}
		for _, k := range sec.Keys() {
			target.Add(k.Name(), Leaf(k.Value()))
		}
	}
	return root, nil
}
