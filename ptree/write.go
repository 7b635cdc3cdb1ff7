package ptree

import (
	"fmt"
	"io"
	"strings"
)

// WriteInfo renders the children of n in info syntax. The root node's own
// value is not rendered, matching how the parsers treat the root as an
// anonymous container.
func WriteInfo(w io.Writer, n *Node) error {
	return writeInfoChildren(w, n, 0)
}

// String renders the tree in info syntax, mostly for tests and debugging.
func (n *Node) String() string {
	var b strings.Builder
	_ = WriteInfo(&b, n)
	return b.String()
}

func writeInfoChildren(w io.Writer, n *Node, indent int) error {
	pad := strings.Repeat("    ", indent)
	for _, c := range n.children {
		if _, err := io.WriteString(w, pad+infoQuote(c.Key)); err != nil {
			return err
		}
		if v := c.Node.value; v != "" {
			if _, err := io.WriteString(w, " "+infoQuote(v)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if c.Node.Len() > 0 {
			if _, err := fmt.Fprintf(w, "%s{\n", pad); err != nil {
				return err
			}
			if err := writeInfoChildren(w, c.Node, indent+1); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s}\n", pad); err != nil {
				return err
			}
		}
	}
	return nil
}

func infoQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\r\n{};\"\\") {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
