package ptree

import (
	"fmt"
	"strings"
)

// ParseInfo builds a property tree from the generic nested key/value "info"
// format:
//
//	key value
//	section
//	{
//	    child "quoted value"
//	    empty
//	}
//	; comment until end of line
//
// A key may carry an inline value, a child block, or both. Keys and values
// are bare words or double-quoted strings with \" \\ \n \t escapes.
func ParseInfo(b []byte) (*Node, error) {
	s := &infoScanner{b: b, line: 1}
	root := New()
	if err := infoEntries(s, root, true); err != nil {
		return nil, err
	}
	return root, nil
}

func infoEntries(s *infoScanner, n *Node, top bool) error {
	for {
		s.skipSpace()
		switch s.peek() {
		case 0:
			if !top {
				return s.errf("unexpected end of input, expected '}'")
			}
			return nil
		case '}':
			if top {
				return s.errf("unexpected '}'")
			}
			s.advance()
			return nil
		case '{':
			return s.errf("entry must start with a key")
		}
		key, err := s.string()
		if err != nil {
			return err
		}
		child := New()
		n.Add(key, child)

		// An inline value must sit on the same line as its key.
		s.skipLineSpace()
		switch s.peek() {
		case 0, '\n', '{', '}':
		default:
			v, err := s.string()
			if err != nil {
				return err
			}
			child.SetValue(v)
		}

		s.skipSpace()
		if s.peek() == '{' {
			s.advance()
			if err := infoEntries(s, child, false); err != nil {
				return err
			}
		}
	}
}

type infoScanner struct {
	b    []byte
	i    int
	line int
}

func (s *infoScanner) peek() byte {
	if s.i >= len(s.b) {
		return 0
	}
	return s.b[s.i]
}

func (s *infoScanner) advance() {
	if s.i < len(s.b) {
		if s.b[s.i] == '\n' {
			s.line++
		}
		s.i++
	}
}

func (s *infoScanner) errf(format string, args ...any) error {
	return fmt.Errorf("info: line %d: %s", s.line, fmt.Sprintf(format, args...))
}

// skipSpace consumes whitespace of any kind plus comments.
func (s *infoScanner) skipSpace() {
	for {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.advance()
		case ';':
			s.skipComment()
		default:
			return
		}
	}
}

// skipLineSpace consumes spaces and tabs but stops at a line break, so that
// inline values stay bound to their key's line. A comment ends the line.
func (s *infoScanner) skipLineSpace() {
	for {
		switch s.peek() {
		case ' ', '\t', '\r':
			s.advance()
		case ';':
			s.skipComment()
			return
		default:
			return
		}
	}
}

func (s *infoScanner) skipComment() {
	for s.peek() != 0 && s.peek() != '\n' {
		s.advance()
	}
}

func (s *infoScanner) string() (string, error) {
	if s.peek() == '"' {
		return s.quoted()
	}
	start := s.i
	for {
		c := s.peek()
		if c == 0 || c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '{' || c == '}' || c == ';' || c == '"' {
			break
		}
		s.advance()
	}
	if s.i == start {
		return "", s.errf("expected a string, found %q", s.peek())
	}
	return string(s.b[start:s.i]), nil
}

func (s *infoScanner) quoted() (string, error) {
	s.advance() // opening quote
	var b strings.Builder
	for {
		c := s.peek()
		switch c {
		case 0, '\n':
			return "", s.errf("unterminated string")
		case '"':
			s.advance()
			return b.String(), nil
		case '\\':
			s.advance()
			switch e := s.peek(); e {
			case '"', '\\':
				b.WriteByte(e)
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				return "", s.errf("unknown escape \\%c", e)
			}
			s.advance()
		default:
			b.WriteByte(c)
			s.advance()
		}
	}
}
