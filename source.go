package treeconf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/reoring/treeconf/ptree"
)

// Format identifies a property-tree text format.
type Format int

const (
	FormatAuto Format = iota // sniff the content
	FormatJSON
	FormatYAML
	FormatINI
	FormatXML
	FormatInfo
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatINI:
		return "ini"
	case FormatXML:
		return "xml"
	case FormatInfo:
		return "info"
	default:
		return "auto"
	}
}

// Source abstracts over polymorphic input sources: raw text, a stream, or a
// file. Load parses the source into a property tree; Name describes the
// source for error context.
type Source interface {
	Load() (*ptree.Node, error)
	Name() string
}

// Bytes wraps raw bytes as a Source. FormatAuto sniffs the content.
func Bytes(b []byte, f Format) Source { return bytesSource{b: b, format: f, name: "bytes"} }

// Text wraps a raw string as a Source. FormatAuto sniffs the content.
func Text(s string, f Format) Source { return bytesSource{b: []byte(s), format: f, name: "text"} }

// Reader wraps a stream as a Source. The stream is read in full on Load.
func Reader(r io.Reader, f Format) Source { return readerSource{r: r, format: f} }

// File wraps a filesystem path as a Source, dispatching the format on the
// extension and falling back to content sniffing.
func File(path string) Source { return fileSource{path: path} }

// Convenience constructors for a fixed format.
func JSON(b []byte) Source { return Bytes(b, FormatJSON) }
func YAML(b []byte) Source { return Bytes(b, FormatYAML) }
func INI(b []byte) Source  { return Bytes(b, FormatINI) }
func XML(b []byte) Source  { return Bytes(b, FormatXML) }
func Info(b []byte) Source { return Bytes(b, FormatInfo) }

type bytesSource struct {
	b      []byte
	format Format
	name   string
}

func (s bytesSource) Load() (*ptree.Node, error) { return parseBytes(s.b, s.format) }
func (s bytesSource) Name() string               { return s.name }

type readerSource struct {
	r      io.Reader
	format Format
}

func (s readerSource) Load() (*ptree.Node, error) {
	b, err := io.ReadAll(s.r)
	if err != nil {
		return nil, fmt.Errorf("read stream: %w", err)
	}
	return parseBytes(b, s.format)
}

func (s readerSource) Name() string { return "stream" }

type fileSource struct {
	path string
}

func (s fileSource) Load() (*ptree.Node, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	return parseBytes(b, FormatForPath(s.path))
}

func (s fileSource) Name() string { return "file " + s.path }

func parseBytes(b []byte, f Format) (*ptree.Node, error) {
	if f == FormatAuto {
		f = Detect(b)
	}
	switch f {
	case FormatJSON:
		return ptree.ParseJSON(b)
	case FormatYAML:
		return ptree.ParseYAML(b)
	case FormatINI:
		return ptree.ParseINI(b)
	case FormatXML:
		return ptree.ParseXML(b)
	case FormatInfo:
		return ptree.ParseInfo(b)
	}
	return nil, fmt.Errorf("unsupported format %v", f)
}

// FormatForPath maps a file extension to a Format, FormatAuto when unknown.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".ini":
		return FormatINI
	case ".xml":
		return FormatXML
	case ".info":
		return FormatInfo
	}
	return FormatAuto
}

// Detect sniffs the text format of b. The heuristics favor the formats'
// distinctive openings: '{' / '[' / '"' for JSON, '<' for XML, '[section]'
// headers and '=' separators for INI, ':' separators for YAML, bare
// key/value pairs for info.
func Detect(b []byte) Format {
	t := bytes.TrimLeft(bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF}), " \t\r\n")
	if len(t) == 0 {
		return FormatInfo
	}
	switch t[0] {
	case '{', '"':
		return FormatJSON
	case '<':
		return FormatXML
	case '[':
		if isINISectionHeader(firstLine(t)) {
			return FormatINI
		}
		return FormatJSON
	}
	line := firstContentLine(t)
	switch {
	case strings.Contains(line, "="):
		return FormatINI
	case strings.Contains(line, ": ") || strings.HasSuffix(strings.TrimRight(line, " \t"), ":"):
		return FormatYAML
	}
	return FormatInfo
}

func firstLine(b []byte) string {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return strings.TrimRight(string(b[:i]), " \t\r")
	}
	return strings.TrimRight(string(b), " \t\r")
}

// firstContentLine returns the first line that is neither blank nor a
// ';'/'#' comment.
func firstContentLine(b []byte) string {
	for _, line := range strings.Split(string(b), "\n") {
		l := strings.TrimSpace(line)
		if l == "" || l[0] == ';' || l[0] == '#' {
			continue
		}
		return l
	}
	return ""
}

func isINISectionHeader(line string) bool {
	return len(line) >= 3 && line[0] == '[' && line[len(line)-1] == ']' &&
		!strings.ContainsAny(line[1:len(line)-1], "[]{},\"")
}
