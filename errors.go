package treeconf

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeParseError  = "parse_error"  // malformed source text, stream, or file
	CodeRequired    = "required"     // required or vector key absent
	CodeInvalidType = "invalid_type" // leaf present but not convertible
	CodeNestedBuild = "nested_build" // failure while building a nested config
	CodeBuildFailed = "build_failed" // schema-boundary wrap, names the config type
)

// Issue represents a single build failure with its causal context.
type Issue struct {
	Path    string // Slash path of the failing field (for example: /server/port).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: source description, remediation hints.
	Cause   error  // Optional: underlying error, chained through nested builds.
}

// Issues is a collection of build failures that implements error. Field
// extraction aborts on the first failure, so an Issues value usually holds a
// single entry whose Cause chain leads to the failing leaf.
type Issues []Issue

// Error renders each issue followed by its cause chain.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for i, it := range iss {
		if i > 0 {
			b.WriteString("; ")
		}
		path := it.Path
		if path == "" {
			path = "/"
		}
		fmt.Fprintf(b, "%s at %s: %s", it.Code, path, it.Message)
		if it.Cause != nil {
			fmt.Fprintf(b, ": %s", it.Cause.Error())
		}
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is / errors.As walk the chain down to
// the underlying parser or conversion error.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsCode reports whether any issue in err's chain carries the given code.
func IsCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
		if it.Cause != nil && IsCode(it.Cause, code) {
			return true
		}
	}
	return false
}
