package skema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes produced by the engine itself. Tests registered through Test use
// their own name as the code (for example "is-value", "min", "oneOf").
const (
	CodeInvalidType = "invalid_type"
	CodeRequired    = "required"
	CodeDefined     = "defined"
	CodeNullable    = "nullable"
	CodeOneOf       = "oneOf"
	CodeNotOneOf    = "notOneOf"
)

// ErrorKind classifies an Issue.
type ErrorKind int

const (
	// KindTestFailure is a registered predicate that returned false.
	KindTestFailure ErrorKind = iota
	// KindTypeMismatch is a value that failed the base type check after coercion.
	KindTypeMismatch
	// KindPresence is a required-but-absent value or a null on a non-nullable node.
	KindPresence
)

func (k ErrorKind) String() string {
	switch k {
	case KindTypeMismatch:
		return "type_mismatch"
	case KindPresence:
		return "presence_violation"
	default:
		return "test_failure"
	}
}

// Issue represents a single validation failure.
type Issue struct {
	Path    string // JSON Pointer of the validated value ("/" for the root).
	Code    string // Engine code or the originating test name.
	Kind    ErrorKind
	Message string // Rendered message.
	// Params carries the structured parameters used to render Message
	// (value, path, label and any test params).
	Params map[string]any
	// Rule records the originating test name for test failures.
	Rule string
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Codes returns the issue codes in order.
func (iss Issues) Codes() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Code
	}
	return out
}

// Has reports whether any issue carries the given code.
func (iss Issues) Has(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
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

// Misuse of the builder API. These are never returned for ordinary validation
// outcomes.
var (
	ErrMalformedTest      = errors.New("skema: malformed test")
	ErrIncompatibleConcat = errors.New("skema: incompatible concat")
)

// ConfigError reports a schema construction mistake.
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

func configErrorf(op string, sentinel error, format string, args ...any) *ConfigError {
	return &ConfigError{Op: op, Err: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)}
}
