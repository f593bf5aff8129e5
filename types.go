package skema

import "github.com/rs/zerolog"

// ValidateOpt bundles per-call validation options.
type ValidateOpt struct {
	// Path is the JSON Pointer reported in issues and available as {path}
	// when the node has no label. Defaults to "/".
	Path string
	// FailFast stops at the first failing test. It is also enabled by
	// WithFailFast on the context.
	FailFast bool
	// Strict skips the transform chain and defaults for this call, in
	// addition to nodes built with Strict(true).
	Strict bool
	// Logger overrides the package logger for this call.
	Logger *zerolog.Logger
}
