// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize caps how large a document Check accepts (5MB).
// The limit keeps a runaway or malicious file from exhausting memory.
const DefaultMaxFileSize int64 = 5 * 1024 * 1024

type (
	// checkOptions holds per-call settings for Schema.Check.
	checkOptions struct {
		maxFileSize int64
		concrete    bool
		filename    string
	}

	// Option adjusts how Schema.Check treats a document.
	Option func(*checkOptions)
)

func resolveOptions(opts []Option) checkOptions {
	settings := checkOptions{
		maxFileSize: DefaultMaxFileSize,
		concrete:    true,
		filename:    "<input>",
	}
	for _, opt := range opts {
		opt(&settings)
	}
	if settings.filename == "" {
		settings.filename = "<input>"
	}
	return settings
}

// WithMaxFileSize overrides the DefaultMaxFileSize document cap.
func WithMaxFileSize(size int64) Option {
	return func(o *checkOptions) { o.maxFileSize = size }
}

// WithConcrete controls whether every regular field must be concrete
// after unification. Pass false for documents whose schema leaves
// fields optional.
func WithConcrete(concrete bool) Option {
	return func(o *checkOptions) { o.concrete = concrete }
}

// WithFilename names the document in error messages.
func WithFilename(name string) Option {
	return func(o *checkOptions) { o.filename = name }
}
