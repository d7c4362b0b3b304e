package checker

import (
	"github.com/rs/zerolog"
)

// Option describes a function used to configure a check.
type Option func(*config)

type config struct {
	preset        string
	disabledRules []string
	entryFile     bool
	testRunner    string
	expectErrors  bool
	logger        zerolog.Logger
}

func newConfig(opts ...Option) *config {
	cfg := &config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithPreset selects a named rule preset. An unknown preset name causes
// Check to return an error.
func WithPreset(name string) Option {
	return func(cfg *config) {
		cfg.preset = name
	}
}

// WithDisabledRules turns off the given rule ids for this check. This option
// is additive and combines with any preset.
func WithDisabledRules(ids ...string) Option {
	return func(cfg *config) {
		cfg.disabledRules = append(cfg.disabledRules, ids...)
	}
}

// WithEntryFile marks the file as a main/entry file. Entry files permit a
// bare main() invocation and namespace re-exports, and are exempt from the
// one-public-function and filename-match rules. Files named "index" are
// treated as entry files without this option.
func WithEntryFile() Option {
	return func(cfg *config) {
		cfg.entryFile = true
	}
}

// WithTestRunner names the test runner whose registration calls are allowed
// at the top level (for example "vitest", "node", or "deno").
func WithTestRunner(name string) Option {
	return func(cfg *config) {
		cfg.testRunner = name
	}
}

// WithExpectErrors enables purets-expect-error tracking. The result then
// reports declared expectations that never fired.
func WithExpectErrors() Option {
	return func(cfg *config) {
		cfg.expectErrors = true
	}
}

// WithLogger supplies a logger for checker debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
