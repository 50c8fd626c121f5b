// FILE: lixenwraith/dconf/builder.go
package dconf

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// ValidatorFunc defines the signature for a function that can validate resolved Options.
// It runs after file, environment and explicit values have been merged.
type ValidatorFunc func(opts Options) error

// Builder provides a fluent interface for building clients
type Builder struct {
	base       Options
	tool       *string
	timeout    *time.Duration
	logLevel   *string
	file       string
	args       []string
	envEnabled bool
	envPrefix  string
	runner     Runner
	logger     *zerolog.Logger
	registerer prometheus.Registerer
	validators []ValidatorFunc
}

// NewBuilder creates a new client builder
func NewBuilder() *Builder {
	return &Builder{
		base:       DefaultOptions(),
		args:       os.Args[1:],
		envPrefix:  DefaultEnvPrefix,
		validators: make([]ValidatorFunc, 0),
	}
}

// WithOptions replaces the base options that file and environment values layer over
func (b *Builder) WithOptions(opts Options) *Builder {
	b.base = opts
	return b
}

// WithTool sets the configuration tool binary, overriding file and environment
func (b *Builder) WithTool(tool string) *Builder {
	b.tool = &tool
	return b
}

// WithTimeout sets the per-invocation timeout, overriding file and environment
func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	b.timeout = &timeout
	return b
}

// WithLogLevel sets the log level option, overriding file and environment
func (b *Builder) WithLogLevel(level string) *Builder {
	b.logLevel = &level
	return b
}

// WithFile sets the options file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithArgs sets the command-line arguments inspected by file discovery
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithEnvPrefix enables environment overrides using the given variable prefix
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envEnabled = true
	b.envPrefix = prefix
	return b
}

// WithRunner sets the process runner, mainly for tests
func (b *Builder) WithRunner(r Runner) *Builder {
	b.runner = r
	return b
}

// WithLogger sets the logger used for invocation records
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = &logger
	return b
}

// WithMetrics registers accessor collectors with reg
func (b *Builder) WithMetrics(reg prometheus.Registerer) *Builder {
	b.registerer = reg
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Options resolves the final options: explicit values > environment > file > base.
// A missing options file is reported as ErrOptionsNotFound alongside usable options.
func (b *Builder) Options() (Options, error) {
	opts := b.base
	var loadErr error

	if b.file != "" {
		if err := opts.loadFile(b.file); err != nil {
			if !errors.Is(err, ErrOptionsNotFound) {
				return opts, err
			}
			loadErr = err
		}
	}

	if b.envEnabled {
		if err := opts.loadEnv(defaultEnvTransform(b.envPrefix)); err != nil {
			return opts, err
		}
	}

	if b.tool != nil {
		opts.Tool = *b.tool
	}
	if b.timeout != nil {
		opts.Timeout = *b.timeout
	}
	if b.logLevel != nil {
		opts.LogLevel = *b.logLevel
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid options: %w", err)
	}
	for _, validator := range b.validators {
		if err := validator(opts); err != nil {
			return opts, fmt.Errorf("options validation failed: %w", err)
		}
	}

	return opts, loadErr
}

// Build creates the Client with all specified options.
// ErrOptionsNotFound is returned together with a usable client.
func (b *Builder) Build() (*Client, error) {
	opts, err := b.Options()
	if err != nil && !errors.Is(err, ErrOptionsNotFound) {
		return nil, err
	}

	c := NewWithOptions(opts)
	if b.logger != nil {
		c.logger = *b.logger
	}
	if b.runner != nil {
		c.runner = b.runner
	} else {
		c.runner = NewExecRunner(c.logger)
	}
	if b.registerer != nil {
		c.metrics = NewMetrics(b.registerer)
	}

	// ErrOptionsNotFound or nil
	return c, err
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Client {
	c, err := b.Build()
	if err != nil {
		// A missing options file is not fatal, defaults apply
		if !errors.Is(err, ErrOptionsNotFound) {
			panic(fmt.Sprintf("dconf client build failed: %v", err))
		}
	}
	return c
}
