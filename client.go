// FILE: lixenwraith/dconf/client.go
package dconf

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"
)

const (
	// DefaultTool is the configuration tool invoked when none is configured
	DefaultTool = "dconf"

	// KeySeparator delimits key path segments
	KeySeparator = "/"

	// listSentinel is a spurious trailing entry some tool versions emit
	listSentinel = "list"
)

// Client translates typed requests into invocations of the configuration tool.
// A Client holds no mutable state and is safe for concurrent use.
type Client struct {
	tool    string
	timeout time.Duration
	runner  Runner
	logger  zerolog.Logger
	metrics *Metrics
}

// New creates a Client with default options
func New() *Client {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a Client that runs opts.Tool through an ExecRunner
func NewWithOptions(opts Options) *Client {
	tool := opts.Tool
	if tool == "" {
		tool = DefaultTool
	}
	logger := zerolog.Nop()
	return &Client{
		tool:    tool,
		timeout: opts.Timeout,
		runner:  NewExecRunner(logger),
		logger:  logger,
	}
}

// Tool returns the name of the configuration tool this client invokes
func (c *Client) Tool() string {
	return c.tool
}

// invoke runs "<tool> <action> <key> [args...]" and records the attempt
func (c *Client) invoke(ctx context.Context, action, key string, args ...string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	fullArgs := append([]string{action, key}, args...)
	start := time.Now()
	out, err := c.runner.Run(ctx, c.tool, fullArgs...)
	elapsed := time.Since(start)

	c.metrics.observeInvocation(action, elapsed, err)
	if err != nil {
		c.logger.Error().Err(err).
			Str("action", action).
			Str("key", key).
			Msg("configuration tool invocation failed")
		return nil, err
	}

	c.logger.Debug().
		Str("action", action).
		Str("key", key).
		Dur("duration", elapsed).
		Int("bytes", len(out)).
		Msg("configuration tool invoked")
	return out, nil
}

// read returns the raw value of key with quotes and newlines removed
func (c *Client) read(ctx context.Context, key string) (string, error) {
	raw, err := c.readQuoted(ctx, key)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(raw, "'", ""), nil
}

// readQuoted returns the raw value of key with newlines removed and quotes kept
func (c *Client) readQuoted(ctx context.Context, key string) (string, error) {
	out, err := c.invoke(ctx, "read", key)
	if err != nil {
		return "", launchError("get", key, err)
	}
	return strings.ReplaceAll(string(out), "\n", ""), nil
}

// write stores a preformatted value under key
func (c *Client) write(ctx context.Context, key, value string) error {
	if _, err := c.invoke(ctx, "write", key, value); err != nil {
		return launchError("set", key, err)
	}
	return nil
}

// list returns the raw child entries of a directory key
func (c *Client) list(ctx context.Context, key string) ([]string, error) {
	if !isDirKey(key) {
		return nil, &Error{Kind: KindPrecondition, Op: "list", Key: key, Err: ErrTrailingSeparator}
	}

	out, err := c.invoke(ctx, "list", key)
	if err != nil {
		return nil, launchError("list", key, err)
	}

	text := strings.TrimRightFunc(stripQuotes(out), unicode.IsSpace)
	if text == "" {
		return []string{}, nil
	}
	return strings.Split(text, "\n"), nil
}

// stripQuotes decodes tool output and drops every single quote
func stripQuotes(out []byte) string {
	return strings.ReplaceAll(string(out), "'", "")
}
