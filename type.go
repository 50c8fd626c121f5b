// FILE: lixenwraith/dconf/type.go
package dconf

import (
	"context"
	"strconv"
	"strings"
)

// SetBool writes a boolean value as bare "true" or "false"
func (c *Client) SetBool(ctx context.Context, key string, value bool) error {
	return c.write(ctx, key, strconv.FormatBool(value))
}

// Bool reads a boolean value.
// Anything other than exactly "true" is false, including malformed input.
func (c *Client) Bool(ctx context.Context, key string) (bool, error) {
	raw, err := c.read(ctx, key)
	if err != nil {
		return false, err
	}
	return raw == "true", nil
}

// SetString writes a string value wrapped in single quotes.
// The value is not escaped; embedded quotes are passed through as-is.
func (c *Client) SetString(ctx context.Context, key, value string) error {
	return c.write(ctx, key, "'"+value+"'")
}

// String reads a string value with all single quotes removed
func (c *Client) String(ctx context.Context, key string) (string, error) {
	return c.read(ctx, key)
}

// SetInt writes a signed 32-bit integer
func (c *Client) SetInt(ctx context.Context, key string, value int32) error {
	return c.write(ctx, key, strconv.FormatInt(int64(value), 10))
}

// Int reads a signed 32-bit integer
func (c *Client) Int(ctx context.Context, key string) (int32, error) {
	raw, err := c.read(ctx, key)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		c.metrics.observeParseFailure("integer")
		return 0, parseError(key, raw, ErrNotInteger, err)
	}
	return int32(i), nil
}

// SetUint writes an unsigned 32-bit integer
func (c *Client) SetUint(ctx context.Context, key string, value uint32) error {
	return c.write(ctx, key, strconv.FormatUint(uint64(value), 10))
}

// Uint reads an unsigned 32-bit integer. One leading '+' is accepted, as Int does.
func (c *Client) Uint(ctx context.Context, key string) (uint32, error) {
	raw, err := c.read(ctx, key)
	if err != nil {
		return 0, err
	}
	u, err := strconv.ParseUint(strings.TrimPrefix(raw, "+"), 10, 32)
	if err != nil {
		c.metrics.observeParseFailure("integer")
		return 0, parseError(key, raw, ErrNotInteger, err)
	}
	return uint32(u), nil
}

// SetDouble writes a double in its shortest round-trip representation
func (c *Client) SetDouble(ctx context.Context, key string, value float64) error {
	return c.write(ctx, key, strconv.FormatFloat(value, 'g', -1, 64))
}

// Double reads a double-precision float
func (c *Client) Double(ctx context.Context, key string) (float64, error) {
	raw, err := c.read(ctx, key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.metrics.observeParseFailure("double")
		return 0, parseError(key, raw, ErrNotDouble, err)
	}
	return f, nil
}

// ListDir returns the child entries of a directory key, which must end in '/'.
// Subdirectory entries keep their trailing '/'.
func (c *Client) ListDir(ctx context.Context, key string) ([]string, error) {
	entries, err := c.list(ctx, key)
	if err != nil {
		return nil, err
	}
	if n := len(entries); n > 0 && entries[n-1] == listSentinel {
		entries = entries[:n-1]
	}
	return entries, nil
}
