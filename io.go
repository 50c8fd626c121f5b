// FILE: lixenwraith/dconf/io.go
package dconf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Dump reads every key below dir and returns a flat map of full key to inferred value.
// Quoted values stay strings; bare values become bool, int64 or float64 when they parse.
func (c *Client) Dump(ctx context.Context, dir string) (map[string]any, error) {
	tree, err := c.tree(ctx, dir, c.readQuoted)
	if err != nil {
		return nil, err
	}
	return flattenMap(inferTree(tree), dir), nil
}

// Export writes the tree below dir to w as "toml", "yaml" or "json".
// Subdirectories become nested tables.
func (c *Client) Export(ctx context.Context, dir string, w io.Writer, format string) error {
	tree, err := c.tree(ctx, dir, c.readQuoted)
	if err != nil {
		return err
	}
	return encodeDocument(w, inferTree(tree), format)
}

// Save exports the tree below dir to a file atomically; the format follows the file extension
func (c *Client) Save(ctx context.Context, dir, path string) error {
	format := detectFileFormat(path)
	if format == "" {
		return fmt.Errorf("unable to determine format for file '%s'", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", filepath.Dir(path), err)
	}

	return c.writeSnapshot(path, func(w io.Writer) error {
		return c.Export(ctx, dir, w, format)
	})
}

// Restore writes every value in a TOML, YAML or JSON file below dir, in key order.
// Writes are not transactional: on error, keys written before it keep their new values.
func (c *Client) Restore(ctx context.Context, dir, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	doc, err := parseDocument(data, format)
	if err != nil {
		return fmt.Errorf("failed to parse snapshot file '%s': %w", path, err)
	}

	flat := flattenMap(doc, dir)
	for _, key := range sortedKeys(flat) {
		if err := c.restoreValue(ctx, key, flat[key]); err != nil {
			return fmt.Errorf("failed to restore key %s: %w", key, err)
		}
	}

	return nil
}

// restoreValue writes a decoded document value with the matching typed setter
func (c *Client) restoreValue(ctx context.Context, key string, value any) error {
	switch v := value.(type) {
	case bool:
		return c.SetBool(ctx, key, v)
	case string:
		return c.SetString(ctx, key, v)
	case int:
		return c.restoreInt(ctx, key, int64(v))
	case int64:
		return c.restoreInt(ctx, key, v)
	case float64:
		return c.SetDouble(ctx, key, v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return c.restoreInt(ctx, key, i)
		}
		f, err := v.Float64()
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", v, err)
		}
		return c.SetDouble(ctx, key, f)
	default:
		return fmt.Errorf("unsupported value type %T", value)
	}
}

func (c *Client) restoreInt(ctx context.Context, key string, i int64) error {
	if i < math.MinInt32 || i > math.MaxInt32 {
		return fmt.Errorf("value %d overflows int32", i)
	}
	return c.SetInt(ctx, key, int32(i))
}

// encodeDocument serializes a nested map in the given format
func encodeDocument(w io.Writer, doc map[string]any, format string) error {
	switch format {
	case "toml":
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal data to TOML: %w", err)
		}
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal data to YAML: %w", err)
		}
		return encoder.Close()
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal data to JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}

// inferTree replaces quoted raw leaves with their unquoted text and types bare leaves
func inferTree(node map[string]any) map[string]any {
	out := make(map[string]any, len(node))
	for name, value := range node {
		switch v := value.(type) {
		case map[string]any:
			out[name] = inferTree(v)
		case string:
			out[name] = inferValue(v)
		default:
			out[name] = v
		}
	}
	return out
}

// inferValue maps raw tool output to a document value. Text wrapped in single quotes
// is a string; bare text becomes bool, int64 or finite float64, else stays as is.
func inferValue(raw string) any {
	if len(raw) >= 2 && strings.HasPrefix(raw, "'") && strings.HasSuffix(raw, "'") {
		return raw[1 : len(raw)-1]
	}

	switch raw {
	case "true":
		return true
	case "false":
		return false
	}

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v
	}

	if v, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return v
	}

	return raw
}
