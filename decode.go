// FILE: lixenwraith/dconf/decode.go
package dconf

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// TagName is the struct tag read by Scan and Store
const TagName = "dconf"

// Scan reads every key below dir and decodes the tree into target.
// Subdirectories map to nested structs or maps; values are converted from their raw text.
// The target must be a non-nil pointer to a struct or map.
func (c *Client) Scan(ctx context.Context, dir string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	tree, err := c.tree(ctx, dir, c.read)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook:       getDecodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(tree); err != nil {
		return fmt.Errorf("decode failed for directory %q: %w", dir, err)
	}

	return nil
}

// readFunc reads one key as text
type readFunc func(ctx context.Context, key string) (string, error)

// tree reads dir recursively into a nested map of values returned by read
func (c *Client) tree(ctx context.Context, dir string, read readFunc) (map[string]any, error) {
	entries, err := c.ListDir(ctx, dir)
	if err != nil {
		return nil, err
	}

	node := make(map[string]any, len(entries))
	for _, entry := range entries {
		if entry == "" {
			continue
		}
		key := joinKey(dir, entry)

		if isDirKey(entry) {
			child, err := c.tree(ctx, key, read)
			if err != nil {
				return nil, err
			}
			node[strings.TrimSuffix(entry, KeySeparator)] = child
			continue
		}

		value, err := read(ctx, key)
		if err != nil {
			return nil, err
		}
		node[entry] = value
	}

	return node, nil
}

// getDecodeHook returns the composite decode hook for all type conversions
func getDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		// Tool value syntax
		arrayToSliceHookFunc(),

		// Network types
		stringToNetIPHookFunc(),
		stringToURLHookFunc(),

		mapstructure.StringToTimeDurationHookFunc(),
	)
}

// arrayToSliceHookFunc converts array text such as "[a, b]" or "@as []" into a string slice
func arrayToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice {
			return data, nil
		}

		str := strings.TrimSpace(data.(string))
		if strings.HasPrefix(str, "@") {
			// Type annotation on empty arrays, e.g. "@as []"
			if i := strings.IndexByte(str, ' '); i > 0 {
				str = strings.TrimSpace(str[i+1:])
			}
		}
		if !strings.HasPrefix(str, "[") || !strings.HasSuffix(str, "]") {
			return data, nil
		}

		inner := strings.TrimSpace(str[1 : len(str)-1])
		if inner == "" {
			return []string{}, nil
		}
		parts := strings.Split(inner, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
}

// stringToNetIPHookFunc handles net.IP conversion
func stringToNetIPHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}

		if t != reflect.TypeOf(net.IP{}) {
			return data, nil
		}

		str := data.(string)
		if len(str) > 45 { // Max IPv6 length
			return nil, fmt.Errorf("invalid IP length: %d", len(str))
		}

		ip := net.ParseIP(str)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address: %s", str)
		}

		return ip, nil
	}
}

// stringToURLHookFunc handles url.URL conversion
func stringToURLHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Ptr
		targetType := t
		if isPtr {
			targetType = t.Elem()
		}
		if targetType != reflect.TypeOf(url.URL{}) {
			return data, nil
		}

		str := data.(string)
		if len(str) > 2048 {
			return nil, fmt.Errorf("URL too long: %d bytes", len(str))
		}
		u, err := url.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("invalid URL: %w", err)
		}
		if isPtr {
			return u, nil
		}
		return *u, nil
	}
}
