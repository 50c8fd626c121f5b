// FILE: lixenwraith/dconf/register.go
package dconf

import (
	"context"
	"encoding"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	durationType      = reflect.TypeOf(time.Duration(0))
	urlType           = reflect.TypeOf(url.URL{})
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// arraySignatures holds the element type codes used to annotate empty arrays
var arraySignatures = map[reflect.Kind]string{
	reflect.Bool:    "b",
	reflect.String:  "s",
	reflect.Int:     "i",
	reflect.Int8:    "i",
	reflect.Int16:   "i",
	reflect.Int32:   "i",
	reflect.Int64:   "i",
	reflect.Uint:    "u",
	reflect.Uint8:   "u",
	reflect.Uint16:  "u",
	reflect.Uint32:  "u",
	reflect.Uint64:  "u",
	reflect.Float32: "d",
	reflect.Float64: "d",
}

// Store writes the exported fields of a struct below dir using `dconf` struct tags.
// Nested structs become subdirectories. Writes are sequential and not transactional:
// the first failing write stops the walk, leaving earlier writes in place.
func (c *Client) Store(ctx context.Context, dir string, src any) error {
	v := reflect.ValueOf(src)

	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("Store requires a non-nil struct pointer or value")
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return fmt.Errorf("Store requires a struct or struct pointer, got %T", src)
	}

	var errors []string
	if err := c.storeFields(ctx, v, DirKey(dir), "", &errors); err != nil {
		return err
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to store %d field(s): %s", len(errors), strings.Join(errors, "; "))
	}

	return nil
}

// storeFields walks struct fields recursively. Type errors are collected in errors;
// a failed write aborts and is returned.
func (c *Client) storeFields(ctx context.Context, v reflect.Value, dir, fieldPath string, errors *[]string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get(TagName)
		if tag == "-" {
			continue
		}

		name := field.Name
		if tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				name = parts[0]
			}
		}

		key := joinKey(dir, name)

		// Handle nested structs and struct pointers as subdirectories
		if fieldValue.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct {
			if fieldValue.IsNil() {
				continue
			}
			fieldValue = fieldValue.Elem()
		}
		if fieldValue.Kind() == reflect.Struct && !isTextValue(fieldValue) {
			if err := c.storeFields(ctx, fieldValue, DirKey(key), fieldPath+field.Name+".", errors); err != nil {
				return err
			}
			continue
		}

		err := c.storeValue(ctx, key, fieldValue)
		if err == nil {
			continue
		}
		if KindOf(err) == KindLaunch {
			return err
		}
		*errors = append(*errors, fmt.Sprintf("field %s%s (key %s): %v", fieldPath, field.Name, key, err))
	}

	return nil
}

// isTextValue reports whether v is stored as a single string rather than a subdirectory
func isTextValue(v reflect.Value) bool {
	_, ok := textMarshaler(v)
	return ok || v.Type() == urlType
}

// textMarshaler returns v, or its address, as an encoding.TextMarshaler
func textMarshaler(v reflect.Value) (encoding.TextMarshaler, bool) {
	if v.Type().Implements(textMarshalerType) {
		return v.Interface().(encoding.TextMarshaler), true
	}
	if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(textMarshalerType) {
		return v.Addr().Interface().(encoding.TextMarshaler), true
	}
	return nil, false
}

// storeValue writes a single reflected value with the setter matching its kind.
// Slices and arrays are written in array syntax, which Scan splits on ", ".
func (c *Client) storeValue(ctx context.Context, key string, v reflect.Value) error {
	switch {
	case v.Type() == durationType:
		return c.SetString(ctx, key, time.Duration(v.Int()).String())
	case v.Type() == urlType:
		u := v.Interface().(url.URL)
		return c.SetString(ctx, key, u.String())
	}

	if m, ok := textMarshaler(v); ok {
		text, err := m.MarshalText()
		if err != nil {
			return fmt.Errorf("marshal %s: %w", v.Type(), err)
		}
		return c.SetString(ctx, key, string(text))
	}

	switch v.Kind() {
	case reflect.Bool:
		return c.SetBool(ctx, key, v.Bool())
	case reflect.String:
		return c.SetString(ctx, key, v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := int32Of(v)
		if err != nil {
			return err
		}
		return c.SetInt(ctx, key, i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := uint32Of(v)
		if err != nil {
			return err
		}
		return c.SetUint(ctx, key, u)
	case reflect.Float32, reflect.Float64:
		return c.SetDouble(ctx, key, v.Float())
	case reflect.Slice, reflect.Array:
		text, err := formatArray(v)
		if err != nil {
			return err
		}
		return c.write(ctx, key, text)
	default:
		return fmt.Errorf("unsupported type %s", v.Type())
	}
}

// formatArray renders v as "[e1, e2]" with elements formatted as the setters write them.
// Empty arrays carry a type annotation, e.g. "@as []".
func formatArray(v reflect.Value) (string, error) {
	sig, ok := arraySignatures[v.Type().Elem().Kind()]
	if !ok {
		return "", fmt.Errorf("unsupported type %s", v.Type())
	}
	if v.Len() == 0 {
		return "@a" + sig + " []", nil
	}

	items := make([]string, v.Len())
	for i := range items {
		text, err := formatScalar(v.Index(i))
		if err != nil {
			return "", fmt.Errorf("element %d: %w", i, err)
		}
		items[i] = text
	}
	return "[" + strings.Join(items, ", ") + "]", nil
}

// formatScalar renders one array element in the tool's value syntax
func formatScalar(v reflect.Value) (string, error) {
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.String:
		return "'" + v.String() + "'", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := int32Of(v)
		return strconv.FormatInt(int64(i), 10), err
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := uint32Of(v)
		return strconv.FormatUint(uint64(u), 10), err
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported type %s", v.Type())
	}
}

func int32Of(v reflect.Value) (int32, error) {
	i := v.Int()
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, fmt.Errorf("value %d overflows int32", i)
	}
	return int32(i), nil
}

func uint32Of(v reflect.Value) (uint32, error) {
	u := v.Uint()
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("value %d overflows uint32", u)
	}
	return uint32(u), nil
}
