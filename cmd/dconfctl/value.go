// FILE: lixenwraith/dconf/cmd/dconfctl/value.go
package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/dconf"
)

// Value types accepted by --type
const (
	typeBool   = "bool"
	typeString = "string"
	typeInt    = "int"
	typeUint   = "uint"
	typeDouble = "double"
)

var valueTypes = []string{typeBool, typeString, typeInt, typeUint, typeDouble}

// readTyped reads key with the getter for valueType and formats the result
func readTyped(ctx context.Context, c *dconf.Client, key, valueType string) (string, error) {
	switch valueType {
	case typeBool:
		v, err := c.Bool(ctx, key)
		return strconv.FormatBool(v), err
	case typeString:
		return c.String(ctx, key)
	case typeInt:
		v, err := c.Int(ctx, key)
		return strconv.FormatInt(int64(v), 10), err
	case typeUint:
		v, err := c.Uint(ctx, key)
		return strconv.FormatUint(uint64(v), 10), err
	case typeDouble:
		v, err := c.Double(ctx, key)
		return strconv.FormatFloat(v, 'g', -1, 64), err
	default:
		return "", unknownType(valueType)
	}
}

// writeTyped parses text as valueType and writes it with the matching setter
func writeTyped(ctx context.Context, c *dconf.Client, key, text, valueType string) error {
	switch valueType {
	case typeBool:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("invalid bool %q: %w", text, err)
		}
		return c.SetBool(ctx, key, v)
	case typeString:
		return c.SetString(ctx, key, text)
	case typeInt:
		v, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid int32 %q: %w", text, err)
		}
		return c.SetInt(ctx, key, int32(v))
	case typeUint:
		v, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid uint32 %q: %w", text, err)
		}
		return c.SetUint(ctx, key, uint32(v))
	case typeDouble:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("invalid double %q: %w", text, err)
		}
		return c.SetDouble(ctx, key, v)
	default:
		return unknownType(valueType)
	}
}

func unknownType(valueType string) error {
	return fmt.Errorf("unknown type %q (want one of: %s)", valueType, strings.Join(valueTypes, ", "))
}
