// FILE: lixenwraith/dconf/convenience.go
package dconf

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

var defaultClient atomic.Pointer[Client]

// Default returns the client used by the package-level functions,
// creating one with default options on first use
func Default() *Client {
	if c := defaultClient.Load(); c != nil {
		return c
	}
	defaultClient.CompareAndSwap(nil, New())
	return defaultClient.Load()
}

// SetDefault replaces the client used by the package-level functions
func SetDefault(c *Client) {
	defaultClient.Store(c)
}

// Quick builds a client from a discovered options file and DCONF_* environment overrides
func Quick(appName string) (*Client, error) {
	return NewBuilder().
		WithFileDiscovery(DefaultDiscoveryOptions(appName)).
		WithEnvPrefix(DefaultEnvPrefix).
		Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(appName string) *Client {
	c, err := Quick(appName)
	if err != nil && !errors.Is(err, ErrOptionsNotFound) {
		panic(fmt.Sprintf("dconf client initialization failed: %v", err))
	}
	return c
}

// SetBoolean sets a boolean value through the default client
func SetBoolean(key string, value bool) error {
	return Default().SetBool(context.Background(), key, value)
}

// GetBoolean gets a boolean value through the default client
func GetBoolean(key string) (bool, error) {
	return Default().Bool(context.Background(), key)
}

// SetString sets a string value through the default client
func SetString(key, value string) error {
	return Default().SetString(context.Background(), key, value)
}

// GetString gets a string value through the default client
func GetString(key string) (string, error) {
	return Default().String(context.Background(), key)
}

// SetInt sets an int32 value through the default client
func SetInt(key string, value int32) error {
	return Default().SetInt(context.Background(), key, value)
}

// GetInt gets an int32 value through the default client
func GetInt(key string) (int32, error) {
	return Default().Int(context.Background(), key)
}

// SetUint sets a uint32 value through the default client
func SetUint(key string, value uint32) error {
	return Default().SetUint(context.Background(), key, value)
}

// GetUint gets a uint32 value through the default client
func GetUint(key string) (uint32, error) {
	return Default().Uint(context.Background(), key)
}

// SetDouble sets a double value through the default client
func SetDouble(key string, value float64) error {
	return Default().SetDouble(context.Background(), key, value)
}

// GetDouble gets a double value through the default client
func GetDouble(key string) (float64, error) {
	return Default().Double(context.Background(), key)
}

// ListDir lists the contents of a directory through the default client
func ListDir(key string) ([]string, error) {
	return Default().ListDir(context.Background(), key)
}
