// FILE: lixenwraith/dconf/error.go
package dconf

import (
	"errors"
	"fmt"
)

// Kind classifies accessor failures
type Kind int

const (
	// KindNone is returned by KindOf for nil or foreign errors
	KindNone Kind = iota
	// KindLaunch means the external tool could not be invoked
	KindLaunch
	// KindPrecondition means input was rejected before any invocation
	KindPrecondition
	// KindParse means the raw value did not parse as the requested type
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindLaunch:
		return "launch"
	case KindPrecondition:
		return "precondition"
	case KindParse:
		return "parse"
	default:
		return "none"
	}
}

var (
	// ErrLaunch is matched by every launch failure regardless of action
	ErrLaunch = errors.New("unable to invoke configuration tool")
	// ErrTrailingSeparator is returned by ListDir for keys not ending in '/'
	ErrTrailingSeparator = errors.New("key must end with a trailing '/'")
	// ErrNotInteger is returned when a raw value is not a 32-bit integer of the requested sign
	ErrNotInteger = errors.New("value is not an integer")
	// ErrNotDouble is returned when a raw value is not a double
	ErrNotDouble = errors.New("value is not a double")
	// ErrOptionsNotFound is returned when an options file does not exist
	ErrOptionsNotFound = errors.New("options file not found")
)

// Error is the concrete error type returned by accessor operations.
// Err is always one of the package sentinels; Cause carries the underlying
// OS or parser error and is kept out of the message.
type Error struct {
	Kind  Kind
	Op    string // "get", "set" or "list"
	Key   string
	Raw   string // raw value text for parse failures
	Err   error
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindLaunch:
		return fmt.Sprintf("unable to %s key %s", e.Op, e.Key)
	case KindParse:
		return fmt.Sprintf("%s: key %s, raw %q", e.Err, e.Key, e.Raw)
	default:
		return fmt.Sprintf("%s: %s", e.Err, e.Key)
	}
}

// Unwrap exposes both the sentinel and the cause to errors.Is and errors.As
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// KindOf returns the Kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

func launchError(op, key string, cause error) *Error {
	return &Error{Kind: KindLaunch, Op: op, Key: key, Err: ErrLaunch, Cause: cause}
}

func parseError(key, raw string, sentinel, cause error) *Error {
	return &Error{Kind: KindParse, Op: "get", Key: key, Raw: raw, Err: sentinel, Cause: cause}
}
