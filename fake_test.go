// FILE: lixenwraith/dconf/fake_test.go
package dconf

import (
	"context"
	"strings"
	"sync"
)

// fakeDconf emulates the dconf command over an in-memory key store.
// Values are kept exactly as written, so reads return the tool's value syntax.
type fakeDconf struct {
	mu       sync.Mutex
	values   map[string]string
	calls    [][]string
	sentinel bool  // append a trailing "list" line to listings
	fail     error // returned for every invocation when set
}

func newFakeDconf() *fakeDconf {
	return &fakeDconf{values: make(map[string]string)}
}

func (f *fakeDconf) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, append([]string{name}, args...))
	if f.fail != nil {
		return nil, f.fail
	}

	switch args[0] {
	case "read":
		value, ok := f.values[args[1]]
		if !ok {
			return nil, nil
		}
		return []byte(value + "\n"), nil
	case "write":
		f.values[args[1]] = args[2]
		return nil, nil
	case "list":
		return []byte(f.listing(args[1])), nil
	}
	return nil, nil
}

func (f *fakeDconf) listing(dir string) string {
	seen := make(map[string]bool)
	for key := range f.values {
		rest, ok := strings.CutPrefix(key, dir)
		if !ok || rest == "" {
			continue
		}
		if i := strings.Index(rest, "/"); i >= 0 {
			rest = rest[:i+1]
		}
		seen[rest] = true
	}

	entries := sortedKeys(seen)
	if f.sentinel {
		entries = append(entries, "list")
	}
	if len(entries) == 0 {
		return ""
	}
	return strings.Join(entries, "\n") + "\n"
}

// set stores a raw value as if written by another program
func (f *fakeDconf) set(key, raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = raw
}

func (f *fakeDconf) get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeDconf) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeDconf) lastCall() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}

// newTestClient returns a client backed by a fresh fake
func newTestClient() (*Client, *fakeDconf) {
	fake := newFakeDconf()
	c, _ := NewBuilder().WithArgs(nil).WithRunner(fake).Build()
	return c, fake
}

