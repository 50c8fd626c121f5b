// FILE: lixenwraith/dconf/helper.go
package dconf

import (
	"sort"
	"strings"
)

// isDirKey reports whether key names a directory
func isDirKey(key string) bool {
	return strings.HasSuffix(key, KeySeparator)
}

// DirKey returns key with exactly one trailing separator
func DirKey(key string) string {
	return strings.TrimRight(key, KeySeparator) + KeySeparator
}

// joinKey appends a listing entry to its directory key
func joinKey(dir, entry string) string {
	return DirKey(dir) + strings.TrimLeft(entry, KeySeparator)
}

// flattenMap converts a nested map[string]any to a flat map keyed by full dconf paths.
// Nested maps become subdirectories of dir.
func flattenMap(nested map[string]any, dir string) map[string]any {
	flat := make(map[string]any)

	for name, value := range nested {
		if nestedMap, isMap := value.(map[string]any); isMap {
			for subKey, subValue := range flattenMap(nestedMap, joinKey(dir, name)) {
				flat[subKey] = subValue
			}
		} else {
			flat[joinKey(dir, name)] = value
		}
	}

	return flat
}

// sortedKeys returns the keys of m in lexical order
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
