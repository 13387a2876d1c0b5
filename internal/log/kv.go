package log

import "sort"

// KV represents structured key-value pairs to attach to a log entry.
type KV map[string]any

// kvToArgs flattens the given KV maps into the alternating key/value slice
// that slog expects. Keys inside each KV are emitted in sorted order so log
// lines stay stable; on duplicate keys across maps the first occurrence wins.
func kvToArgs(keyVals ...KV) []any {
	args := []any{}
	seen := map[string]bool{}

	for _, kv := range keyVals {
		keys := make([]string, 0, len(kv))
		for key := range kv {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if seen[key] {
				continue
			}
			seen[key] = true
			args = append(args, key, kv[key])
		}
	}

	return args
}

// kvToArgsNs is like kvToArgs but injects the namespace as the first
// key-value pair of the entry.
func kvToArgsNs(namespace string, keyVals ...KV) []any {
	return append([]any{"namespace", namespace}, kvToArgs(keyVals...)...)
}
