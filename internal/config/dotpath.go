package config

import (
	"fmt"
	"strings"
)

// lookup resolves a dot-path key against a nested document. Only scalar
// leaves are returned as values; an intermediate map is not a value.
func lookup(doc map[string]any, key string) (string, bool) {
	parts := strings.Split(key, ".")
	var current any = doc

	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = m[part]
		if !ok {
			return "", false
		}
	}

	switch current.(type) {
	case map[string]any, []any, nil:
		return "", false
	}
	return scalarString(current), true
}

// put writes a scalar value at a dot-path key, creating intermediate
// maps as needed. A scalar in the middle of the path is replaced.
func put(doc map[string]any, key, value string) {
	parts := strings.Split(key, ".")
	current := doc

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}

// remove deletes the leaf at a dot-path key, pruning intermediate maps
// that become empty.
func remove(doc map[string]any, key string) bool {
	parts := strings.Split(key, ".")

	maps := make([]map[string]any, 0, len(parts))
	current := doc
	for _, part := range parts[:len(parts)-1] {
		maps = append(maps, current)
		next, ok := current[part].(map[string]any)
		if !ok {
			return false
		}
		current = next
	}

	leaf := parts[len(parts)-1]
	if _, ok := current[leaf]; !ok {
		return false
	}
	delete(current, leaf)

	for i := len(maps) - 1; i >= 0; i-- {
		child, _ := maps[i][parts[i]].(map[string]any)
		if len(child) == 0 {
			delete(maps[i], parts[i])
		}
	}
	return true
}

// flatten writes every scalar leaf of doc into out under its dot-path.
func flatten(doc map[string]any, prefix string, out map[string]string) {
	for k, v := range doc {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch typed := v.(type) {
		case map[string]any:
			flatten(typed, key, out)
		case []any, nil:
			// lists and nulls are not addressable config values
		default:
			out[key] = scalarString(v)
		}
	}
}

func scalarString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(v)
}
