// Package redact masks values stored under credential-looking keys in nested
// response structures before they are echoed to the user. This is best-effort
// output hygiene, not a security boundary.
package redact

import "strings"

// Marker replaces every value found under a sensitive key.
const Marker = "***REDACTED***"

// sensitiveKeys holds the normalized (lowercased, separator-stripped) set of
// key names whose values are masked.
var sensitiveKeys = map[string]bool{
	"apikey":        true,
	"apikeys":       true,
	"password":      true,
	"secret":        true,
	"token":         true,
	"accesstoken":   true,
	"authorization": true,
	"bearer":        true,
	"clientsecret":  true,
	"privatekey":    true,
	"refreshtoken":  true,
}

// Redact returns a copy of value with every entry under a sensitive key
// replaced by Marker, recursing into nested maps and slices. Scalars pass
// through unchanged. Redact is idempotent.
func Redact(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			if sensitiveKeys[normalizeKey(key)] {
				out[key] = Marker
				continue
			}
			out[key] = Redact(val)
		}
		return out

	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Redact(item)
		}
		return out

	default:
		return value
	}
}

// normalizeKey lowercases a key and strips hyphens and underscores so that
// "API-Key", "api_key", and "ApiKey" all match the same sensitive name.
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "-", "")
	return strings.ReplaceAll(key, "_", "")
}
