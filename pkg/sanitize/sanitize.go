// Package sanitize scrubs inbound request data for XSS before any other
// pipeline stage sees it. Every string leaf is HTML-escaped and trimmed;
// the shape of the value (object keys, array length, non-string leaves)
// is preserved exactly.
package sanitize

import (
	"encoding/json"
	"html"
	"net/url"
	"strings"
)

// String escapes HTML metacharacters and trims surrounding whitespace.
func String(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// Clean walks a JSON-shaped value and sanitizes every string leaf.
// It never fails: values it cannot interpret pass through untouched.
func Clean(v any) any {
	switch t := v.(type) {
	case string:
		return String(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Clean(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Clean(val)
		}
		return out
	default:
		return v
	}
}

// JSON sanitizes a raw JSON document. A document that does not parse is
// returned unchanged so the validation stage can reject it with a proper
// error; this stage must never be the one that fails a request.
func JSON(raw []byte) []byte {
	if len(raw) == 0 {
		return raw
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return raw
	}
	cleaned, err := json.Marshal(Clean(v))
	if err != nil {
		// Unreachable for values produced by Unmarshal; fall back to a
		// safe empty document rather than propagating anything tainted.
		return []byte("{}")
	}
	return cleaned
}

// Query sanitizes every value of a parsed query string.
func Query(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for k, vs := range values {
		cleaned := make([]string, len(vs))
		for i, v := range vs {
			cleaned[i] = String(v)
		}
		out[k] = cleaned
	}
	return out
}
