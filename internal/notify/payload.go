package notify

import (
	"fmt"

	"github.com/ariel-frischer/hooknotify/internal/hooks"
)

// Payload values come from an external coordinator and are read defensively:
// a missing or nil key yields the default, anything that is not a string is
// formatted with fmt.

func stringField(payload hooks.Payload, key, def string) string {
	v, ok := payload[key]
	if !ok || v == nil {
		return def
	}
	return toString(v)
}

func firstNonEmpty(payload hooks.Payload, keys ...string) string {
	for _, key := range keys {
		if s := stringField(payload, key, ""); s != "" {
			return s
		}
	}
	return ""
}

// errorMessage reads the "error" field, which is either an object carrying a
// "message" or a plain value.
func errorMessage(payload hooks.Payload) string {
	const unknown = "Unknown error"

	switch e := payload["error"].(type) {
	case nil:
		return unknown
	case map[string]any:
		return stringField(e, "message", unknown)
	case hooks.Payload:
		return stringField(e, "message", unknown)
	case map[string]string:
		if msg, ok := e["message"]; ok {
			return msg
		}
		return unknown
	default:
		return toString(e)
	}
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case error:
		return s.Error()
	default:
		return fmt.Sprint(v)
	}
}

// preview returns s unchanged when it has at most n characters, otherwise
// its first n characters followed by "...".
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// head returns the first n characters of s.
func head(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
