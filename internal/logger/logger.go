package logger

import (
	"encoding/json"
	"log"
	"maps"
	"strings"
)

// Fields are the structured attributes of one log line, written as a JSON object.
type Fields map[string]any

const masked = "******"

// Keys are compared after lowercasing and dropping '-' and '_', so
// "credential_hash", "Credential-Hash" and "credentialHash" all match.
var sensitiveKeys = map[string]struct{}{
	"pin":            {},
	"credential":     {},
	"credentialhash": {},
	"password":       {},
	"authorization":  {},
}

// Info logs a ledger event, e.g. `INFO deposit committed {"accountId":"alice"}`.
func Info(message string, fields Fields) {
	log.Printf("INFO %s %s", message, fieldsJSON(fields))
}

// Error logs message with err's text under the "error" key. fields is not modified.
func Error(message string, err error, fields Fields) {
	withCause := make(Fields, len(fields)+1)
	maps.Copy(withCause, fields)
	if err != nil {
		withCause["error"] = err.Error()
	}
	log.Printf("ERROR %s %s", message, fieldsJSON(withCause))
}

// SanitizePayload round-trips payload through JSON and masks every secret key.
func SanitizePayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}
	return mask(data)
}

func fieldsJSON(fields Fields) string {
	if len(fields) == 0 {
		return `{}`
	}
	b, err := json.Marshal(SanitizePayload(fields))
	if err != nil {
		return `{}`
	}
	return string(b)
}

func mask(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, inner := range typed {
			if isSensitiveKey(key) {
				typed[key] = masked
			} else {
				typed[key] = mask(inner)
			}
		}
		return typed
	case []any:
		for i, item := range typed {
			typed[i] = mask(item)
		}
		return typed
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(key)))
	_, ok := sensitiveKeys[normalized]
	return ok
}
