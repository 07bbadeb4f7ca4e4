// Package normalize turns loosely shaped feed documents into the canonical
// relational tables the rest of the service works with. It owns path-safe
// field access, identity resolution and the per-entity normalizers; fetching
// and persistence stay outside.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Document is a decoded JSON object from the feed. Shapes vary per endpoint
// and per call, so all access goes through Get and the coercion helpers.
type Document = map[string]any

// Get walks a key path through nested mappings and returns the value at the
// end of it, or nil when any segment is absent or not a mapping. It never
// panics on malformed documents.
func Get(doc any, keys ...string) any {
	current := doc
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[key]
		if !ok {
			return nil
		}
	}
	return current
}

// GetOr is Get with a caller-supplied fallback for absent or nil values.
func GetOr(doc any, fallback any, keys ...string) any {
	if v := Get(doc, keys...); v != nil {
		return v
	}
	return fallback
}

// Items returns the value at the path as a document list, or nil. Entries
// that are not mappings are skipped.
func Items(doc any, keys ...string) []Document {
	raw, ok := Get(doc, keys...).([]any)
	if !ok {
		return nil
	}
	out := make([]Document, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// String trims and returns the value as a string pointer. Non-string scalars
// are formatted; empty-after-trim and nil become nil.
func String(v any) *string {
	if v == nil {
		return nil
	}
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case map[string]any, []any:
		return nil
	default:
		s = fmt.Sprint(val)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Int returns the value as a whole number, or nil when it is not one.
// JSON numbers arrive as float64; fractional parts are truncated the way the
// feed's own tooling does.
func Int(v any) *int {
	switch val := v.(type) {
	case int:
		return &val
	case int64:
		n := int(val)
		return &n
	case float64:
		n := int(val)
		return &n
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

// Float returns the value as a float pointer, or nil.
func Float(v any) *float64 {
	switch val := v.(type) {
	case float64:
		return &val
	case int:
		f := float64(val)
		return &f
	case int64:
		f := float64(val)
		return &f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// Date canonicalizes timestamp-like values to ISO text. Strings pass through
// trimmed; the feed already sends ISO forms and no further validation is
// worth the false rejections.
func Date(v any) *string {
	switch val := v.(type) {
	case time.Time:
		s := val.Format(time.RFC3339)
		return &s
	case string:
		return String(val)
	default:
		return nil
	}
}

// Token validates the value as a UUID-shaped external identifier and returns
// it untouched, or nil. External ids are either fully trusted or fully
// rejected; there is no partial acceptance.
func Token(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return nil
	}
	return &s
}

// HeightInches converts the feed's three observed height encodings to total
// inches: a bare number (already inches), "6-3", and `6'3"`. Anything else
// is nil.
func HeightInches(v any) *int {
	switch val := v.(type) {
	case int:
		return &val
	case float64:
		n := int(val)
		return &n
	case string:
		return parseHeightString(strings.TrimSpace(val))
	default:
		return nil
	}
}

func parseHeightString(s string) *int {
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}

	var feet, inches int
	switch {
	case strings.Contains(s, "-"):
		parts := strings.SplitN(s, "-", 2)
		f, errF := strconv.Atoi(strings.TrimSpace(parts[0]))
		i, errI := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errF != nil || errI != nil {
			return nil
		}
		feet, inches = f, i
	case strings.ContainsAny(s, `'"`):
		if _, err := fmt.Sscanf(s, `%d'%d`, &feet, &inches); err != nil {
			return nil
		}
	default:
		return nil
	}

	total := feet*12 + inches
	return &total
}

// PersonName reconciles the feed's name variants into discrete first/last
// parts. The value may be a plain string ("Bo Jackson") or a structured
// {first,last} object; for a plain string the last whitespace token becomes
// the last name.
func PersonName(v any) (first, last *string) {
	switch val := v.(type) {
	case string:
		parts := strings.Fields(val)
		if len(parts) == 0 {
			return nil, nil
		}
		last = &parts[len(parts)-1]
		if len(parts) > 1 {
			rest := strings.Join(parts[:len(parts)-1], " ")
			first = &rest
		}
		return first, last
	case map[string]any:
		return String(val["first"]), String(val["last"])
	default:
		return nil, nil
	}
}

// PositionName accepts a position as a bare code or a structured object and
// returns the descriptive name, falling back to the abbreviation.
func PositionName(v any) *string {
	switch val := v.(type) {
	case map[string]any:
		if name := String(val["name"]); name != nil {
			return name
		}
		return String(val["abbr"])
	default:
		return String(v)
	}
}
