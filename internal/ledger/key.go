package ledger

import (
	"fmt"
	"strings"
)

// separator delimits the entity kind and each attribute inside a composite
// key. U+0000 cannot appear in attribute values, so two keys are equal only
// when their kind and attribute lists are equal element for element.
const separator = "\x00"

// Key is a composite ledger key. Build keys with NewKey; the raw string
// form is an implementation detail of the ledger encoding.
type Key string

// NewKey derives a deterministic composite key from an entity kind and an
// ordered list of attribute values. Identical inputs always produce the
// same key, and no two distinct inputs collide.
func NewKey(kind string, attrs ...string) (Key, error) {
	if kind == "" {
		return "", fmt.Errorf("entity kind is required")
	}
	if strings.Contains(kind, separator) {
		return "", fmt.Errorf("entity kind contains a reserved separator")
	}

	var b strings.Builder
	b.WriteString(separator)
	b.WriteString(kind)
	b.WriteString(separator)
	for _, attr := range attrs {
		if strings.Contains(attr, separator) {
			return "", fmt.Errorf("key attribute contains a reserved separator")
		}
		b.WriteString(attr)
		b.WriteString(separator)
	}
	return Key(b.String()), nil
}
