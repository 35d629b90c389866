package format

import (
	"fmt"
	"strconv"
	"time"

	"github.com/iancoleman/orderedmap"

	"github.com/thirteen37/dfconfig"
)

// ToOrderedMapPtr converts both value and pointer types of OrderedMap to a pointer.
// Returns nil if the value is not an OrderedMap.
func ToOrderedMapPtr(v any) *orderedmap.OrderedMap {
	switch val := v.(type) {
	case *orderedmap.OrderedMap:
		return val
	case orderedmap.OrderedMap:
		return &val
	default:
		return nil
	}
}

// Values returns the effective value of each key in doc, as selected by the
// document's duplicate policy, ordered by first appearance.
func Values(doc *dfconfig.Document) *orderedmap.OrderedMap {
	result := orderedmap.New()
	for _, key := range doc.Keys() {
		value, _ := doc.Get(key)
		result.Set(key, value)
	}
	return result
}

// ToString converts a decoded scalar to its string form.
// Nested structures are rejected: config values are flat strings.
func ToString(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case int:
		return strconv.Itoa(val), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case time.Time:
		return val.Format(time.RFC3339), nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}

// StringValue returns the value stored under key as a string.
func StringValue(values *orderedmap.OrderedMap, key string) string {
	v, _ := values.Get(key)
	s, _ := ToString(v)
	return s
}
