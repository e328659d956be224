package query

import (
	"fmt"
	"reflect"
)

// KeyID is the payload key that addresses the record being updated.
const KeyID = "id"

// Sanitize drops absent values from an update payload and extracts the
// record id. Only nil (including typed nil pointers, maps and slices) is
// dropped; "", false and 0 are kept so callers can clear a field. The
// input map is not modified.
func Sanitize(payload map[string]interface{}) (string, map[string]interface{}) {
	var id string
	fields := make(map[string]interface{}, len(payload))
	for key, val := range payload {
		if isAbsent(val) {
			continue
		}
		if key == KeyID {
			id = idString(val)
			continue
		}
		fields[key] = val
	}
	return id, fields
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case *string:
		return *id
	case fmt.Stringer:
		return id.String()
	default:
		return fmt.Sprint(v)
	}
}

func isAbsent(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
