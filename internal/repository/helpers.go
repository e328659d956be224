package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// decodeRecord converts a raw store record into T. Record ids are reduced
// to their bare key and store datetimes to time.Time before the record is
// mapped through its JSON tags.
func decodeRecord[T any](raw interface{}) (*T, error) {
	data, ok := raw.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	normalized := make(map[string]interface{}, len(data))
	for k, v := range data {
		if k == "id" {
			normalized[k] = convertSurrealID(v)
			continue
		}
		normalized[k] = fromStoreValue(v)
	}

	jsonBytes, err := json.Marshal(normalized)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(jsonBytes, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// decodeRecords decodes every record of a statement result. A nil result
// decodes to an empty slice.
func decodeRecords[T any](raw interface{}) ([]*T, error) {
	items := make([]*T, 0)
	if raw == nil {
		return items, nil
	}
	rows, ok := raw.([]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	for _, row := range rows {
		item, err := decodeRecord[T](row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// convertSurrealID returns the key part of a record id, so "event:⟨abc⟩"
// becomes "abc".
func convertSurrealID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return fmt.Sprint(v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprint(v.ID)
		}
		return ""
	case map[string]interface{}:
		if key, ok := v["id"]; ok {
			return extractIDValue(key)
		}
		if key, ok := v["ID"]; ok {
			return extractIDValue(key)
		}
	}
	return fmt.Sprintf("%v", id)
}

// extractIDValue extracts the ID value which may be nested
func extractIDValue(val interface{}) string {
	if str, ok := val.(string); ok {
		return str
	}
	if m, ok := val.(map[string]interface{}); ok {
		if s, ok := m["String"].(string); ok {
			return s
		}
	}
	return fmt.Sprintf("%v", val)
}

// fromStoreValue maps store-specific value types onto plain Go values.
func fromStoreValue(v interface{}) interface{} {
	switch t := v.(type) {
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t == nil {
			return nil
		}
		return t.Time
	case models.RecordID:
		return fmt.Sprint(t.ID)
	case *models.RecordID:
		if t == nil {
			return nil
		}
		return fmt.Sprint(t.ID)
	}
	return v
}

// toStoreValues returns a copy of fields with times converted to the
// store's datetime type. Plain time.Time values would otherwise be sent
// as strings.
func toStoreValues(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		switch t := v.(type) {
		case time.Time:
			out[k] = models.CustomDateTime{Time: t}
		case *time.Time:
			if t != nil {
				out[k] = models.CustomDateTime{Time: *t}
			}
		default:
			out[k] = v
		}
	}
	return out
}

// extractCountValue converts various numeric types to int
func extractCountValue(v interface{}) int {
	switch c := v.(type) {
	case float64:
		return int(c)
	case float32:
		return int(c)
	case int:
		return c
	case int64:
		return int(c)
	case uint64:
		return int(c)
	case uint32:
		return int(c)
	case int32:
		return int(c)
	}
	return 0
}
