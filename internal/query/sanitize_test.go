package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_DropsOnlyAbsentValues(t *testing.T) {
	t.Parallel()

	var nilTitle *string
	payload := map[string]interface{}{
		"id":       "1",
		"title":    nil,
		"host":     nilTitle,
		"location": "",
		"active":   false,
		"count":    0,
	}

	id, fields := Sanitize(payload)

	assert.Equal(t, "1", id)
	assert.Equal(t, map[string]interface{}{
		"location": "",
		"active":   false,
		"count":    0,
	}, fields)
	assert.Len(t, payload, 6, "input is not modified")
}

func TestSanitize_Example(t *testing.T) {
	t.Parallel()

	id, fields := Sanitize(map[string]interface{}{"id": "1", "title": nil, "location": ""})
	assert.Equal(t, "1", id)
	assert.Equal(t, map[string]interface{}{"location": ""}, fields)
}

func TestSanitize_IDForms(t *testing.T) {
	t.Parallel()

	s := "abc"
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"string", "abc", "abc"},
		{"pointer", &s, "abc"},
		{"number", 12.0, "12"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, fields := Sanitize(map[string]interface{}{"id": tt.in, "name": "x"})
			assert.Equal(t, tt.want, id)
			assert.Equal(t, map[string]interface{}{"name": "x"}, fields)
		})
	}
}

func TestSanitize_Empty(t *testing.T) {
	t.Parallel()

	id, fields := Sanitize(nil)
	assert.Empty(t, id)
	assert.Empty(t, fields)
}
