package query

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// ErrInvalidArgument is returned when a filter, pagination or sort value
// cannot be interpreted for the field it targets.
var ErrInvalidArgument = errors.New("invalid argument")

// Conditions are loosely typed filter values keyed by request parameter
// name. Values may be string, []string, bool, time.Time, numbers or nil.
type Conditions map[string]interface{}

// FromValues converts a parsed query string. A key given once becomes a
// string; a repeated key stays a []string and is rejected by filters that
// expect a single value.
func FromValues(v url.Values) Conditions {
	c := make(Conditions, len(v))
	for key, vals := range v {
		switch len(vals) {
		case 0:
			c[key] = ""
		case 1:
			c[key] = vals[0]
		default:
			c[key] = append([]string(nil), vals...)
		}
	}
	return c
}

// Predicate is a compiled SurrealQL boolean expression together with the
// variables it binds. An empty Clause matches every record.
type Predicate struct {
	Clause string
	Vars   map[string]interface{}
}

// Where renders the predicate as a WHERE clause, or "" when unconditional.
func (p Predicate) Where() string {
	if p.Clause == "" {
		return ""
	}
	return " WHERE " + p.Clause
}

// DateAxis describes one filterable timestamp field. Exact is the key for
// an equality match; After and Before list the keys (first match wins)
// for the lower and upper inclusive bounds.
type DateAxis struct {
	Field  string
	Exact  string
	After  []string
	Before []string
}

// Schema is the explicit allow-list of filterable and sortable fields for
// one entity kind.
type Schema struct {
	Kind       string
	TextFields []string
	BoolFields []string
	// ActiveFlags enables the mutually exclusive active/inactive request
	// flags, which map onto the is_active field.
	ActiveFlags bool
	DateAxes    []DateAxis
	Sortable    []string
}

// CanSort reports whether field is in the sortable allow-list.
func (s Schema) CanSort(field string) bool {
	for _, f := range s.Sortable {
		if f == field {
			return true
		}
	}
	return false
}

const varPrefix = "q_"

// Compile translates conditions into a predicate for schema. Keys the
// schema does not recognize are ignored.
func Compile(s Schema, c Conditions) (Predicate, error) {
	var clauses []string
	vars := make(map[string]interface{})

	for _, field := range s.TextFields {
		val, ok, err := textValue(c, field)
		if err != nil {
			return Predicate{}, err
		}
		if !ok {
			continue
		}
		name := varPrefix + field
		vars[name] = strings.ToLower(val)
		clauses = append(clauses, fmt.Sprintf("string::contains(string::lowercase(<string>(%s ?? \"\")), $%s)", field, name))
	}

	for _, field := range s.BoolFields {
		val, ok, err := boolValue(c, field)
		if err != nil {
			return Predicate{}, err
		}
		if s.ActiveFlags && field == "is_active" {
			flag, flagged, err := activeFlag(c)
			if err != nil {
				return Predicate{}, err
			}
			if flagged {
				if ok && val != flag {
					return Predicate{}, fmt.Errorf("%w: is_active conflicts with active/inactive flag", ErrInvalidArgument)
				}
				val, ok = flag, true
			}
		}
		if !ok {
			continue
		}
		name := varPrefix + field
		vars[name] = val
		clauses = append(clauses, fmt.Sprintf("%s = $%s", field, name))
	}

	for _, axis := range s.DateAxes {
		clause, err := compileDateAxis(axis, c, vars)
		if err != nil {
			return Predicate{}, err
		}
		if clause != "" {
			clauses = append(clauses, clause)
		}
	}

	if len(clauses) == 0 {
		return Predicate{}, nil
	}
	return Predicate{Clause: strings.Join(clauses, " AND "), Vars: vars}, nil
}

// compileDateAxis builds the clause for one date field. An exact value
// wins over the range keys; both range bounds are inclusive.
func compileDateAxis(axis DateAxis, c Conditions, vars map[string]interface{}) (string, error) {
	if axis.Exact != "" {
		at, ok, err := timeValue(c, axis.Exact)
		if err != nil {
			return "", err
		}
		if ok {
			name := varPrefix + axis.Field
			vars[name] = models.CustomDateTime{Time: at}
			return fmt.Sprintf("%s = $%s", axis.Field, name), nil
		}
	}

	var parts []string
	after, ok, err := firstTimeValue(c, axis.After)
	if err != nil {
		return "", err
	}
	if ok {
		name := varPrefix + axis.Field + "_after"
		vars[name] = models.CustomDateTime{Time: after}
		parts = append(parts, fmt.Sprintf("%s >= $%s", axis.Field, name))
	}

	before, ok, err := firstTimeValue(c, axis.Before)
	if err != nil {
		return "", err
	}
	if ok {
		name := varPrefix + axis.Field + "_before"
		vars[name] = models.CustomDateTime{Time: before}
		parts = append(parts, fmt.Sprintf("%s <= $%s", axis.Field, name))
	}

	return strings.Join(parts, " AND "), nil
}

// activeFlag resolves the active/inactive pair. A flag counts when it is
// present with an empty or true value.
func activeFlag(c Conditions) (value bool, present bool, err error) {
	active, err := flagSet(c, "active")
	if err != nil {
		return false, false, err
	}
	inactive, err := flagSet(c, "inactive")
	if err != nil {
		return false, false, err
	}
	switch {
	case active && inactive:
		return false, false, fmt.Errorf("%w: active and inactive are mutually exclusive", ErrInvalidArgument)
	case active:
		return true, true, nil
	case inactive:
		return false, true, nil
	}
	return false, false, nil
}

func flagSet(c Conditions, key string) (bool, error) {
	raw, ok := c[key]
	if !ok || raw == nil {
		return false, nil
	}
	if b, isBool := raw.(bool); isBool {
		return b, nil
	}
	s, err := single(key, raw)
	if err != nil {
		return false, err
	}
	if s == "" {
		return true, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean flag", ErrInvalidArgument, key)
	}
	return b, nil
}

// single extracts one string from a string or a one-element []string.
func single(key string, raw interface{}) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case []string:
		if len(v) == 1 {
			return v[0], nil
		}
		return "", fmt.Errorf("%w: %s given %d times", ErrInvalidArgument, key, len(v))
	default:
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidArgument, key, raw)
	}
}

func textValue(c Conditions, key string) (string, bool, error) {
	raw, ok := c[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, err := single(key, raw)
	if err != nil {
		return "", false, err
	}
	if s == "" {
		return "", false, nil
	}
	return s, true, nil
}

func boolValue(c Conditions, key string) (bool, bool, error) {
	raw, ok := c[key]
	if !ok || raw == nil {
		return false, false, nil
	}
	if b, isBool := raw.(bool); isBool {
		return b, true, nil
	}
	s, err := single(key, raw)
	if err != nil {
		return false, false, err
	}
	if s == "" {
		return false, false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, false, fmt.Errorf("%w: %s must be true or false", ErrInvalidArgument, key)
	}
	return b, true, nil
}

func timeValue(c Conditions, key string) (time.Time, bool, error) {
	raw, ok := c[key]
	if !ok || raw == nil {
		return time.Time{}, false, nil
	}
	switch v := raw.(type) {
	case time.Time:
		return v, true, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, false, nil
		}
		return *v, true, nil
	}
	s, err := single(key, raw)
	if err != nil {
		return time.Time{}, false, err
	}
	if s == "" {
		return time.Time{}, false, nil
	}
	t, err := ParseTime(s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %s: %v", ErrInvalidArgument, key, err)
	}
	return t, true, nil
}

func firstTimeValue(c Conditions, keys []string) (time.Time, bool, error) {
	for _, key := range keys {
		t, ok, err := timeValue(c, key)
		if err != nil || ok {
			return t, ok, err
		}
	}
	return time.Time{}, false, nil
}

// timeLayouts are tried in order by ParseTime.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
	"01/02/06",
}

// ParseTime accepts RFC 3339 timestamps, ISO dates and US-style
// month/day/year dates. Values without a zone are UTC. A date without a
// time is midnight of that day, so as an upper bound ("end_date=2017-05-03")
// it excludes later times on the same day; pass a full timestamp or the
// next day to include them.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
