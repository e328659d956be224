package model

import "time"

// Field length limits shared by events and seminars
const (
	MaxTitleLength     = 128
	MaxLocationLength  = 128
	MaxHostLength      = 128
	MaxImageFileLength = 256
)

// Event represents a dated happening with an optional location
type Event struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Date      *time.Time `json:"date,omitempty"`
	Location  string     `json:"location"`
	CreatedOn time.Time  `json:"created_on"`
	UpdatedOn time.Time  `json:"updated_on"`
}

// EventRequest is the body of POST /events and PATCH /events/{id}
type EventRequest struct {
	ID       *string `json:"id,omitempty"`
	Title    *string `json:"title,omitempty"`
	Date     *string `json:"date,omitempty"`
	Location *string `json:"location,omitempty"`
}

// Validate checks the request for the given operation
func (r *EventRequest) Validate(op Op) []FieldError {
	c := checker{op: op}
	c.text("title", r.Title, true, MaxTitleLength)
	c.date("date", r.Date)
	c.text("location", r.Location, false, MaxLocationLength)
	return c.errors
}

// Payload returns the request fields keyed by stored name
func (r *EventRequest) Payload() map[string]interface{} {
	return map[string]interface{}{
		"id":       strVal(r.ID),
		"title":    strVal(r.Title),
		"date":     dateVal(r.Date),
		"location": strVal(r.Location),
	}
}

func (r *EventRequest) SetID(id string) { r.ID = &id }
