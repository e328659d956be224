package repository

import (
	"github.com/nuleaf/source/internal/database"
	"github.com/nuleaf/source/internal/model"
	"github.com/nuleaf/source/internal/query"
)

// EventTable is the store table holding events.
const EventTable = "event"

// EventSchema lists the filterable and sortable event fields. Date ranges
// accept start_date/end_date as aliases of date_after/date_before.
var EventSchema = query.Schema{
	Kind:       "event",
	TextFields: []string{"title", "location"},
	DateAxes: []query.DateAxis{{
		Field:  "date",
		Exact:  "date",
		After:  []string{"date_after", "start_date"},
		Before: []string{"date_before", "end_date"},
	}},
	Sortable: []string{"title", "date", "location", "created_on", "updated_on"},
}

// EventRepository handles event data access
type EventRepository = Collection[model.Event]

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return NewCollection[model.Event](db, EventTable, EventSchema)
}
