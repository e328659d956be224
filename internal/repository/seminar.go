package repository

import (
	"github.com/nuleaf/source/internal/database"
	"github.com/nuleaf/source/internal/model"
	"github.com/nuleaf/source/internal/query"
)

const SeminarTable = "seminar"

// SeminarSchema shares the event date keys and adds host and description.
var SeminarSchema = query.Schema{
	Kind:       "seminar",
	TextFields: []string{"title", "location", "host", "description"},
	DateAxes: []query.DateAxis{{
		Field:  "date",
		Exact:  "date",
		After:  []string{"date_after", "start_date"},
		Before: []string{"date_before", "end_date"},
	}},
	Sortable: []string{"title", "date", "location", "host", "created_on", "updated_on"},
}

type SeminarRepository = Collection[model.Seminar]

func NewSeminarRepository(db database.Database) *SeminarRepository {
	return NewCollection[model.Seminar](db, SeminarTable, SeminarSchema)
}
