package repository

import (
	"github.com/nuleaf/source/internal/database"
	"github.com/nuleaf/source/internal/model"
	"github.com/nuleaf/source/internal/query"
)

const TeamTable = "team"

var TeamSchema = query.Schema{
	Kind:       "team",
	TextFields: []string{"name"},
	Sortable:   []string{"name", "created_on", "updated_on"},
}

type TeamRepository = Collection[model.Team]

func NewTeamRepository(db database.Database) *TeamRepository {
	return NewCollection[model.Team](db, TeamTable, TeamSchema)
}
