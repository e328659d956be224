package service

import (
	"github.com/nuleaf/source/internal/model"
	"github.com/nuleaf/source/internal/query"
)

type TeamService = Resource[model.Team]

// NewTeamService creates the team service. Team names are unique.
func NewTeamService(repo Store[model.Team], resolver query.Resolver) *TeamService {
	return NewResource(ResourceConfig[model.Team]{
		Store:         repo,
		Resolver:      resolver,
		UniqueIndexes: map[string]string{"team_name_unique": "name"},
	})
}
