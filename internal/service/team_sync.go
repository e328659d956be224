package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nuleaf/source/internal/model"
)

// TeamLookup loads teams by id; nil means no such team.
type TeamLookup interface {
	Get(ctx context.Context, id string) (*model.Team, error)
}

// TeamNameSync copies a team's name onto the user being written. The copy
// is taken at write time only: renaming a team later does not touch its
// users, so a user's team_name can lag behind until the user is written
// again with the team reference.
type TeamNameSync struct {
	teams TeamLookup
}

func NewTeamNameSync(teams TeamLookup) *TeamNameSync {
	return &TeamNameSync{teams: teams}
}

// Apply is a WriteHook. When fields carries team_id it resolves the team
// and sets team_name; an empty team_id clears the name.
func (s *TeamNameSync) Apply(ctx context.Context, _ model.Op, fields map[string]interface{}) error {
	raw, ok := fields["team_id"]
	if !ok {
		return nil
	}
	teamID, ok := raw.(string)
	if !ok {
		return &ValidationError{Fields: []model.FieldError{{Field: "team_id", Message: "team_id must be a string"}}}
	}
	if teamID == "" {
		fields["team_name"] = ""
		return nil
	}

	if err := checkID(teamID); err != nil {
		return fmt.Errorf("%w: team_id: %w", ErrDependencyMissing, err)
	}

	team, err := s.teams.Get(ctx, teamID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("resolving team %s: %w", teamID, err)
	}
	if team == nil {
		return fmt.Errorf("%w: team %s does not exist", ErrDependencyMissing, teamID)
	}

	fields["team_name"] = team.Name
	return nil
}
