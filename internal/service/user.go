package service

import (
	"github.com/nuleaf/source/internal/model"
	"github.com/nuleaf/source/internal/query"
)

type UserService = Resource[model.User]

// UserServiceConfig holds the dependencies of the user service
type UserServiceConfig struct {
	UserRepo Store[model.User]
	TeamRepo TeamLookup
	Resolver query.Resolver
}

// NewUserService creates the user service. Writes carrying team_id get
// team_name filled in from the referenced team.
func NewUserService(cfg UserServiceConfig) *UserService {
	teamSync := NewTeamNameSync(cfg.TeamRepo)
	return NewResource(ResourceConfig[model.User]{
		Store:       cfg.UserRepo,
		Resolver:    cfg.Resolver,
		BeforeWrite: teamSync.Apply,
		UniqueIndexes: map[string]string{
			"user_username_unique": "username",
			"user_email_unique":    "email",
		},
	})
}
