package repository

import (
	"github.com/nuleaf/source/internal/database"
	"github.com/nuleaf/source/internal/model"
	"github.com/nuleaf/source/internal/query"
)

const UserTable = "user"

// UserSchema filters users by profile text and activity. The active and
// inactive request flags map onto is_active.
var UserSchema = query.Schema{
	Kind:        "user",
	TextFields:  []string{"username", "email", "firstname", "lastname", "team_name"},
	BoolFields:  []string{"is_active"},
	ActiveFlags: true,
	Sortable: []string{
		"username", "email", "firstname", "lastname",
		"team_name", "is_active", "created_on", "updated_on",
	},
}

type UserRepository = Collection[model.User]

func NewUserRepository(db database.Database) *UserRepository {
	return NewCollection[model.User](db, UserTable, UserSchema)
}
