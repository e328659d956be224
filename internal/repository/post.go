package repository

import (
	"github.com/nuleaf/source/internal/database"
	"github.com/nuleaf/source/internal/model"
	"github.com/nuleaf/source/internal/query"
)

const PostTable = "post"

// PostSchema has three independent date axes. Each one may be bounded on
// either side or matched exactly.
var PostSchema = query.Schema{
	Kind:       "post",
	TextFields: []string{"title", "content", "author"},
	DateAxes: []query.DateAxis{
		{
			Field:  "date_created",
			Exact:  "date_created",
			After:  []string{"created_after"},
			Before: []string{"created_before"},
		},
		{
			Field:  "date_published",
			Exact:  "date_published",
			After:  []string{"published_after"},
			Before: []string{"published_before"},
		},
		{
			Field:  "date_modified",
			Exact:  "date_modified",
			After:  []string{"modified_after"},
			Before: []string{"modified_before"},
		},
	},
	Sortable: []string{
		"title", "author",
		"date_created", "date_published", "date_modified",
		"created_on", "updated_on",
	},
}

type PostRepository = Collection[model.Post]

func NewPostRepository(db database.Database) *PostRepository {
	return NewCollection[model.Post](db, PostTable, PostSchema)
}
