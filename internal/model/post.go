package model

import "time"

// Post is a blog entry. Author holds the id of the writing user.
type Post struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Author        string     `json:"author,omitempty"`
	DateCreated   *time.Time `json:"date_created,omitempty"`
	DatePublished *time.Time `json:"date_published,omitempty"`
	DateModified  *time.Time `json:"date_modified,omitempty"`
	CreatedOn     time.Time  `json:"created_on"`
	UpdatedOn     time.Time  `json:"updated_on"`
}

// PostRequest is the body of POST /posts and PATCH /posts/{id}
type PostRequest struct {
	ID            *string `json:"id,omitempty"`
	Title         *string `json:"title,omitempty"`
	Content       *string `json:"content,omitempty"`
	Author        *string `json:"author,omitempty"`
	DateCreated   *string `json:"date_created,omitempty"`
	DatePublished *string `json:"date_published,omitempty"`
	DateModified  *string `json:"date_modified,omitempty"`
}

func (r *PostRequest) Validate(op Op) []FieldError {
	c := checker{op: op}
	c.text("title", r.Title, true, MaxTitleLength)
	c.text("content", r.Content, true, 0)
	c.reference("author", r.Author)
	c.date("date_created", r.DateCreated)
	c.date("date_published", r.DatePublished)
	c.date("date_modified", r.DateModified)
	return c.errors
}

func (r *PostRequest) Payload() map[string]interface{} {
	return map[string]interface{}{
		"id":             strVal(r.ID),
		"title":          strVal(r.Title),
		"content":        strVal(r.Content),
		"author":         strVal(r.Author),
		"date_created":   dateVal(r.DateCreated),
		"date_published": dateVal(r.DatePublished),
		"date_modified":  dateVal(r.DateModified),
	}
}

func (r *PostRequest) SetID(id string) { r.ID = &id }
