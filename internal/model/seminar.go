package model

import "time"

// Seminar is an event with a host, an image and a description
type Seminar struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        *time.Time `json:"date,omitempty"`
	Location    string     `json:"location"`
	Host        string     `json:"host"`
	ImageFile   string     `json:"image_file"`
	Description string     `json:"description"`
	CreatedOn   time.Time  `json:"created_on"`
	UpdatedOn   time.Time  `json:"updated_on"`
}

// SeminarRequest is the body of POST /seminars and PATCH /seminars/{id}
type SeminarRequest struct {
	ID          *string `json:"id,omitempty"`
	Title       *string `json:"title,omitempty"`
	Date        *string `json:"date,omitempty"`
	Location    *string `json:"location,omitempty"`
	Host        *string `json:"host,omitempty"`
	ImageFile   *string `json:"image_file,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *SeminarRequest) Validate(op Op) []FieldError {
	c := checker{op: op}
	c.text("title", r.Title, true, MaxTitleLength)
	c.date("date", r.Date)
	c.text("location", r.Location, false, MaxLocationLength)
	c.text("host", r.Host, false, MaxHostLength)
	c.text("image_file", r.ImageFile, false, MaxImageFileLength)
	return c.errors
}

func (r *SeminarRequest) Payload() map[string]interface{} {
	return map[string]interface{}{
		"id":          strVal(r.ID),
		"title":       strVal(r.Title),
		"date":        dateVal(r.Date),
		"location":    strVal(r.Location),
		"host":        strVal(r.Host),
		"image_file":  strVal(r.ImageFile),
		"description": strVal(r.Description),
	}
}

func (r *SeminarRequest) SetID(id string) { r.ID = &id }
