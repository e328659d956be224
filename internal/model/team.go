package model

import "time"

// MaxTeamNameLength bounds Team.Name
const MaxTeamNameLength = 128

// Team groups users. Name is unique.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// TeamRequest is the body of POST /teams and PATCH /teams/{id}
type TeamRequest struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

func (r *TeamRequest) Validate(op Op) []FieldError {
	c := checker{op: op}
	c.text("name", r.Name, true, MaxTeamNameLength)
	return c.errors
}

func (r *TeamRequest) Payload() map[string]interface{} {
	return map[string]interface{}{
		"id":   strVal(r.ID),
		"name": strVal(r.Name),
	}
}

func (r *TeamRequest) SetID(id string) { r.ID = &id }
