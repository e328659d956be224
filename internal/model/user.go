package model

import "time"

// User field length limits
const (
	MaxUsernameLength    = 128
	MaxEmailLength       = 128
	MaxPasswordLength    = 128
	MaxPersonNameLength  = 64
	MaxImageLength       = 256
	MaxDescriptionLength = 1000
)

// User is an account, optionally belonging to a team. TeamName is a copy
// of the team's name taken when TeamID was last written.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Password    string    `json:"-"` // stored as supplied, never returned
	Firstname   string    `json:"firstname"`
	Lastname    string    `json:"lastname"`
	Image1      string    `json:"image1"`
	Image2      string    `json:"image2"`
	IsActive    bool      `json:"is_active"`
	TeamID      *string   `json:"team_id,omitempty"`
	TeamName    string    `json:"team_name"`
	Description string    `json:"description"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// UserRequest is the body of POST /users and PATCH /users/{id}.
// team_name is not accepted; it is derived from team_id.
type UserRequest struct {
	ID          *string `json:"id,omitempty"`
	Username    *string `json:"username,omitempty"`
	Email       *string `json:"email,omitempty"`
	Password    *string `json:"password,omitempty"`
	Firstname   *string `json:"firstname,omitempty"`
	Lastname    *string `json:"lastname,omitempty"`
	Image1      *string `json:"image1,omitempty"`
	Image2      *string `json:"image2,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	TeamID      *string `json:"team_id,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UserRequest) Validate(op Op) []FieldError {
	c := checker{op: op}
	c.text("username", r.Username, true, MaxUsernameLength)
	c.text("email", r.Email, true, MaxEmailLength)
	c.text("password", r.Password, true, MaxPasswordLength)
	c.text("firstname", r.Firstname, false, MaxPersonNameLength)
	c.text("lastname", r.Lastname, false, MaxPersonNameLength)
	c.text("image1", r.Image1, false, MaxImageLength)
	c.text("image2", r.Image2, false, MaxImageLength)
	c.text("description", r.Description, false, MaxDescriptionLength)
	return c.errors
}

func (r *UserRequest) Payload() map[string]interface{} {
	return map[string]interface{}{
		"id":          strVal(r.ID),
		"username":    strVal(r.Username),
		"email":       strVal(r.Email),
		"password":    strVal(r.Password),
		"firstname":   strVal(r.Firstname),
		"lastname":    strVal(r.Lastname),
		"image1":      strVal(r.Image1),
		"image2":      strVal(r.Image2),
		"is_active":   boolVal(r.IsActive),
		"team_id":     strVal(r.TeamID),
		"description": strVal(r.Description),
	}
}

func (r *UserRequest) SetID(id string) { r.ID = &id }
