// Package model defines the entities and request bodies of the Source API.
//
// # Entities
//
//   - Event: title, date, location
//   - Post: title, content, author and three timestamps
//   - Seminar: an event with host, image file and description
//   - Team: uniquely named group
//   - User: account with a team reference and a copied team_name
//
// # Requests
//
// Each entity has one request type used by both create and partial update.
// All fields are pointers so that an omitted field can be told apart from
// an empty one:
//
//	req := &model.EventRequest{}
//	if errs := req.Validate(model.OpCreate); len(errs) > 0 { ... }
//	payload := req.Payload() // absent fields are nil
//
// # Errors
//
// ErrorResponse is the JSON error body; its message is in the "error" field.
package model
