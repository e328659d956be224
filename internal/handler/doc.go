// Package handler provides the HTTP surface of the Source API.
//
// Every entity kind (events, posts, seminars, teams, users) is served by
// a ResourceHandler with the same six routes:
//
//	GET    /{kind}          search; filters, skip, limit, sortBy, sort in the query string
//	GET    /{kind}/count    number of matches, as a bare integer
//	POST   /{kind}          create, 201
//	GET    /{kind}/{id}     fetch one
//	PATCH  /{kind}/{id}     partial update, 201
//	DELETE /{kind}/{id}     {"success": true}
//
// Success bodies are the bare JSON value. Errors use model.ErrorResponse,
// produced only by MapServiceError.
//
// # Example Usage
//
//	mux := http.NewServeMux()
//	handler.Register(mux, handler.Services{Events: events, Teams: teams, ...},
//	    handler.NewHealthHandler(db))
package handler
