package handler

import (
	"net/http"

	"github.com/nuleaf/source/internal/model"
)

// Services bundles the per-kind services the API serves. The service
// package's Resource types satisfy these interfaces.
type Services struct {
	Events   ResourceService[model.Event]
	Posts    ResourceService[model.Post]
	Seminars ResourceService[model.Seminar]
	Teams    ResourceService[model.Team]
	Users    ResourceService[model.User]
}

// Register adds every resource route and the health check to mux.
func Register(mux *http.ServeMux, svc Services, health *HealthHandler) {
	mux.HandleFunc("GET /health", health.Health)

	NewResourceHandler(ResourceHandlerConfig[model.Event]{
		Kind: "event", Path: "/events", Service: svc.Events,
		NewInput: func() model.Input { return &model.EventRequest{} },
	}).Register(mux)

	NewResourceHandler(ResourceHandlerConfig[model.Post]{
		Kind: "post", Path: "/posts", Service: svc.Posts,
		NewInput: func() model.Input { return &model.PostRequest{} },
	}).Register(mux)

	NewResourceHandler(ResourceHandlerConfig[model.Seminar]{
		Kind: "seminar", Path: "/seminars", Service: svc.Seminars,
		NewInput: func() model.Input { return &model.SeminarRequest{} },
	}).Register(mux)

	NewResourceHandler(ResourceHandlerConfig[model.Team]{
		Kind: "team", Path: "/teams", Service: svc.Teams,
		NewInput: func() model.Input { return &model.TeamRequest{} },
	}).Register(mux)

	NewResourceHandler(ResourceHandlerConfig[model.User]{
		Kind: "user", Path: "/users", Service: svc.Users,
		NewInput: func() model.Input { return &model.UserRequest{} },
	}).Register(mux)
}
