package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/nuleaf/source/internal/middleware"
	"github.com/nuleaf/source/internal/model"
	"github.com/nuleaf/source/internal/query"
)

// ResourceService is the façade a ResourceHandler serves.
// service.Resource implements it.
type ResourceService[T any] interface {
	Find(ctx context.Context, c query.Conditions, p query.PageParams) ([]*T, error)
	Count(ctx context.Context, c query.Conditions) (int, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, in model.Input) (*T, error)
	Update(ctx context.Context, in model.Input) (*T, error)
	Delete(ctx context.Context, id string) error
}

// ResourceHandlerConfig holds the dependencies of a ResourceHandler
type ResourceHandlerConfig[T any] struct {
	// Kind is the singular entity name used in messages, e.g. "event".
	Kind string
	// Path is the collection path, e.g. "/events".
	Path    string
	Service ResourceService[T]
	// NewInput returns an empty request body for create and update.
	NewInput func() model.Input
}

// ResourceHandler serves the six endpoints of one entity kind
type ResourceHandler[T any] struct {
	kind     string
	path     string
	svc      ResourceService[T]
	newInput func() model.Input
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler[T any](cfg ResourceHandlerConfig[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		kind:     cfg.Kind,
		path:     cfg.Path,
		svc:      cfg.Service,
		newInput: cfg.NewInput,
	}
}

// Register adds the handler's routes to mux.
func (h *ResourceHandler[T]) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET "+h.path, h.Find)
	mux.HandleFunc("GET "+h.path+"/count", h.Count)
	mux.HandleFunc("POST "+h.path, h.Create)
	mux.HandleFunc("GET "+h.path+"/{id}", h.Get)
	mux.HandleFunc("PATCH "+h.path+"/{id}", h.Update)
	mux.HandleFunc("DELETE "+h.path+"/{id}", h.Delete)
}

// Find handles GET /{kind} - filtered, sorted, paginated search
func (h *ResourceHandler[T]) Find(w http.ResponseWriter, r *http.Request) {
	conditions, page, err := query.SplitPage(query.FromValues(r.URL.Query()))
	if err != nil {
		WriteError(w, model.NewBadRequestError(err.Error()))
		return
	}

	items, err := h.svc.Find(r.Context(), conditions, page)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, items)
}

// Count handles GET /{kind}/count
func (h *ResourceHandler[T]) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Count(r.Context(), query.FromValues(r.URL.Query()))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, n)
}

// Get handles GET /{kind}/{id}
func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, item)
}

// Create handles POST /{kind}
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	in := h.newInput()
	if err := DecodeJSON(r, in); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}

	item, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusCreated, item)
}

// Update handles PATCH /{kind}/{id}. The path id wins over any id in
// the body.
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	in := h.newInput()
	if err := DecodeJSON(r, in); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}
	in.SetID(r.PathValue("id"))

	item, err := h.svc.Update(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusCreated, item)
}

// Delete handles DELETE /{kind}/{id}
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *ResourceHandler[T]) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	resp := MapServiceError(err, h.kind)
	if resp.Status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			slog.String("kind", h.kind),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.Any("error", err),
		)
	}
	WriteError(w, resp)
}
