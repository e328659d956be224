package handler

import (
	"errors"
	"net/http"

	"github.com/nuleaf/source/internal/model"
	"github.com/nuleaf/source/internal/service"
)

// MapServiceError converts a service error to an ErrorResponse. kind
// names the entity in not-found messages. This is the only place service
// errors become HTTP statuses.
func MapServiceError(err error, kind string) *model.ErrorResponse {
	if err == nil {
		return nil
	}

	var ve *service.ValidationError

	switch {
	// ===== 400 =====
	case errors.Is(err, service.ErrDependencyMissing):
		return model.NewDependencyMissingError(err.Error())
	case errors.Is(err, service.ErrInvalidIdentifier):
		return &model.ErrorResponse{
			Message: err.Error(),
			Status:  http.StatusBadRequest,
			Code:    model.ErrCodeInvalidIdentifier,
		}
	case errors.As(err, &ve):
		return model.NewValidationError(ve.Fields)
	case errors.Is(err, service.ErrValidation):
		return model.NewBadRequestError(err.Error())

	// ===== 404 =====
	case errors.Is(err, service.ErrNotFound):
		return model.NewNotFoundError(kind)

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
