package http

import (
	"errors"
	"net/http"

	"oneday-todo/internal/todo"
	pkgErrors "oneday-todo/pkg/errors"
)

var (
	errIDRequired     = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errUnknownControl = pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown control or event")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, todo.ErrInvalidFilter):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "filter must be one of all, active, completed")
	case errors.Is(err, todo.ErrPersist):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "failed to save todos")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
