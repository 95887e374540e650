package http

import (
	"errors"
	"net/http"

	"oneday-todo/internal/offline/worker"
	pkgErrors "oneday-todo/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, worker.ErrNothingToRun):
		return pkgErrors.NewHTTPError(http.StatusConflict, "no worker is waiting")
	case errors.Is(err, worker.ErrInvalidState):
		return pkgErrors.NewHTTPError(http.StatusConflict, "worker cannot be activated")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
