package http

import (
	"errors"
	"net/http"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) fail(c echo.Context, code int, message string) error {
	return c.JSON(code, Error{Code: code, Message: message})
}

// failWith maps an application error to a status code. Unexpected errors are
// logged and answered with a generic message.
func (s *Server) failWith(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return s.fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrTransitionIsNotAllowed),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return s.fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return s.fail(c, http.StatusBadRequest, err.Error())
	}

	s.logger.ErrorContext(c.Request().Context(), "Request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	return s.fail(c, http.StatusInternalServerError, "Internal error")
}
