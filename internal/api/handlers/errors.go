package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evermeet/booking-go/internal/application"
	"github.com/evermeet/booking-go/internal/domain/registration"
	"github.com/evermeet/booking-go/pkg/response"
)

// writeServiceError maps the service error taxonomy onto HTTP. Guard
// failures keep their specific message; anything unrecognized becomes
// a generic 500 so no internals leak to callers.
func writeServiceError(c *gin.Context, err error) {
	var schemaErr *application.InvalidSchemaError
	if errors.As(err, &schemaErr) {
		c.JSON(http.StatusBadRequest, response.FieldErrorResponse{Error: "invalid schema", Fields: schemaErr.Fields})
		return
	}

	var validationErr *application.ValidationFailedError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, response.FieldErrorResponse{Error: "validation failed", Fields: validationErr.Fields})
		return
	}

	switch {
	case errors.Is(err, application.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "not found"})
	case errors.Is(err, application.ErrForbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "forbidden"})
	case errors.Is(err, application.ErrRegistrationDisabled):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "registration is disabled for this event"})
	case errors.Is(err, application.ErrPaymentIntentMismatch):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: "payment intent mismatch"})
	case errors.Is(err, application.ErrNotEditable):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: "registration can no longer be edited"})
	case errors.Is(err, registration.ErrInvalidTransition):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: "invalid status transition"})
	case errors.Is(err, registration.ErrPaymentRequired):
		c.JSON(http.StatusPaymentRequired, response.ErrorResponse{Error: "payment required before approval"})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
	}
}
