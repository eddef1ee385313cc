package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flightpath-edu/flightpath-backend/internal/flightdeck"
	"github.com/flightpath-edu/flightpath-backend/internal/repos"
	"github.com/flightpath-edu/flightpath-backend/internal/roadmap"
	"github.com/flightpath-edu/flightpath-backend/internal/services"
)

// respondDomainError maps the generator and flight deck error taxonomy onto
// HTTP statuses. Anything unrecognized is an infrastructure failure.
func respondDomainError(c *gin.Context, err error) {
	var policyErr *roadmap.PolicyError
	var boundsErr *roadmap.BoundsError
	var notFoundErr *roadmap.NotFoundError
	var validationErr *flightdeck.ValidationError

	switch {
	case errors.Is(err, repos.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.As(err, &notFoundErr):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.As(err, &policyErr):
		RespondError(c, http.StatusUnprocessableEntity, "policy_unsatisfiable", err)
	case errors.As(err, &boundsErr):
		RespondError(c, http.StatusInternalServerError, "credit_bounds_violation", err)
	case errors.As(err, &validationErr):
		RespondError(c, http.StatusUnprocessableEntity, "validation_failed", err)
	case errors.Is(err, services.ErrGenerationInProgress):
		RespondError(c, http.StatusConflict, "generation_in_progress", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
