package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/flightpath-edu/flightpath-backend/internal/flightdeck"
	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/requestdata"
	"github.com/flightpath-edu/flightpath-backend/internal/services"
)

type FlightDeckHandler struct {
	log               *logger.Logger
	flightDeckService services.FlightDeckService
}

func NewFlightDeckHandler(log *logger.Logger, flightDeckService services.FlightDeckService) *FlightDeckHandler {
	return &FlightDeckHandler{
		log:               log.With("handler", "FlightDeckHandler"),
		flightDeckService: flightDeckService,
	}
}

// GetDashboard serves the assembled dashboard for the caller's plan. Query
// params completed, in_progress, and weekly_hours override the signals the
// portal cannot observe server-side.
func (h *FlightDeckHandler) GetDashboard(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	templateID, err := uuid.Parse(c.Param("templateID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	params := services.DashboardParams{}
	if v := c.Query("completed"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "bad_request", err)
			return
		}
		params.CompletedCredits = &n
	}
	if v := c.Query("in_progress"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "bad_request", err)
			return
		}
		params.InProgressCredits = &n
	}
	if v := c.Query("weekly_hours"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "bad_request", err)
			return
		}
		params.WeeklyStudyHours = &f
	}

	result, err := h.flightDeckService.GetDashboard(c.Request.Context(), rd.UserID, templateID, params)
	if err != nil {
		h.log.Error("GetDashboard failed", "error", err, "user_id", rd.UserID, "template_id", templateID)
		respondDomainError(c, err)
		return
	}
	RespondOK(c, result)
}

// Calculate runs the engine on raw caller-supplied input.
func (h *FlightDeckHandler) Calculate(c *gin.Context) {
	var input flightdeck.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	result, err := h.flightDeckService.Calculate(input)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	RespondOK(c, result)
}
