package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/requestdata"
	"github.com/flightpath-edu/flightpath-backend/internal/services"
)

type RoadmapHandler struct {
	log            *logger.Logger
	roadmapService services.RoadmapService
}

func NewRoadmapHandler(log *logger.Logger, roadmapService services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{
		log:            log.With("handler", "RoadmapHandler"),
		roadmapService: roadmapService,
	}
}

type generateRequest struct {
	TemplateID       uuid.UUID `json:"template_id" binding:"required"`
	PaceHoursPerWeek int       `json:"pace_hours_per_week"`
	PaceMonths       int       `json:"pace_months"`
}

func (h *RoadmapHandler) Generate(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	out, err := h.roadmapService.Generate(c.Request.Context(), rd.UserID, req.TemplateID, services.GenerateOptions{
		PaceHoursPerWeek: req.PaceHoursPerWeek,
		PaceMonths:       req.PaceMonths,
	})
	if err != nil {
		h.log.Error("Generate failed", "error", err, "user_id", rd.UserID, "template_id", req.TemplateID)
		respondDomainError(c, err)
		return
	}
	RespondOK(c, out)
}

func (h *RoadmapHandler) GetPlan(c *gin.Context) {
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

	view, err := h.roadmapService.GetPlan(c.Request.Context(), rd.UserID, templateID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	RespondOK(c, view)
}
