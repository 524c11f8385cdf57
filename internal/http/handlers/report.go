package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ideaforge/ideaforge-backend/internal/data/repos/funnel"
	"github.com/ideaforge/ideaforge-backend/internal/http/response"
	"github.com/ideaforge/ideaforge-backend/internal/platform/dbctx"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
	"github.com/ideaforge/ideaforge-backend/internal/services"
)

type ReportHandler struct {
	log     *logger.Logger
	reports services.FunnelReportService
	acts    funnel.ActivityRepo
}

func NewReportHandler(baseLog *logger.Logger, reports services.FunnelReportService, acts funnel.ActivityRepo) *ReportHandler {
	return &ReportHandler{
		log:     baseLog.With("handler", "ReportHandler"),
		reports: reports,
		acts:    acts,
	}
}

// GET /api/reports/funnel
func (h *ReportHandler) Funnel(c *gin.Context) {
	topN, _ := strconv.Atoi(c.DefaultQuery("top", "5"))
	recentN, _ := strconv.Atoi(c.DefaultQuery("recent", "10"))

	report, err := h.reports.FunnelReport(c.Request.Context(), topN, recentN)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, report)
}

// GET /api/activities/entity/:type/:id
func (h *ReportHandler) EntityActivity(c *gin.Context) {
	entityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_entity_id", err)
		return
	}
	acts, err := h.acts.GetByEntity(dbctx.Context{Ctx: c.Request.Context()}, c.Param("type"), entityID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, acts)
}
