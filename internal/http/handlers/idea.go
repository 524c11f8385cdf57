package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ideaforge/ideaforge-backend/internal/data/repos/funnel"
	"github.com/ideaforge/ideaforge-backend/internal/http/response"
	"github.com/ideaforge/ideaforge-backend/internal/platform/ctxutil"
	"github.com/ideaforge/ideaforge-backend/internal/platform/dbctx"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
	"github.com/ideaforge/ideaforge-backend/internal/services"
)

type IdeaHandler struct {
	log      *logger.Logger
	workflow services.WorkflowService
	ideas    funnel.IdeaRepo
	hyps     funnel.HypothesisRepo
}

func NewIdeaHandler(
	baseLog *logger.Logger,
	workflow services.WorkflowService,
	ideas funnel.IdeaRepo,
	hyps funnel.HypothesisRepo,
) *IdeaHandler {
	return &IdeaHandler{
		log:      baseLog.With("handler", "IdeaHandler"),
		workflow: workflow,
		ideas:    ideas,
		hyps:     hyps,
	}
}

// POST /api/ideas
func (h *IdeaHandler) Submit(c *gin.Context) {
	var in services.SubmitIdeaInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, 400, "invalid_body", err)
		return
	}
	in.UserID = ctxutil.ActorID(c.Request.Context())

	idea, err := h.workflow.SubmitIdea(c.Request.Context(), in)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondCreated(c, idea)
}

// GET /api/ideas/:id
func (h *IdeaHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_idea_id", err)
		return
	}
	idea, err := h.ideas.GetByID(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, idea)
}

// GET /api/ideas/:id/hypotheses
func (h *IdeaHandler) Hypotheses(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_idea_id", err)
		return
	}
	hyps, err := h.hyps.GetByIdeaID(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, hyps)
}

// POST /api/ideas/:id/score
func (h *IdeaHandler) Score(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_idea_id", err)
		return
	}
	var in services.ScoreIdeaInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, 400, "invalid_body", err)
		return
	}
	in.IdeaID = id
	in.ActorID = ctxutil.ActorID(c.Request.Context())

	idea, err := h.workflow.ScoreIdea(c.Request.Context(), in)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, idea)
}

// POST /api/ideas/:id/select
func (h *IdeaHandler) Select(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_idea_id", err)
		return
	}
	idea, err := h.workflow.SelectForHypothesis(c.Request.Context(), id, ctxutil.ActorID(c.Request.Context()))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, idea)
}

// POST /api/ideas/:id/hypotheses
func (h *IdeaHandler) CreateHypothesis(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_idea_id", err)
		return
	}
	var in services.CreateHypothesisInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, 400, "invalid_body", err)
		return
	}
	in.IdeaID = id
	in.ActorID = ctxutil.ActorID(c.Request.Context())

	hyp, err := h.workflow.CreateHypothesisFromIdea(c.Request.Context(), in)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondCreated(c, hyp)
}

// DELETE /api/ideas/:id
func (h *IdeaHandler) SoftDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_idea_id", err)
		return
	}
	ctx := c.Request.Context()
	idea, err := h.ideas.SoftDelete(dbctx.Context{Ctx: ctx}, id, ctxutil.ActorID(ctx))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, idea)
}

// POST /api/ideas/:id/restore
func (h *IdeaHandler) Restore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_idea_id", err)
		return
	}
	ctx := c.Request.Context()
	idea, err := h.ideas.Restore(dbctx.Context{Ctx: ctx}, id, ctxutil.ActorID(ctx))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, idea)
}
