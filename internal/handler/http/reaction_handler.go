package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ahlgren-media/reactions/internal/domain/contract"
	"github.com/ahlgren-media/reactions/internal/domain/entity"
	"github.com/ahlgren-media/reactions/internal/handler/http/dto"
	"github.com/ahlgren-media/reactions/internal/usecase"
	usecasecontract "github.com/ahlgren-media/reactions/internal/usecase/contract"
)

// ReactionHandler serves the write endpoint, the read/embed interface and the
// bulk stats endpoint.
type ReactionHandler struct {
	reactions usecasecontract.IReactionUseCase
	ranking   usecasecontract.IRankingUseCase
	resolver  *usecase.IdentityResolver
	logger    usecasecontract.IAppLogger
}

// NewReactionHandler creates and returns a new ReactionHandler instance.
func NewReactionHandler(reactions usecasecontract.IReactionUseCase, ranking usecasecontract.IRankingUseCase, resolver *usecase.IdentityResolver, logger usecasecontract.IAppLogger) *ReactionHandler {
	return &ReactionHandler{
		reactions: reactions,
		ranking:   ranking,
		resolver:  resolver,
		logger:    logger,
	}
}

// SaveReaction is the single write entry point. A request missing id or type
// is answered with an empty 200 body and no state change, matching the
// legacy permissive contract; every other failure is a structured error.
func (h *ReactionHandler) SaveReaction(c *gin.Context) {
	var req dto.SaveReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SuccessHandler(c, http.StatusOK, gin.H{})
		return
	}
	if req.ID == "" || req.Type == "" {
		SuccessHandler(c, http.StatusOK, gin.H{})
		return
	}

	actorID, err := h.resolver.Resolve(actorFromContext(c), req.VisitorID)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "login required to react")
		return
	}

	counts, err := h.reactions.Toggle(c.Request.Context(), req.ID, actorID, entity.ReactionType(req.Type))
	if err != nil {
		h.respondToggleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.SaveReactionResponse{Items: counts})
}

// GetCounts is the read/embed interface for one content item. Unknown ids
// yield zero counts; user_reaction is the actor's type or false.
func (h *ReactionHandler) GetCounts(c *gin.Context) {
	contentID := c.Param("contentID")

	counts, err := h.reactions.Counts(c.Request.Context(), contentID)
	if err != nil {
		h.respondReadError(c, err)
		return
	}

	var userReaction interface{} = false
	// Read-side identity is best effort: an unresolvable actor just means no
	// user_reaction, never an error.
	if actorID, err := h.resolver.Resolve(actorFromContext(c), c.Query("visitorId")); err == nil {
		if t, ok, err := h.reactions.UserReaction(c.Request.Context(), contentID, actorID); err == nil && ok {
			userReaction = string(t)
		}
	}

	SuccessHandler(c, http.StatusOK, dto.CountsResponse{
		Items:        counts,
		Total:        counts.Total(),
		UserReaction: userReaction,
	})
}

// GetStats is the bulk stats endpoint: an explicit content_ids list returns
// per-id stats, otherwise (content_type, limit) routes to the ranking engine.
func (h *ReactionHandler) GetStats(c *gin.Context) {
	if rawIDs := c.Query("content_ids"); rawIDs != "" {
		ids := splitIDList(rawIDs)
		stats, err := h.reactions.BulkStats(c.Request.Context(), ids)
		if err != nil {
			h.respondReadError(c, err)
			return
		}
		resp := make(map[string]dto.StatsEntry, len(stats))
		for id, s := range stats {
			resp[id] = dto.ToStatsEntry(s)
		}
		SuccessHandler(c, http.StatusOK, resp)
		return
	}

	contentType := c.DefaultQuery("content_type", "post")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	ranked, err := h.ranking.TopByReactions(c.Request.Context(), contentType, limit)
	if err != nil {
		h.respondReadError(c, err)
		return
	}
	resp := make([]dto.RankedEntry, 0, len(ranked))
	for _, r := range ranked {
		resp = append(resp, dto.ToRankedEntry(r))
	}
	SuccessHandler(c, http.StatusOK, resp)
}

func (h *ReactionHandler) respondToggleError(c *gin.Context, err error) {
	var invalidType *usecase.InvalidTypeError
	switch {
	case errors.As(err, &invalidType):
		ErrorHandler(c, http.StatusBadRequest, invalidType.Error())
	case errors.Is(err, usecase.ErrUnauthenticated):
		ErrorHandler(c, http.StatusUnauthorized, "login required to react")
	case errors.Is(err, usecase.ErrNotAllowed):
		ErrorHandler(c, http.StatusForbidden, "reactions not allowed for this content")
	case errors.Is(err, usecase.ErrInvalidInput):
		SuccessHandler(c, http.StatusOK, gin.H{})
	default:
		h.respondReadError(c, err)
	}
}

func (h *ReactionHandler) respondReadError(c *gin.Context, err error) {
	if errors.Is(err, contract.ErrStoreUnavailable) {
		h.logger.Errorf("reaction store unavailable: %v", err)
		ErrorHandler(c, http.StatusServiceUnavailable, "reaction store unavailable")
		return
	}
	h.logger.Errorf("reaction request failed: %v", err)
	ErrorHandler(c, http.StatusInternalServerError, err.Error())
}

// splitIDList parses a comma-separated id list, dropping empty segments.
func splitIDList(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
