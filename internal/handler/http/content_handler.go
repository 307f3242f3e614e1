package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ahlgren-media/reactions/internal/handler/http/dto"
	"github.com/ahlgren-media/reactions/internal/usecase"
	usecasecontract "github.com/ahlgren-media/reactions/internal/usecase/contract"
)

// ContentHandler serves the content registry plus the augmented listing
// collaborators embed reaction fields from.
type ContentHandler struct {
	contents  usecasecontract.IContentUseCase
	reactions usecasecontract.IReactionUseCase
	resolver  *usecase.IdentityResolver
	logger    usecasecontract.IAppLogger
}

// NewContentHandler creates and returns a new ContentHandler instance.
func NewContentHandler(contents usecasecontract.IContentUseCase, reactions usecasecontract.IReactionUseCase, resolver *usecase.IdentityResolver, logger usecasecontract.IAppLogger) *ContentHandler {
	return &ContentHandler{
		contents:  contents,
		reactions: reactions,
		resolver:  resolver,
		logger:    logger,
	}
}

// CreateContent registers a content item. Authentication is enforced by the
// router's RequireAuth middleware.
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req dto.CreateContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	item, err := h.contents.CreateContent(c.Request.Context(), req.Title, req.Type, req.URL)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			ErrorHandler(c, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Errorf("content creation failed: %v", err)
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, item)
}

// ListContents returns a published content listing with each item augmented
// by reaction_counts and user_reaction.
func (h *ContentHandler) ListContents(c *gin.Context) {
	contentType := c.Query("content_type")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.contents.ListPublished(c.Request.Context(), contentType, limit, offset)
	if err != nil {
		h.logger.Errorf("content listing failed: %v", err)
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}

	// Augmentation is per-actor; an unresolvable actor lists anonymously.
	actorID, _ := h.resolver.Resolve(actorFromContext(c), c.Query("visitorId"))
	augmented, err := h.reactions.AugmentContentList(c.Request.Context(), items, actorID)
	if err != nil {
		h.logger.Errorf("content augmentation failed: %v", err)
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"contents": augmented})
}
