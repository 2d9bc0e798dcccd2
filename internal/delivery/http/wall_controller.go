package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "guestwall/internal/delivery/http/helpers"
	"guestwall/internal/delivery/http/middleware"
	"guestwall/internal/domain"
)

// SubmitPostRequest is the request body for POST /wall/posts
type SubmitPostRequest struct {
	AuthorName string `json:"author_name"`
	Body       string `json:"body"`
}

// Validate implements Validator.
func (s SubmitPostRequest) Validate() []string {
	if strings.TrimSpace(s.Body) == "" {
		return []string{"body is required"}
	}
	return nil
}

// SubmitPhotoRequest is the request body for POST /wall/photos
type SubmitPhotoRequest struct {
	AuthorName string `json:"author_name"`
	Caption    string `json:"caption"`
	MediaURL   string `json:"media_url"`
}

// Validate implements Validator.
func (s SubmitPhotoRequest) Validate() []string {
	if strings.TrimSpace(s.MediaURL) == "" {
		return []string{"media_url is required"}
	}
	return nil
}

// FeedResponse is the response body for GET /wall/feed
type FeedResponse struct {
	Entries    []*domain.FeedEntry `json:"entries"`
	Pagination h.PaginationMeta    `json:"pagination"`
}

type WallController struct {
	Logger  *slog.Logger
	Service domain.ModerationService
}

func NewWallController(logger *slog.Logger, svc domain.ModerationService) *WallController {
	return &WallController{Logger: logger, Service: svc}
}

// SubmitPost godoc
// @Summary Submit a guest wall post
// @Description Creates a post. Posts from invitation-code sessions are approved immediately; everything else awaits review.
// @Tags wall
// @Accept json
// @Produce json
// @Param body body SubmitPostRequest true "Post content"
// @Success 201 {object} helpers.APIResponse "data contains the created item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wall/posts [post]
func (c *WallController) SubmitPost(w http.ResponseWriter, r *http.Request) {
	var req SubmitPostRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	c.submit(w, r, domain.SubmitInput{
		Kind:       domain.ContentKindPost,
		AuthorName: req.AuthorName,
		Body:       req.Body,
	})
}

// SubmitPhoto godoc
// @Summary Submit a guest wall photo
// @Description Creates a photo item referencing already-uploaded media. Same trust rules as posts.
// @Tags wall
// @Accept json
// @Produce json
// @Param body body SubmitPhotoRequest true "Photo reference"
// @Success 201 {object} helpers.APIResponse "data contains the created item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wall/photos [post]
func (c *WallController) SubmitPhoto(w http.ResponseWriter, r *http.Request) {
	var req SubmitPhotoRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	c.submit(w, r, domain.SubmitInput{
		Kind:       domain.ContentKindPhoto,
		AuthorName: req.AuthorName,
		Body:       req.Caption,
		MediaURL:   req.MediaURL,
	})
}

func (c *WallController) submit(w http.ResponseWriter, r *http.Request, in domain.SubmitInput) {
	caller := middleware.CallerFromContext(r.Context())
	item, err := c.Service.Submit(r.Context(), caller, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "content submission failed", "kind", in.Kind, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "submission failed")
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, item)
}

// Feed godoc
// @Summary List the public activity feed
// @Tags wall
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} helpers.APIResponse "data contains entries and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wall/feed [get]
func (c *WallController) Feed(w http.ResponseWriter, r *http.Request) {
	p := h.ParsePagination(r)
	entries, total, err := c.Service.PublicFeed(r.Context(), p)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "feed listing failed", "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "could not load feed")
		return
	}
	if entries == nil {
		entries = []*domain.FeedEntry{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, FeedResponse{
		Entries:    entries,
		Pagination: h.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// Pinned godoc
// @Summary List pinned highlights
// @Tags wall
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the ordered pinned items"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wall/pinned [get]
func (c *WallController) Pinned(w http.ResponseWriter, r *http.Request) {
	pins, err := c.Service.PinnedHighlights(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "pinned listing failed", "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "could not load highlights")
		return
	}
	if pins == nil {
		pins = []*domain.PinnedItem{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, pins)
}
