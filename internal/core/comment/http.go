// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/respond"
	"github.com/uabcampos/fac-virtual-posters/pkg/convert"

	requestutil "github.com/uabcampos/fac-virtual-posters/internal/platform/request"
)

// # Handler Implementation

// Handler implements the HTTP layer for the conversation panel.
type Handler struct {
	service *Service
}

// NewHandler constructs a comment [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PosterRoutes returns the conversation endpoints. The server mounts these
// under /posters/{posterID}/comments.
func (handler *Handler) PosterRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listThreads)
	router.Post("/", handler.createComment)

	return router
}

// Routes returns the endpoints addressed by comment id, mounted under
// /comments.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/{id}/like", handler.likeComment)

	return router
}

// AdminRoutes returns the moderation endpoints. The server mounts these under
// /admin/comments with role enforcement already applied.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.recentComments)
	router.Patch("/{id}", handler.setHidden)
	router.Delete("/{id}", handler.deleteComment)

	return router
}

// # Conversation Endpoints

/*
GET /posters/{posterID}/comments.

Description: Returns the poster's conversation as assembled threads: visible
top-level comments newest first, each with its visible replies oldest first
and scholar attribution resolved.

Response:
  - 200: []Thread
  - 404: ErrNotFound: Poster does not exist
*/
func (handler *Handler) listThreads(writer http.ResponseWriter, request *http.Request) {
	posterID := requestutil.ID(request, "posterID")

	// Domain Logic Execution
	threads, err := handler.service.List(request.Context(), posterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, threads)
}

/*
POST /posters/{posterID}/comments.

Description: Adds a comment or a single-level reply to the conversation.

Request (Body):
  - CreateInput: JSON object

Response:
  - 201: Comment: The persisted comment
  - 400: Validation errors (content bounds, type, thread nesting)
  - 404: ErrNotFound: Poster or parent comment does not exist
*/
func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	posterID := requestutil.ID(request, "posterID")

	var input CreateInput

	// Strict JSON decoding
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	c, err := handler.service.Create(request.Context(), posterID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.Created(writer, c)
}

/*
POST /comments/{id}/like.

Description: Adds one anonymous like. No deduplication; mashing the button
counts every press.

Response:
  - 200: Comment: The comment with its new like count
  - 404: ErrNotFound: Comment does not exist
*/
func (handler *Handler) likeComment(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	// Domain Logic Execution
	c, err := handler.service.Like(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, c)
}

// # Moderation Endpoints

/*
GET /admin/comments.

Description: Returns the newest comments across every poster with poster
titles attached, for the dashboard's recent-activity feed.

Request:
  - limit: int (Defaults to 20, capped at 100)

Response:
  - 200: []Comment
*/
func (handler *Handler) recentComments(writer http.ResponseWriter, request *http.Request) {
	// Limit extraction with default fallback
	limit := convert.ToIntD(request.URL.Query().Get("limit"), defaultRecentLimit)

	// Domain Logic Execution
	comments, err := handler.service.Recent(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, comments)
}

// setHiddenRequest defines the inbound JSON schema for visibility toggles.
type setHiddenRequest struct {
	IsHidden bool `json:"is_hidden"`
}

/*
PATCH /admin/comments/{id}.

Description: Hides or restores a comment. Hiding a top-level comment removes
its whole thread from the public conversation.

Request (Body):
  - is_hidden: bool

Response:
  - 200: Comment: The updated comment
  - 404: ErrNotFound: Comment does not exist
*/
func (handler *Handler) setHidden(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input setHiddenRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	c, err := handler.service.SetHidden(request.Context(), id, input.IsHidden)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, c)
}

/*
DELETE /admin/comments/{id}.

Description: Permanently removes a comment and its direct replies.

Response:
  - 204: Deleted
  - 404: ErrNotFound: Comment does not exist
*/
func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	// Domain Logic Execution
	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.NoContent(writer)
}
