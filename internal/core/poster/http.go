// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

/*
Package poster provides the HTTP interface for the gallery and submission flow.

# Routing Strategy

  - Public: Gallery browsing, the submission form endpoint, detail pages, and
    anonymous view tracking.
  - Admin: The moderation dashboard and state transitions, mounted separately
    under /admin by the server with role enforcement applied there.
*/
package poster

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/uabcampos/fac-virtual-posters/internal/platform/request"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/respond"
	"github.com/uabcampos/fac-virtual-posters/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for poster discovery and moderation.
type Handler struct {
	service *Service
}

// NewHandler constructs a poster [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public poster endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPosters)
	router.Post("/submit", handler.submit)
	router.Get("/by-slug/{slug}", handler.getBySlug)
	router.Post("/{id}/view", handler.recordView)

	return router
}

// AdminRoutes returns the moderation endpoints. The server mounts these under
// /admin with role enforcement already applied.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.adminList)
	router.Patch("/{id}", handler.setStatus)
	router.Delete("/{id}", handler.deletePoster)

	return router
}

// # Public Endpoints

/*
GET /posters.

Description: Returns published posters for the gallery, filtered and sorted.

Request:
  - sessionId: string (Restrict to one session)
  - q: string (Title substring or exact scholar/institution/tag match)
  - tag: string (Exact tag facet)
  - sort: string (recently_active, most_commented, az)

Response:
  - 200: []Poster: Published posters with comment counts
*/
func (handler *Handler) listPosters(writer http.ResponseWriter, request *http.Request) {
	// Query filter assembly
	queryParams := request.URL.Query()
	filter := Filter{
		SessionID: queryParams.Get("sessionId"),
		Query:     queryParams.Get("q"),
		Tag:       queryParams.Get("tag"),
		Sort:      Sort(queryParams.Get("sort")),
	}

	// Domain Logic Execution
	posters, err := handler.service.ListPublished(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, posters)
}

/*
POST /posters/submit.

Description: Accepts a public submission into the moderation queue. The
response echoes the persisted poster, including its resolved slug, so the
confirmation page can link to the eventual gallery URL.

Response:
  - 201: Poster: The pending submission
  - 400: Validation errors with per-field details
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input SubmitInput

	// Strict JSON decoding
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	p, err := handler.service.Submit(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.Created(writer, p)
}

/*
GET /posters/by-slug/{slug}.

Description: Resolves a poster detail page. Unpublished posters 404.

Response:
  - 200: Detail: Poster with prev/next navigation slugs
  - 404: ErrNotFound: Missing or unpublished poster
*/
func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	// Slug extraction from URL
	s := requestutil.Param(request, "slug")

	// Domain Logic Execution
	detail, err := handler.service.GetPublishedBySlug(request.Context(), s)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, detail)
}

/*
POST /posters/{id}/view.

Description: Records one anonymous view. Fire-and-forget from the client's
perspective; the body is empty.

Response:
  - 200: {success: true}
  - 404: ErrNotFound: Poster does not exist
*/
func (handler *Handler) recordView(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	// Domain Logic Execution
	if err := handler.service.RecordView(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.Success(writer)
}

// # Moderation Endpoints

/*
GET /admin/posters.

Description: Dashboard listing of every poster in any moderation state,
newest first, with comment and view counts.

Request:
  - page: int
  - limit: int

Response:
  - 200: []Poster: Paginated dashboard rows
*/
func (handler *Handler) adminList(writer http.ResponseWriter, request *http.Request) {
	// Pagination extraction using pkg/pagination
	paginationParams := pagination.FromRequest(request)

	// Domain Logic Execution
	posters, total, err := handler.service.ListAll(request.Context(), paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.Paginated(writer, posters, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

// setStatusRequest defines the inbound JSON schema for moderation transitions.
type setStatusRequest struct {
	Status string `json:"status"`
}

/*
PATCH /admin/posters/{id}.

Description: Applies a moderation transition. Any state may move to any other
state; publishing stamps the publish timestamp, unpublishing leaves it alone.

Request (Body):
  - status: string (PENDING, PUBLISHED, REJECTED)

Response:
  - 200: Poster: The poster after the transition
  - 400: INVALID_STATUS: Unknown target status
  - 404: ErrNotFound: Poster does not exist
*/
func (handler *Handler) setStatus(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input setStatusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	p, err := handler.service.SetStatus(request.Context(), id, input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, p)
}

/*
DELETE /admin/posters/{id}.

Description: Permanently removes a poster; its comments and view records
cascade away with it.

Response:
  - 204: Deleted
  - 404: ErrNotFound: Poster does not exist
*/
func (handler *Handler) deletePoster(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	// Domain Logic Execution
	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.NoContent(writer)
}
