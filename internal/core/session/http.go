// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/respond"

	requestutil "github.com/uabcampos/fac-virtual-posters/internal/platform/request"
)

// # Handler Implementation

// Handler implements the HTTP layer for sessions.
type Handler struct {
	service *Service
}

// NewHandler constructs a session [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public session endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{slug}", handler.getBySlug)

	return router
}

// AdminRoutes returns the session management endpoints. The server mounts
// these under /admin/sessions with role enforcement already applied.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Patch("/{id}", handler.setStatus)

	return router
}

// # Public Endpoints

/*
GET /sessions/{slug}.

Description: Resolves the public session page: the session plus its published
posters. Draft sessions 404.

Response:
  - 200: Detail
  - 404: ErrNotFound: Missing or draft session
*/
func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	s := requestutil.Param(request, "slug")

	detail, err := handler.service.GetBySlug(request.Context(), s)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}

// # Administration Endpoints

/*
GET /admin/sessions.

Response:
  - 200: []Session: Every session, upcoming first
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	sessions, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessions)
}

/*
POST /admin/sessions.

Description: Opens a new session in the DRAFT state.

Request (Body):
  - CreateInput: JSON object

Response:
  - 201: Session
  - 400: Validation errors
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	sess, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, sess)
}

// setStatusRequest defines the inbound JSON schema for lifecycle moves.
type setStatusRequest struct {
	Status string `json:"status"`
}

/*
PATCH /admin/sessions/{id}.

Request (Body):
  - status: string (DRAFT, LIVE, ARCHIVED)

Response:
  - 200: Session: After the transition
  - 400: INVALID_STATUS: Unknown target status
  - 404: ErrNotFound: Session does not exist
*/
func (handler *Handler) setStatus(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input setStatusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	sess, err := handler.service.SetStatus(request.Context(), id, input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sess)
}
