// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/respond"

	requestutil "github.com/uabcampos/fac-virtual-posters/internal/platform/request"
)

// # Handler Implementation

// Handler implements the HTTP layer for moderator authentication.
type Handler struct {
	service *Service
}

// NewHandler constructs an auth [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the authentication endpoints, mounted under /auth.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)

	return router
}

/*
POST /auth/login.

Request (Body):
  - username: string
  - password: string

Response:
  - 200: LoginSession: Access + refresh token pair
  - 401: ErrUnauthorized: Bad credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

// refreshRequest carries the opaque refresh token.
type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

/*
POST /auth/refresh.

Description: Rotates the refresh token and issues a fresh access token. The
presented token is revoked whether or not rotation succeeds downstream.

Response:
  - 200: LoginSession: Rotated token pair
  - 401: ErrUnauthorized: Expired, rotated, or unknown token
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Refresh(request.Context(), input.RefreshToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

/*
POST /auth/logout.

Description: Revokes the refresh session. Always succeeds for well-formed
requests; logging out twice is not an error.

Response:
  - 200: {success: true}
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Logout(request.Context(), input.RefreshToken); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer)
}
