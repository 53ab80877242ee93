// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ricardo-cavalheiro/web-api/internal/platform/respond"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/validate"
	"github.com/ricardo-cavalheiro/web-api/pkg/pagination"
)

// Handler implements the post HTTP endpoints.
type Handler struct {
	postService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{postService: service}
}

// Routes returns a [chi.Router] configured with post routes.
//
// # Endpoints
//   - GET /      : Paginated listing (public).
//   - GET /{id}  : Full post with author and category (public).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.getByID)

	return router
}

// list handles GET /v1/posts.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	items, meta, err := handler.postService.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, items, meta)
}

// getByID handles GET /v1/posts/{id}.
func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.postService.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
