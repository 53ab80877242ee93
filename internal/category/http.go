// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package category

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ricardo-cavalheiro/web-api/internal/platform/middleware"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/respond"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/validate"
)

// adminRole is the role slug allowed to mutate categories.
const adminRole = "admin"

// Handler implements the category HTTP endpoints.
type Handler struct {
	categoryService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{categoryService: service}
}

// Routes returns a [chi.Router] configured with category routes.
//
// # Endpoints
//   - GET    /      : Lists all categories (cached, public).
//   - GET    /{id}  : Fetches one category (public).
//   - POST   /      : Creates a category (admin only).
//   - PUT    /{id}  : Updates a category (admin only).
//   - DELETE /{id}  : Deletes a category (admin only).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.getByID)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(adminRole))
		admin.Post("/", handler.create)
		admin.Put("/{id}", handler.update)
		admin.Delete("/{id}", handler.delete)
	})

	return router
}

// list handles GET /v1/categories.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.categoryService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, categories)
}

// getByID handles GET /v1/categories/{id}.
func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.categoryService.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, category)
}

// editorRequest represents the JSON payload for create and update.
type editorRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// validate runs the shared boundary rules for create and update payloads.
func (input editorRequest) validate() error {
	validator := &validate.Validator{}
	return validator.
		Required("name", input.Name).
		MaxLen("name", input.Name, 40).
		Required("slug", input.Slug).
		Slug("slug", input.Slug).
		Err()
}

// create handles POST /v1/categories (admin only).
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input editorRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.categoryService.Create(request.Context(), EditorInput{
		Name: input.Name,
		Slug: input.Slug,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, category)
}

// update handles PUT /v1/categories/{id} (admin only).
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	var input editorRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.categoryService.Update(request.Context(), id, EditorInput{
		Name: input.Name,
		Slug: input.Slug,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, category)
}

// delete handles DELETE /v1/categories/{id} (admin only).
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	validator := &validate.Validator{}
	if err := validator.UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.categoryService.Delete(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, category)
}
