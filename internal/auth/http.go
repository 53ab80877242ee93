// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ricardo-cavalheiro/web-api/internal/platform/ctxutil"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/middleware"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/respond"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/validate"
)

// Handler implements the account HTTP endpoints.
//
// # Scope
//
// This handler manages the user lifecycle entry points (registration,
// login, profile image upload). It contains NO business logic or database
// queries.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with account routes.
//
// # Endpoints
//   - POST /              : Creates a new account with a generated password.
//   - POST /login         : Authenticates and returns a session token.
//   - POST /upload-image  : Replaces the caller's profile image (authenticated).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.register)
	router.Post("/login", handler.login)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/upload-image", handler.uploadImage)
	})

	return router
}

// registerRequest represents the JSON payload expected for account creation.
// There is no password field: the credential is generated server-side.
type registerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// register handles POST /v1/accounts requests.
//
// # Returns
//   - HTTP 201 Created with {email, password} — the one and only time the
//     generated plaintext is shown to the caller.
//   - HTTP 400 Bad Request if validation rules fail.
//   - HTTP 409 Conflict if the email is already registered.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input registerRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	validator := &validate.Validator{}
	err := validator.
		Required("name", input.Name).
		MaxLen("name", input.Name, 80).
		Required("email", input.Email).
		Email("email", input.Email).
		Err()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	registration, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.Created(writer, map[string]string{
		"user":     registration.User.Email,
		"password": registration.Password,
	})
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login handles POST /v1/accounts/login requests.
//
// # Returns
//   - HTTP 200 OK with the session token.
//   - HTTP 401 Unauthorized for bad credentials — the same message whether
//     the email is unknown or the password is wrong.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input loginRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	validator := &validate.Validator{}
	err := validator.
		Required("email", input.Email).
		Email("email", input.Email).
		Required("password", input.Password).
		Err()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.OK(writer, session.Token)
}

// uploadImageRequest carries a base64 data-URL image payload.
type uploadImageRequest struct {
	Base64Image string `json:"base64_image"`
}

// uploadImage handles POST /v1/accounts/upload-image requests.
//
// The owner is identified by the verified token's name claim; there is no
// way to address another account's image.
func (handler *Handler) uploadImage(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input uploadImageRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Base64Image == "" {
		respond.Error(writer, request, validate.RequiredError("base64_image", "is required"))
		return
	}

	// ── 2. Caller Identity (from the verified claim set) ──────────────────

	claims := ctxutil.GetAuthUser(request.Context())

	// ── 3. Application Execution ──────────────────────────────────────────

	imageURL, err := handler.authService.UpdateImage(request.Context(), claims.Name, input.Base64Image)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.OK(writer, map[string]string{"image": imageURL})
}
