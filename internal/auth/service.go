// Copyright (c) 2026 The Blog API Authors. All rights reserved.

package auth

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/ricardo-cavalheiro/web-api/internal/mailer"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/apperr"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/constants"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/sec"
	"github.com/ricardo-cavalheiro/web-api/pkg/slug"
	"github.com/ricardo-cavalheiro/web-api/pkg/uuidv7"
)

// TokenProvider defines the contract for minting session tokens.
//
// The concrete implementation is [sec.TokenService]; the interface exists so
// service tests can stub issuance without a signing key.
type TokenProvider interface {
	// Issue returns a signed session token embedding the identity's claim
	// set (name claim plus one role claim per slug).
	Issue(email string, roleSlugs []string) (string, error)
}

// ImageStore persists uploaded profile images and returns their public URL.
type ImageStore interface {
	Save(fileName string, data []byte) (string, error)
}

// dataURLPrefix strips the "data:image/...;base64," header of an uploaded image.
var dataURLPrefix = regexp.MustCompile(`^data:image/[a-z]+;base64,`)

// Service implements the account registrar, login, and profile-image use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to credential
// generation, hashing, registration, or login logic must be reviewed by the
// security team.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
	mail           mailer.Mailer
	images         ImageStore
	logger         *slog.Logger
}

// NewService constructs a new [Service] with its collaborators.
func NewService(
	userRepo UserRepository,
	tokenProv TokenProvider,
	mail mailer.Mailer,
	images ImageStore,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
		mail:           mail,
		images:         images,
		logger:         logger,
	}
}

// RegisterInput holds the data required to enroll a new account.
// The password is never supplied by the caller — it is generated here.
type RegisterInput struct {
	Name  string
	Email string
}

// Registration is the one-time result of a successful enrollment.
//
// Password is the generated plaintext credential. It exists only in this
// value and in the delivered mail; it is never logged or persisted.
type Registration struct {
	User     *User
	Password string
}

// Register creates a new account with a generated credential.
//
// # Flow
//  1. Duplicate pre-check on email (client-friendly fast path).
//  2. Generate a random policy-compliant password via crypto/rand.
//  3. Hash it — only the hash ever reaches storage.
//  4. Deliver the plaintext out-of-band. Delivery failure ABORTS the
//     registration: an account whose password nobody received is worse
//     than no account.
//  5. Persist. The unique index on email still resolves the race between
//     concurrent registrations; a violation surfaces as [apperr.Conflict].
func (service *Service) Register(ctx context.Context, input RegisterInput) (*Registration, error) {
	// ── 1. Uniqueness Pre-Check ───────────────────────────────────────────

	_, err := service.userRepository.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("auth_service_register_lookup_failed: %w", err)
	}

	// ── 2. Credential Generation ──────────────────────────────────────────

	password, err := sec.GeneratePassword(constants.GeneratedPasswordLength, true, false)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_generate_failed: %w", err))
	}

	passwordHash, err := sec.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}

	// ── 3. Entity Construction ────────────────────────────────────────────

	user := &User{
		ID:           uuidv7.New(), // Time-sortable ID to prevent PG index fragmentation.
		Name:         input.Name,
		Email:        input.Email,
		Slug:         slug.FromEmail(input.Email),
		PasswordHash: passwordHash,
	}

	// ── 4. Credential Delivery (gates persistence) ────────────────────────

	body := fmt.Sprintf("Welcome to the blog, %s!<br>Your password is <strong>%s</strong>", user.Name, password)
	if err := service.mail.Send(user.Name, user.Email, "Welcome to the blog!", body); err != nil {
		// Surfaced as an opaque internal failure: the client cannot correct
		// a broken delivery channel. Nothing has been persisted.
		return nil, apperr.Internal(fmt.Errorf("auth_service_delivery_failed: %w", err))
	}

	// ── 5. Persistence ────────────────────────────────────────────────────

	if err := service.userRepository.Create(ctx, user); err != nil {
		if apperr.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	service.logger.Info("account_registered", slog.String("user_id", user.ID))

	return &Registration{User: user, Password: password}, nil
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established stateless session.
type LoginSession struct {
	Token string
	User  *User
}

// Login validates user credentials and issues a session token.
//
// # Enumeration Resistance
//
// "No such user" and "wrong password" produce the identical
// [apperr.Unauthorized] message, so a caller cannot probe which emails
// have accounts.
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginSession, error) {
	// ── 1. Fetch User Profile (roles eagerly loaded) ──────────────────────

	user, err := service.userRepository.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	// ── 2. Security Verification ──────────────────────────────────────────

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokenProvider.Issue(user.Email, user.RoleSlugs())
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_token_issue_failed: %w", err))
	}

	return &LoginSession{Token: token, User: user}, nil
}

// UpdateImage decodes an uploaded base64 image, stores it, and points the
// authenticated owner's profile at the new URL.
//
// # Ownership
//
// The email comes from the verified token's name claim, so a caller can only
// ever change their own image.
func (service *Service) UpdateImage(ctx context.Context, email, base64Image string) (string, error) {
	// ── 1. Decode Payload ─────────────────────────────────────────────────

	raw := dataURLPrefix.ReplaceAllString(base64Image, "")
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", apperr.ValidationError("Image must be valid base64 data")
	}

	// ── 2. Resolve Owner ──────────────────────────────────────────────────

	user, err := service.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("auth_service_image_lookup_failed: %w", err)
	}

	// ── 3. Store & Persist Reference ──────────────────────────────────────

	fileName := uuidv7.New() + ".jpg"
	imageURL, err := service.images.Save(fileName, data)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("auth_service_image_store_failed: %w", err))
	}

	if err := service.userRepository.UpdateImage(ctx, user.ID, imageURL); err != nil {
		return "", fmt.Errorf("auth_service_image_update_failed: %w", err)
	}

	service.logger.Info("user_image_updated", slog.String("user_id", user.ID))

	return imageURL, nil
}
