package api

import (
	"log/slog"
	"net/http"

	"github.com/bloghq/blog-api/internal/api/shared"
	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/platform/logger"
	"github.com/bloghq/blog-api/internal/service/auth"
	"github.com/bloghq/blog-api/internal/store"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		logger:           log.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /api/v1/auth/register.
// New accounts always start with the USER role; ADMIN is only ever granted
// out of band.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, "Validation failed", shared.ValidationDetails(err))
		return
	}

	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	user, err := domain.NewUser(req.Username, req.Email, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	hashed, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"An internal error occurred", err)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(ctx, user); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	token, err := h.jwtService.GenerateToken(ctx, user.Username)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"An internal error occurred", err)
		return
	}

	log.Info("user registered", slog.String("username", user.Username))

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		Username:    user.Username,
		AccessToken: token,
		TokenType:   "Bearer",
	})
}

// Login handles POST /api/v1/auth/login. An unknown username and a wrong
// password produce the same response so the two cases cannot be told apart.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, "Validation failed", shared.ValidationDetails(err))
		return
	}

	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	user, err := h.userStore.GetByUsername(ctx, req.Username)
	if err != nil {
		log.Debug("login failed", slog.String("username", req.Username))
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		log.Debug("login failed", slog.String("username", req.Username))
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(ctx, user.Username)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"An internal error occurred", err)
		return
	}

	log.Info("user logged in", slog.String("username", user.Username))

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Username:    user.Username,
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
