package middleware

import (
	"net/http"
	"strings"

	"github.com/bloghq/blog-api/internal/api/shared"
	"github.com/bloghq/blog-api/internal/domain"
	"github.com/bloghq/blog-api/internal/platform/logger"
	"github.com/bloghq/blog-api/internal/service/auth"
	"github.com/bloghq/blog-api/internal/store"
)

// bearerPrefix is the required, case-sensitive Authorization scheme prefix.
const bearerPrefix = "Bearer "

// Authenticator is the per-request authentication pipeline. It extracts a
// bearer token, validates it, resolves the subject's full identity from the
// user store, and attaches it to the request context.
//
// The pipeline never short-circuits: a missing, malformed, or invalid token
// leaves the request anonymous and processing continues. Rejection, if any,
// is the authorization gate's job. Each request is independently verified;
// nothing is cached across requests.
type Authenticator struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthenticator creates a new Authenticator with the given dependencies.
func NewAuthenticator(jwtService auth.JWTService, userStore store.UserStore) *Authenticator {
	return &Authenticator{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate establishes the request identity when a valid bearer token is
// presented, and continues the chain unconditionally.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			// No token is not an error: the request proceeds anonymously.
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		log := logger.FromContext(ctx)

		claims, err := a.jwtService.ValidateToken(ctx, token)
		if err != nil {
			// Invalid tokens fail silently at this layer; they simply do
			// not establish an identity.
			log.Debug("bearer token rejected", "error", err.Error())
			next.ServeHTTP(w, r)
			return
		}

		user, err := a.userStore.GetByUsername(ctx, claims.Subject)
		if err != nil {
			log.Debug("token subject could not be resolved",
				"subject", claims.Subject,
				"error", err.Error())
			next.ServeHTTP(w, r)
			return
		}

		identity := &shared.Identity{
			UserID:   user.ID,
			Username: user.Username,
			Roles:    user.Roles,
		}

		next.ServeHTTP(w, r.WithContext(shared.WithIdentity(ctx, identity)))
	})
}

// extractBearerToken returns the token portion of the Authorization header,
// or "" when the header is absent or does not carry the exact "Bearer "
// prefix (case-sensitive).
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return header[len(bearerPrefix):]
}

// RequireRole is the declarative per-route authorization gate. It rejects
// requests whose identity is absent (401) or lacks the required role (403)
// before the handler body runs. Routes without a gate are public.
func RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := shared.IdentityFromContext(r.Context())
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized,
					"Authentication required")
				return
			}

			if !identity.HasRole(role) {
				shared.RespondWithError(w, r, http.StatusForbidden,
					"Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
