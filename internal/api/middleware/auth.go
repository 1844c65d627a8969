package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/Brian13b/QuicoBasquetProject/internal/api/handlers"
	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

const (
	// HeaderUserID set by the gateway after authenticating the caller
	HeaderUserID = "X-User-ID"
	// HeaderUserRole "admin" for court staff, anything else is a client
	HeaderUserRole = "X-User-Role"

	msgMissingUserID = "falta el encabezado X-User-ID"
	msgInvalidUserID = "X-User-ID inválido"
	msgAdminOnly     = "solo un administrador puede realizar esta operación"
)

type contextKey int

const (
	actorKey contextKey = iota
	requestIDKey
)

// Auth reads the caller identity forwarded by the gateway into the request context
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		actor, ok := actorFromHeaders(raw, r.Header.Get(HeaderUserRole))
		if !ok {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// OptionalAuth like Auth for public routes: a missing or malformed identity is ignored
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actor, ok := actorFromHeaders(r.Header.Get(HeaderUserID), r.Header.Get(HeaderUserRole)); ok {
			r = r.WithContext(WithActor(r.Context(), actor))
		}
		next.ServeHTTP(w, r)
	})
}

func actorFromHeaders(rawID, rawRole string) (domain.Actor, bool) {
	userID, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || userID <= 0 {
		return domain.Actor{}, false
	}

	role := domain.RoleClient
	if strings.EqualFold(strings.TrimSpace(rawRole), string(domain.RoleAdmin)) {
		role = domain.RoleAdmin
	}
	return domain.Actor{UserID: userID, Role: role}, true
}

// RequireAdmin must run after Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		if !actor.IsAdmin() {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithActor stores the caller in ctx
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor caller placed by Auth
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}

// GetUserID id of the caller placed by Auth
func GetUserID(ctx context.Context) (int64, bool) {
	actor, ok := GetActor(ctx)
	if !ok {
		return 0, false
	}
	return actor.UserID, true
}
