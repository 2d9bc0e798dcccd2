package middleware

import (
	"context"
	"net/http"

	"guestwall/internal/adapters/auth"
	h "guestwall/internal/delivery/http/helpers"
	"guestwall/internal/domain"
)

// Cookie names shared between middleware and controllers.
const (
	// SessionCookieName carries the opaque guest session token.
	SessionCookieName = "guest_session"
	// AdminCookieName carries the admin secret directly (no token).
	AdminCookieName = "admin_auth"
)

type contextKey string

const callerKey contextKey = "caller"

// SetCaller returns a context with the resolved caller identity set.
func SetCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// CallerFromContext returns the caller identity resolved by ResolveSession.
// The zero Caller means the request carried no valid session.
func CallerFromContext(ctx context.Context) domain.Caller {
	caller, _ := ctx.Value(callerKey).(domain.Caller)
	return caller
}

// ResolveSession resolves the session cookie into a caller identity once per
// request and stores it in the context. It never rejects: a missing,
// invalid, or expired session simply yields an anonymous caller, and the
// handlers decide what anonymity means for them. Session verification fails
// closed inside the auth service.
func ResolveSession(authSvc domain.AuthService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				if session, err := authSvc.VerifySession(r.Context(), cookie.Value); err == nil {
					r = r.WithContext(SetCaller(r.Context(), domain.Caller{
						SessionID:  session.ID,
						GuestID:    session.GuestID,
						GuestName:  session.GuestName,
						AuthMethod: session.AuthMethod,
					}))
				}
			}
			next(w, r)
		}
	}
}

// RequireAdmin gates admin endpoints on the admin cookie matching the
// configured secret. It responds 401 before any handler work runs, so a
// failed gate can never leak partial data.
func RequireAdmin(secrets auth.SecretComparer, adminSecret string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(AdminCookieName)
			if err != nil || !secrets.Matches(adminSecret, cookie.Value) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "admin authentication required")
				return
			}
			next(w, r)
		}
	}
}
