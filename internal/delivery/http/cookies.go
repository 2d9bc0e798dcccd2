package http

import (
	"net/http"
	"time"

	"guestwall/internal/delivery/http/middleware"
)

// setSessionCookie sets the guest session cookie. The token is only ever
// transmitted this way: http-only, SameSite=Strict, Secure in production,
// max-age equal to the session duration.
func setSessionCookie(w http.ResponseWriter, token string, duration time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(duration.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie instructs the client to drop the session cookie.
func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// setAdminCookie sets the admin gate cookie. Unlike the session cookie this
// carries the shared admin secret directly; the gate compares it on every
// admin request.
func setAdminCookie(w http.ResponseWriter, secret string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    secret,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
