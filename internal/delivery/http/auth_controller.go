package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"guestwall/internal/adapters/auth"
	h "guestwall/internal/delivery/http/helpers"
	"guestwall/internal/delivery/http/middleware"
	"guestwall/internal/domain"
)

// LoginRequest is the request body for POST /auth/login
type LoginRequest struct {
	AuthMethod     string `json:"auth_method"`
	InvitationCode string `json:"invitation_code"`
	Password       string `json:"password"`
	GuestName      string `json:"guest_name"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	method := domain.AuthMethod(strings.TrimSpace(l.AuthMethod))
	switch method {
	case domain.AuthMethodInvitationCode:
		if strings.TrimSpace(l.InvitationCode) == "" {
			errs = append(errs, "invitation_code is required")
		}
	case domain.AuthMethodSharedPassword:
		if l.Password == "" {
			errs = append(errs, "password is required")
		}
	case domain.AuthMethodBoth:
		if strings.TrimSpace(l.InvitationCode) == "" {
			errs = append(errs, "invitation_code is required")
		}
		if l.Password == "" {
			errs = append(errs, "password is required")
		}
	default:
		errs = append(errs, "auth_method must be \"invitation_code\", \"shared_password\", or \"both\"")
	}
	return errs
}

// AdminLoginRequest is the request body for POST /admin/login
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// Validate implements Validator.
func (a AdminLoginRequest) Validate() []string {
	if a.Password == "" {
		return []string{"password is required"}
	}
	return nil
}

type AuthController struct {
	Logger          *slog.Logger
	Service         domain.AuthService
	Secrets         auth.SecretComparer
	AdminPassword   string
	SessionDuration time.Duration
	SecureCookies   bool
}

func NewAuthController(
	logger *slog.Logger,
	svc domain.AuthService,
	secrets auth.SecretComparer,
	adminPassword string,
	sessionDuration time.Duration,
	secureCookies bool,
) *AuthController {
	return &AuthController{
		Logger:          logger,
		Service:         svc,
		Secrets:         secrets,
		AdminPassword:   adminPassword,
		SessionDuration: sessionDuration,
		SecureCookies:   secureCookies,
	}
}

// Login godoc
// @Summary Log in as a guest
// @Description Authenticate with an invitation code, the shared site password, or both. Sets the session cookie on success.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} helpers.APIResponse "data contains the session summary"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.Login(r.Context(), domain.LoginInput{
		Method:         domain.AuthMethod(strings.TrimSpace(req.AuthMethod)),
		InvitationCode: req.InvitationCode,
		Password:       req.Password,
		GuestName:      req.GuestName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredential) {
			// The message says which check failed (wrong code vs wrong
			// password); nothing beyond that.
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, credentialMessage(err))
			return
		}
		c.Logger.ErrorContext(r.Context(), "login failed", "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "login failed")
		return
	}

	setSessionCookie(w, session.Token, c.SessionDuration, c.SecureCookies)
	h.WriteJSONSuccess(w, http.StatusOK, session)
}

func credentialMessage(err error) string {
	msg := err.Error()
	if strings.Contains(msg, "invitation code") {
		return "invalid invitation code"
	}
	if strings.Contains(msg, "password") {
		return "invalid password"
	}
	return "invalid credentials"
}

// Session godoc
// @Summary Get the current session
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the session summary"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/session [get]
func (c *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "not authenticated")
		return
	}
	session, err := c.Service.VerifySession(r.Context(), cookie.Value)
	if err != nil {
		// Expired, unknown, and broken lookups are all the same outcome.
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "not authenticated")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, session)
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the session and clears the cookie. Logging out an already-expired session succeeds.
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized (no session cookie present)"
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "no session present")
		return
	}
	if err := c.Service.Logout(r.Context(), cookie.Value); err != nil {
		c.Logger.ErrorContext(r.Context(), "logout failed", "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "logout failed")
		return
	}
	clearSessionCookie(w, c.SecureCookies)
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"logged_out": true})
}

// AdminLogin godoc
// @Summary Log in as admin
// @Description Validates the admin password and sets the admin cookie.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body AdminLoginRequest true "Admin password"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/login [post]
func (c *AuthController) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if !c.Secrets.Matches(c.AdminPassword, req.Password) {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid password")
		return
	}
	setAdminCookie(w, req.Password, c.SecureCookies)
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"admin": true})
}
