package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestwall/internal/delivery/http/helpers"
	"guestwall/internal/domain"
)

// fakeAuthService implements domain.AuthService for tests.
type fakeAuthService struct {
	session *domain.GuestSession
}

func (f *fakeAuthService) Login(ctx context.Context, in domain.LoginInput) (*domain.GuestSession, error) {
	return nil, domain.ErrInvalidCredential
}

func (f *fakeAuthService) VerifySession(ctx context.Context, token string) (*domain.GuestSession, error) {
	if f.session != nil && f.session.Token == token {
		return f.session, nil
	}
	return nil, domain.ErrNoSession
}

func (f *fakeAuthService) TouchSession(sessionID string) {}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error { return nil }

// fakeComparer implements auth.SecretComparer with plain equality.
type fakeComparer struct{}

func (fakeComparer) Matches(configured, presented string) bool {
	return configured != "" && configured == presented
}

func TestResolveSession(t *testing.T) {
	session := &domain.GuestSession{
		ID:         "session-1",
		Token:      "valid-token",
		GuestID:    "guest-1",
		GuestName:  "Ana",
		AuthMethod: domain.AuthMethodInvitationCode,
	}

	tests := []struct {
		name       string
		cookie     *http.Cookie
		wantCaller domain.Caller
	}{
		{
			name:   "valid session resolves caller",
			cookie: &http.Cookie{Name: SessionCookieName, Value: "valid-token"},
			wantCaller: domain.Caller{
				SessionID:  "session-1",
				GuestID:    "guest-1",
				GuestName:  "Ana",
				AuthMethod: domain.AuthMethodInvitationCode,
			},
		},
		{
			name:   "unknown token yields anonymous caller",
			cookie: &http.Cookie{Name: SessionCookieName, Value: "bad-token"},
		},
		{
			name: "no cookie yields anonymous caller",
		},
		{
			name:   "empty cookie value yields anonymous caller",
			cookie: &http.Cookie{Name: SessionCookieName, Value: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.Caller
			next := func(w http.ResponseWriter, r *http.Request) {
				got = CallerFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}

			req := httptest.NewRequest(http.MethodPost, "/wall/posts", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			ResolveSession(&fakeAuthService{session: session})(next)(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, "ResolveSession never rejects")
			assert.Equal(t, tt.wantCaller, got)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
		nextCalled bool
	}{
		{
			name:       "correct secret passes",
			cookie:     &http.Cookie{Name: AdminCookieName, Value: "supersecret"},
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
		{
			name:       "wrong secret is rejected",
			cookie:     &http.Cookie{Name: AdminCookieName, Value: "guess"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing cookie is rejected",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty cookie value is rejected",
			cookie:     &http.Cookie{Name: AdminCookieName, Value: ""},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			}

			req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			RequireAdmin(fakeComparer{}, "supersecret")(next)(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)

			if tt.wantStatus == http.StatusUnauthorized {
				var resp helpers.APIResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				require.NotNil(t, resp.Error)
				assert.Equal(t, helpers.ErrCodeUnauthorized, resp.Error.Code)
				assert.Nil(t, resp.Data, "failed auth must not leak data")
			}
		})
	}
}
