package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"guestwall/internal/adapters/auth"
	"guestwall/internal/domain"
)

const touchTimeout = 5 * time.Second

type authService struct {
	guestRepo    domain.GuestRepository
	sessionRepo  domain.SessionRepository
	tokens       auth.TokenGenerator
	secrets      auth.SecretComparer
	sitePassword string
	duration     time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewAuthService creates an AuthService. sitePassword is the shared guest
// secret; duration is the fixed session lifetime.
func NewAuthService(
	guestRepo domain.GuestRepository,
	sessionRepo domain.SessionRepository,
	tokens auth.TokenGenerator,
	secrets auth.SecretComparer,
	sitePassword string,
	duration time.Duration,
	logger *slog.Logger,
) domain.AuthService {
	return &authService{
		guestRepo:    guestRepo,
		sessionRepo:  sessionRepo,
		tokens:       tokens,
		secrets:      secrets,
		sitePassword: sitePassword,
		duration:     duration,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *authService) Login(ctx context.Context, in domain.LoginInput) (*domain.GuestSession, error) {
	var (
		guestID   string
		guestName string
	)

	switch in.Method {
	case domain.AuthMethodInvitationCode, domain.AuthMethodBoth:
		guest, err := s.verifyInvitationCode(ctx, in.InvitationCode)
		if err != nil {
			return nil, err
		}
		// Combined mode: the shared password is an additional check after
		// the code has established who the guest is. Either failure means
		// no session.
		if in.Method == domain.AuthMethodBoth {
			if !s.secrets.Matches(s.sitePassword, in.Password) {
				return nil, fmt.Errorf("invalid password: %w", domain.ErrInvalidCredential)
			}
		}
		guestID = guest.ID
		guestName = guest.Name
	case domain.AuthMethodSharedPassword:
		if !s.secrets.Matches(s.sitePassword, in.Password) {
			return nil, fmt.Errorf("invalid password: %w", domain.ErrInvalidCredential)
		}
		guestName = strings.TrimSpace(in.GuestName)
		if guestName == "" {
			guestName = domain.DefaultGuestName
		}
	default:
		return nil, fmt.Errorf("unknown auth method %q: %w", in.Method, domain.ErrInvalidCredential)
	}

	token, err := s.tokens.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	now := s.now()
	session := &domain.GuestSession{
		Token:          token,
		GuestID:        guestID,
		GuestName:      guestName,
		AuthMethod:     in.Method,
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.duration),
		LastActivityAt: now,
	}
	// A new login always creates a new session row; earlier sessions for
	// the same guest stay valid until they expire.
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func (s *authService) verifyInvitationCode(ctx context.Context, code string) (*domain.Guest, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("invalid invitation code: %w", domain.ErrInvalidCredential)
	}
	guest, err := s.guestRepo.GetByInvitationCode(ctx, code)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, fmt.Errorf("invalid invitation code: %w", domain.ErrInvalidCredential)
		}
		return nil, fmt.Errorf("get guest by invitation code: %w", err)
	}
	return guest, nil
}

// VerifySession fails closed: unknown tokens, expired sessions, and store
// errors all come back as ErrNoSession so authorization decisions can never
// mistake a broken lookup for a valid one.
func (s *authService) VerifySession(ctx context.Context, token string) (*domain.GuestSession, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domain.ErrNoSession
	}
	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if err != domain.ErrNotFound {
			s.logger.WarnContext(ctx, "session lookup failed", "err", err)
		}
		return nil, domain.ErrNoSession
	}
	if session.Expired(s.now()) {
		return nil, domain.ErrNoSession
	}
	return session, nil
}

// TouchSession bumps last_activity_at without blocking the caller. The
// update runs on its own context so it survives the request ending and
// cannot stall it.
func (s *authService) TouchSession(sessionID string) {
	if sessionID == "" {
		return
	}
	at := s.now()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), touchTimeout)
		defer cancel()
		if err := s.sessionRepo.Touch(ctx, sessionID, at); err != nil {
			s.logger.Warn("session touch failed", "session_id", sessionID, "err", err)
		}
	}()
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil && err != domain.ErrNotFound {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
