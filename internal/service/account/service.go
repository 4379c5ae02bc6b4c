package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storecrm/internal/domain"
	acctrepo "storecrm/internal/repository/account"
	tokenrepo "storecrm/internal/repository/token"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when username/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service handles account signup/login and token validation.
type Service struct {
	repo        acctrepo.Repository
	tokens      *tokenManager
	accessTTL   time.Duration
	refreshTTL  time.Duration
	passwordMin int
}

// New creates a Service with sane defaults.
func New(repo acctrepo.Repository, tokens tokenrepo.Repository) *Service {
	return &Service{
		repo:        repo,
		tokens:      newTokenManager(tokens),
		accessTTL:   48 * time.Hour,
		refreshTTL:  30 * 24 * time.Hour,
		passwordMin: 8,
	}
}

// WithTTLs overrides the default token lifetimes.
func (s *Service) WithTTLs(access, refresh time.Duration) *Service {
	if access > 0 {
		s.accessTTL = access
	}
	if refresh > 0 {
		s.refreshTTL = refresh
	}
	return s
}

// SignupInput captures fields expected by the signup endpoint.
type SignupInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Signup registers a new account. The role defaults to USER.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.Account, error) {
	username := strings.TrimSpace(strings.ToLower(in.Username))
	if username == "" {
		return nil, domain.Invalid("username is required")
	}
	password := strings.TrimSpace(in.Password)
	if err := validatePassword(password, s.passwordMin); err != nil {
		return nil, err
	}

	role := domain.Role(strings.ToUpper(strings.TrimSpace(in.Role)))
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.Invalid(fmt.Sprintf("unknown role %q", in.Role))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, domain.Account{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
	})
}

// Login validates credentials and returns issued tokens plus the account.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.Account, string, string, error) {
	password = strings.TrimSpace(password)
	a, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, err := s.tokens.Issue(ctx, a.ID, "access", s.accessTTL)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.tokens.Issue(ctx, a.ID, "refresh", s.refreshTTL)
	if err != nil {
		return nil, "", "", err
	}
	return a, access, refresh, nil
}

// LookupByToken returns the account bound to a valid access token.
func (s *Service) LookupByToken(ctx context.Context, token string) (*domain.Account, error) {
	meta, ok := s.tokens.Validate(ctx, token)
	if !ok {
		return nil, ErrInvalidToken
	}
	a, err := s.repo.GetByID(ctx, meta.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return a, nil
}

// AccessTTLSeconds exposes the access token lifetime in seconds.
func (s *Service) AccessTTLSeconds() int {
	return int(s.accessTTL.Seconds())
}

func validatePassword(p string, min int) error {
	trimmed := strings.TrimSpace(p)
	if len(trimmed) < min {
		return domain.Invalid(fmt.Sprintf("password must be at least %d characters", min))
	}
	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range trimmed {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return domain.Invalid("password must contain at least 1 uppercase letter, 1 lowercase letter, and 1 number")
	}
	return nil
}
