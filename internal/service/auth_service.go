package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"suraksha-api/internal/model"
	"suraksha-api/pkg/apierror"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserStore is the slice of the user repository the auth flows need.
type UserStore interface {
	FindByID(ctx context.Context, id string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u model.User) error
}

// TokenStore persists refresh tokens. FindByToken returns expired
// records; the service owns the expiry check so it can delete stale
// rows as a side effect.
type TokenStore interface {
	Create(ctx context.Context, t model.RefreshToken) error
	FindByToken(ctx context.Context, token string) (model.RefreshToken, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByID(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type AuthService struct {
	users  UserStore
	tokens TokenStore
	hasher *PasswordHasher
	issuer *TokenIssuer
}

func NewAuthService(users UserStore, tokens TokenStore, hasher *PasswordHasher, issuer *TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens, hasher: hasher, issuer: issuer}
}

// LoginResult pairs the stateless access token with the stored refresh
// token record backing the session cookie.
type LoginResult struct {
	AccessToken  string
	RefreshToken model.RefreshToken
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.PublicUser, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email == "" || req.Password == "" {
		return model.PublicUser{}, apierror.New("BAD_REQUEST", "Email and password are required", "", http.StatusBadRequest)
	}
	if !emailPattern.MatchString(email) {
		return model.PublicUser{}, apierror.New("BAD_REQUEST", "Invalid email format", "", http.StatusBadRequest)
	}
	if len(req.Password) < minPasswordLength {
		return model.PublicUser{}, apierror.New("BAD_REQUEST", "Password must be at least 8 characters", "", http.StatusBadRequest)
	}

	// Only CITIZEN and NGO are self-assignable; anything else falls
	// back to CITIZEN. ADMIN accounts are never created here.
	role := model.RoleCitizen
	if requested, ok := model.ParseRole(req.Role); ok && requested != model.RoleAdmin {
		role = requested
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return model.PublicUser{}, err
	}
	if exists {
		return model.PublicUser{}, apierror.New("FORBIDDEN", "Email already registered", "", http.StatusForbidden)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.PublicUser{}, err
	}

	user := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return model.PublicUser{}, err
	}

	return user.Public(), nil
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return LoginResult{}, apierror.New("BAD_REQUEST", "Email and password are required", "", http.StatusBadRequest)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrUserNotFound) {
		return LoginResult{}, invalidCredentials()
	}
	if err != nil {
		return LoginResult{}, err
	}

	if !user.IsActive {
		return LoginResult{}, apierror.New("FORBIDDEN", "User account is deactivated", "", http.StatusForbidden)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return LoginResult{}, invalidCredentials()
	}

	accessToken, err := s.issuer.IssueAccessToken(user.ID, user.Role)
	if err != nil {
		return LoginResult{}, err
	}

	record, err := s.storeRefreshToken(ctx, user.ID)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{AccessToken: accessToken, RefreshToken: record}, nil
}

// Refresh exchanges a live refresh token for a new access token. The
// refresh token itself is not rotated; it stays valid until its expiry
// or an explicit logout. An expired record is deleted on discovery and
// the attempt fails closed.
func (s *AuthService) Refresh(ctx context.Context, token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", apierror.New("UNAUTHORIZED", "No refresh token provided", "", http.StatusUnauthorized)
	}

	record, err := s.tokens.FindByToken(ctx, token)
	if errors.Is(err, model.ErrTokenNotFound) {
		return "", apierror.New("UNAUTHORIZED", "Invalid refresh token", "", http.StatusUnauthorized)
	}
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	if record.Expired(now) {
		if err := s.tokens.DeleteByID(ctx, record.ID); err != nil {
			slog.Warn("failed to delete expired refresh token", "error", err)
		}
		s.sweepExpired(ctx, now)
		return "", apierror.New("UNAUTHORIZED", "Refresh token expired", "", http.StatusUnauthorized)
	}

	user, err := s.users.FindByID(ctx, record.UserID)
	if errors.Is(err, model.ErrUserNotFound) {
		return "", apierror.New("UNAUTHORIZED", "User not found", "", http.StatusUnauthorized)
	}
	if err != nil {
		return "", err
	}

	if !user.IsActive {
		return "", apierror.New("UNAUTHORIZED", "User account is deactivated", "", http.StatusUnauthorized)
	}

	return s.issuer.IssueAccessToken(user.ID, user.Role)
}

// Logout revokes the refresh token record if one exists. Missing
// records are not an error, so repeated logouts succeed.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.tokens.DeleteByToken(ctx, token)
}

func (s *AuthService) GetUserByID(ctx context.Context, userID string) (model.PublicUser, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return model.PublicUser{}, err
	}
	return user.Public(), nil
}

func (s *AuthService) VerifyAccessToken(tokenString string) (*model.AuthClaims, error) {
	return s.issuer.VerifyAccessToken(tokenString)
}

func (s *AuthService) RefreshTokenTTL() time.Duration {
	return s.issuer.RefreshTokenTTL()
}

func (s *AuthService) storeRefreshToken(ctx context.Context, userID string) (model.RefreshToken, error) {
	// A colliding token value is astronomically unlikely at 256 bits,
	// but the store surfaces it as ErrDuplicateToken; regenerate and
	// retry instead of failing the login.
	for attempt := 0; attempt < 3; attempt++ {
		value, err := s.issuer.NewRefreshToken()
		if err != nil {
			return model.RefreshToken{}, err
		}

		record := model.RefreshToken{
			ID:        uuid.NewString(),
			Token:     value,
			UserID:    userID,
			ExpiresAt: s.issuer.RefreshTokenExpiry(),
			CreatedAt: time.Now().UTC(),
		}

		err = s.tokens.Create(ctx, record)
		if errors.Is(err, model.ErrDuplicateToken) {
			continue
		}
		if err != nil {
			return model.RefreshToken{}, err
		}
		return record, nil
	}

	return model.RefreshToken{}, model.ErrDuplicateToken
}

// sweepExpired lazily garbage-collects stale records. Best effort: a
// failure only logs, it never affects the request outcome.
func (s *AuthService) sweepExpired(ctx context.Context, now time.Time) {
	removed, err := s.tokens.DeleteExpired(ctx, now)
	if err != nil {
		slog.Warn("expired refresh token sweep failed", "error", err)
		return
	}
	if removed > 0 {
		slog.Info("expired refresh tokens removed", "count", removed)
	}
}

func invalidCredentials() error {
	return apierror.New("UNAUTHORIZED", "Invalid credentials", "", http.StatusUnauthorized)
}
