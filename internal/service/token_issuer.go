package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"suraksha-api/internal/model"
	"suraksha-api/pkg/apierror"
)

// refreshTokenBytes gives 256 bits of entropy per opaque token.
const refreshTokenBytes = 32

// TokenIssuer mints and verifies the two credential kinds: stateless
// signed access tokens and opaque stored refresh tokens. Access-token
// validity is decided purely by signature and expiry; refresh tokens
// carry no claims at all and must be looked up.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenIssuer(secret string, accessTTL time.Duration, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (i *TokenIssuer) IssueAccessToken(userID string, role model.Role) (string, error) {
	now := time.Now().UTC()
	claims := accessClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// VerifyAccessToken collapses every failure (malformed, bad signature,
// expired, wrong method, unknown role) into a single unauthorized
// outcome so callers cannot leak which factor failed.
func (i *TokenIssuer) VerifyAccessToken(tokenString string) (*model.AuthClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errUnauthorizedToken()
	}

	claims, ok := parsed.Claims.(*accessClaims)
	if !ok || claims.Subject == "" {
		return nil, errUnauthorizedToken()
	}

	role, ok := model.ParseRole(claims.Role)
	if !ok {
		return nil, errUnauthorizedToken()
	}

	return &model.AuthClaims{UserID: claims.Subject, Role: role}, nil
}

// NewRefreshToken returns a fresh opaque token value.
func (i *TokenIssuer) NewRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (i *TokenIssuer) RefreshTokenExpiry() time.Time {
	return time.Now().UTC().Add(i.refreshTTL)
}

func (i *TokenIssuer) RefreshTokenTTL() time.Duration {
	return i.refreshTTL
}

func errUnauthorizedToken() error {
	return apierror.New("UNAUTHORIZED", "Invalid or expired token", "", http.StatusUnauthorized)
}
