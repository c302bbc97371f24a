package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/apperr"
)

// TokenTTL is fixed; clients re-login once a day.
const TokenTTL = 24 * time.Hour

var (
	ErrMissingToken = apperr.Unauthenticated("Access token required")
	ErrInvalidToken = apperr.Forbidden("Invalid token")
)

type JWTConfig struct {
	Issuer string
	Secret string
}

type JWTManager struct {
	cfg JWTConfig
	now func() time.Time
}

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Identity is what a verified token proves about the caller.
type Identity struct {
	AccountID string
	Email     string
}

func NewJWTManager(cfg JWTConfig) *JWTManager {
	return &JWTManager{cfg: cfg, now: time.Now}
}

func (m *JWTManager) Sign(userID, email string) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(TokenTTL)
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.cfg.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString([]byte(m.cfg.Secret))
	return s, exp, err
}

func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(m.cfg.Secret), nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Authenticate resolves an Authorization header value to an Identity.
// A missing or non-bearer header is ErrMissingToken; anything that fails
// verification is ErrInvalidToken.
func (m *JWTManager) Authenticate(header string) (Identity, error) {
	token, ok := bearerToken(header)
	if !ok {
		return Identity{}, ErrMissingToken
	}
	claims, err := m.Parse(token)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return Identity{AccountID: claims.UserID, Email: claims.Email}, nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
