// Package auth issues and verifies the signed access/refresh token pair handed out
// at login.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yukikurage/task-assigner/internal/models"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrEmptyToken      = errors.New("token is empty")
	ErrInvalidToken    = errors.New("token is invalid")
	ErrUnexpectedType  = errors.New("unexpected token type")
	ErrInvalidSubject  = errors.New("token subject is not a user id")
	ErrEmptySigningKey = errors.New("signing key is empty")
	ErrNonPositiveTTL  = errors.New("token ttl must be positive")
)

// Claims are the JWT claims carried by both token types.
type Claims struct {
	UserID    string      `json:"user_id"`
	Role      models.Role `json:"role"`
	TokenType string      `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is what a successful login returns.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// IssuerConfig configures an Issuer.
type IssuerConfig struct {
	Secret     []byte
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Issuer signs and verifies HS256 tokens.
type Issuer struct {
	cfg IssuerConfig
	now func() time.Time
}

// NewIssuer creates an Issuer.
func NewIssuer(cfg IssuerConfig) (*Issuer, error) {
	if len(cfg.Secret) == 0 {
		return nil, ErrEmptySigningKey
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, ErrNonPositiveTTL
	}
	return &Issuer{cfg: cfg, now: time.Now}, nil
}

// IssuePair signs a fresh access and refresh token for user.
func (i *Issuer) IssuePair(user *models.User) (TokenPair, error) {
	access, err := i.IssueAccess(user)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := i.sign(user, TokenTypeRefresh, i.cfg.RefreshTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

// IssueAccess signs an access token for user.
func (i *Issuer) IssueAccess(user *models.User) (string, error) {
	access, err := i.sign(user, TokenTypeAccess, i.cfg.AccessTTL)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return access, nil
}

// VerifyAccess parses an access token and returns the user id it was issued for.
func (i *Issuer) VerifyAccess(token string) (uuid.UUID, *Claims, error) {
	return i.verify(token, TokenTypeAccess)
}

// VerifyRefresh parses a refresh token and returns the user id it was issued for.
func (i *Issuer) VerifyRefresh(token string) (uuid.UUID, *Claims, error) {
	return i.verify(token, TokenTypeRefresh)
}

func (i *Issuer) sign(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := i.now()

	claims := &Claims{
		UserID:    user.ID.String(),
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.cfg.Issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.cfg.Secret)
}

func (i *Issuer) verify(tokenString, expectedType string) (uuid.UUID, *Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return uuid.Nil, nil, ErrEmptyToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return i.cfg.Secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.cfg.Issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return uuid.Nil, nil, ErrInvalidToken
	}

	if claims.TokenType != expectedType {
		return uuid.Nil, nil, ErrUnexpectedType
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, nil, ErrInvalidSubject
	}

	return userID, claims, nil
}
