package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/facts-mng/pkg/ctxutil"
)

// ErrEmptyToken is returned when an empty bearer token is validated.
var ErrEmptyToken = errors.New("token is empty")

// JWTManager signs and validates HS256 access tokens carrying the caller identity.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	PreferredUsername string   `json:"preferred_username,omitempty"`
	OrganizationID    string   `json:"organizationId,omitempty"`
	Roles             []string `json:"roles,omitempty"`
}

// GenerateAccessToken creates a signed token for id. The subject is mandatory.
func (m *JWTManager) GenerateAccessToken(id ctxutil.Identity) (string, error) {
	if id.Subject == "" {
		return "", fmt.Errorf("subject is required")
	}

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Subject,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		PreferredUsername: id.Username,
		OrganizationID:    id.OrganizationID,
		Roles:             id.Roles,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses tokenString and returns the identity it carries.
func (m *JWTManager) ValidateToken(tokenString string) (ctxutil.Identity, error) {
	if tokenString == "" {
		return ctxutil.Identity{}, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return ctxutil.Identity{}, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return ctxutil.Identity{}, fmt.Errorf("token has no subject")
	}

	username := claims.PreferredUsername
	if username == "" {
		username = claims.Subject
	}

	return ctxutil.Identity{
		Subject:        claims.Subject,
		Username:       username,
		OrganizationID: claims.OrganizationID,
		Roles:          claims.Roles,
	}, nil
}
