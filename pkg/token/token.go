package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"job-finder-backend/config"
)

// Type discriminates the three JWT flavors. Each type is signed with its own
// per-role secret, so an activation token can never pass as an access token.
type Type string

const (
	TypeAccess     Type = "accessToken"
	TypeActivation Type = "activationToken"
	TypePassword   Type = "passwordToken"
)

// Validity windows match the lifetimes promised in the notification emails.
const (
	AccessTTL     = 24 * time.Hour
	ActivationTTL = 15 * time.Minute
	PasswordTTL   = 30 * time.Minute
)

var (
	ErrInvalidToken = errors.New("token: invalid or expired token")
	ErrWrongRole    = errors.New("token: role mismatch")
)

// Claims carried by every token minted here.
type Claims struct {
	UserID    int64  `json:"uid"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"tokenType"`
	jwt.RegisteredClaims
}

// Manager signs and verifies role-scoped tokens using the secrets from the
// application config.
type Manager struct {
	roles map[string]config.RoleSecrets
}

func NewManager(cfg *config.Config) *Manager {
	return &Manager{roles: cfg.Roles}
}

func (m *Manager) secret(role string, typ Type) ([]byte, error) {
	secrets, ok := m.roles[role]
	if !ok {
		return nil, fmt.Errorf("token: unknown role %q", role)
	}
	var key string
	switch typ {
	case TypeAccess:
		key = secrets.AccessKey
	case TypeActivation:
		key = secrets.ActivationKey
	case TypePassword:
		key = secrets.PasswordKey
	default:
		return nil, fmt.Errorf("token: unknown token type %q", typ)
	}
	if key == "" {
		return nil, fmt.Errorf("token: missing %s secret for role %q", typ, role)
	}
	return []byte(key), nil
}

func ttl(typ Type) time.Duration {
	switch typ {
	case TypeActivation:
		return ActivationTTL
	case TypePassword:
		return PasswordTTL
	default:
		return AccessTTL
	}
}

// Sign mints a token of the given type for the user.
func (m *Manager) Sign(role string, typ Type, userID int64, email string) (string, error) {
	secret, err := m.secret(role, typ)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		TokenType: string(typ),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl(typ))),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Verify parses and validates a token against the secret for the given role
// and type. The embedded role and type claims must both match.
func (m *Manager) Verify(role string, typ Type, tokenString string) (*Claims, error) {
	secret, err := m.secret(role, typ)
	if err != nil {
		return nil, err
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("token: unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != string(typ) {
		return nil, ErrInvalidToken
	}
	if claims.Role != role {
		return nil, ErrWrongRole
	}
	return claims, nil
}
