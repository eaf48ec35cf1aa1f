package password

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"job-finder-backend/config"
)

const bcryptCost = 12

// Hasher hashes and verifies passwords with a role-scoped pepper folded into
// the input before bcrypt. The pepper is a server-side secret, distinct from
// the per-record salt bcrypt generates itself.
type Hasher struct {
	peppers map[string]string
}

func NewHasher(cfg *config.Config) *Hasher {
	peppers := make(map[string]string, len(cfg.Roles))
	for role, secrets := range cfg.Roles {
		peppers[role] = secrets.Pepper
	}
	return &Hasher{peppers: peppers}
}

func (h *Hasher) pepper(role string) (string, error) {
	pepper, ok := h.peppers[role]
	if !ok || pepper == "" {
		return "", fmt.Errorf("password: missing pepper for role %q", role)
	}
	return pepper, nil
}

func (h *Hasher) Hash(plain, role string) (string, error) {
	pepper, err := h.pepper(role)
	if err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain+pepper), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("password: hashing failed for role %s: %w", role, err)
	}
	return string(hashed), nil
}

func (h *Hasher) Verify(plain, hashed, role string) bool {
	pepper, err := h.pepper(role)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain+pepper)) == nil
}

// ConstantTimeEqual compares two strings without leaking the position of the
// first differing byte. Inputs are trimmed first, mirroring how the password
// confirmation fields are compared.
func ConstantTimeEqual(a, b string) bool {
	ta := strings.TrimSpace(a)
	tb := strings.TrimSpace(b)
	return len(ta) == len(tb) && subtle.ConstantTimeCompare([]byte(ta), []byte(tb)) == 1
}

// ValidateStrength enforces the password policy: at least one lowercase
// letter, one uppercase letter, one digit, and a minimum of 8 characters.
func ValidateStrength(plain string) error {
	var hasLower, hasUpper, hasDigit bool
	for _, r := range plain {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	switch {
	case !hasLower:
		return errors.New("Password must contain at least one lowercase letter.")
	case !hasUpper:
		return errors.New("Password must contain at least one uppercase letter.")
	case !hasDigit:
		return errors.New("Password must contain at least one digit.")
	case len(plain) < 8:
		return errors.New("Password must be at least 8 characters long.")
	}
	return nil
}
