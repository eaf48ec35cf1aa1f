package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"job-finder-backend/config"
	"job-finder-backend/pkg/token"
)

func testManager() *token.Manager {
	secrets := func(prefix string) config.RoleSecrets {
		return config.RoleSecrets{
			AccessKey:     prefix + "-access",
			ActivationKey: prefix + "-activation",
			PasswordKey:   prefix + "-password",
		}
	}
	return token.NewManager(&config.Config{
		Roles: map[string]config.RoleSecrets{
			"admin":     secrets("admin"),
			"candidate": secrets("candidate"),
			"recruiter": secrets("recruiter"),
		},
	})
}

func TestSignVerify(t *testing.T) {
	m := testManager()

	signed, err := m.Sign("candidate", token.TypeAccess, 42, "jane@example.com")
	assert.NoError(t, err)

	claims, err := m.Verify("candidate", token.TypeAccess, signed)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "candidate", claims.Role)
}

func TestVerifyRejectsWrongType(t *testing.T) {
	m := testManager()

	// An activation token must never pass as an access token even though
	// both are signed for the same role.
	signed, err := m.Sign("candidate", token.TypeActivation, 42, "jane@example.com")
	assert.NoError(t, err)

	_, err = m.Verify("candidate", token.TypeAccess, signed)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongRole(t *testing.T) {
	m := testManager()

	signed, err := m.Sign("candidate", token.TypeAccess, 42, "jane@example.com")
	assert.NoError(t, err)

	_, err = m.Verify("admin", token.TypeAccess, signed)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := testManager()

	_, err := m.Verify("candidate", token.TypeAccess, "not-a-token")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestSignUnknownRole(t *testing.T) {
	m := testManager()

	_, err := m.Sign("superuser", token.TypeAccess, 1, "x@example.com")
	assert.Error(t, err)
}
