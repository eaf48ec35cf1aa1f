package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"job-finder-backend/config"
	"job-finder-backend/pkg/password"
)

func testHasher() *password.Hasher {
	return password.NewHasher(&config.Config{
		Roles: map[string]config.RoleSecrets{
			"candidate": {Pepper: "candidate-pepper"},
			"recruiter": {Pepper: "recruiter-pepper"},
		},
	})
}

func TestHashVerify(t *testing.T) {
	h := testHasher()

	hashed, err := h.Hash("Secret123", "candidate")
	assert.NoError(t, err)
	assert.NotEqual(t, "Secret123", hashed)

	assert.True(t, h.Verify("Secret123", hashed, "candidate"))
	assert.False(t, h.Verify("Wrong1234", hashed, "candidate"))
	// The pepper is role-scoped, so a hash from one role never verifies
	// under another.
	assert.False(t, h.Verify("Secret123", hashed, "recruiter"))
}

func TestHashMissingPepper(t *testing.T) {
	h := testHasher()

	_, err := h.Hash("Secret123", "admin")
	assert.Error(t, err)
}

func TestConstantTimeEqual(t *testing.T) {
	assert.True(t, password.ConstantTimeEqual("abc", "abc"))
	assert.True(t, password.ConstantTimeEqual(" abc ", "abc"))
	assert.False(t, password.ConstantTimeEqual("abc", "abd"))
	assert.False(t, password.ConstantTimeEqual("abc", "abcd"))
}

func TestValidateStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"missing lowercase", "ABCDEF12", "lowercase"},
		{"missing uppercase", "abcdef12", "uppercase"},
		{"missing digit", "Abcdefgh", "digit"},
		{"too short", "Abc1", "8 characters"},
		{"valid", "Abcdef12", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := password.ValidateStrength(tc.password)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}
