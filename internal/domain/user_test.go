package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"job-finder-backend/internal/domain"
)

func TestUserNeverSerializesPassword(t *testing.T) {
	user := &domain.User{
		ID:       1,
		Email:    "jane@example.com",
		Password: "$2a$12$somesecrethash",
		Role:     domain.RoleCandidate,
	}

	raw, err := json.Marshal(user)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "somesecrethash")
	assert.NotContains(t, string(raw), "password")

	raw, err = json.Marshal(domain.ToUserDTO(user))
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "somesecrethash")
}

func TestUpdateContactRequestEmpty(t *testing.T) {
	assert.True(t, domain.UpdateContactRequest{}.Empty())
	assert.False(t, domain.UpdateContactRequest{Email: "a@b.co"}.Empty())
	assert.False(t, domain.UpdateContactRequest{MobileNumber: "1234567"}.Empty())
}
