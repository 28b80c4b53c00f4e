package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AntonTsoy/jwt-auth-api/internal/model"
	"github.com/AntonTsoy/jwt-auth-api/internal/store"
)

func TestServiceCreate(t *testing.T) {
	s := NewService(store.NewMemoryUserStore())

	created, err := s.Create("a@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", created.Email)
	assert.Equal(t, model.RoleUser, created.Role)
	assert.NotEqual(t, "p1", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("p1")))

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := s.Create("a@x.com", "p2")
		assert.ErrorIs(t, err, model.ErrEmailTaken)
	})
}

func TestServiceDelete(t *testing.T) {
	s := NewService(store.NewMemoryUserStore())

	created, err := s.Create("a@x.com", "p1")
	require.NoError(t, err)

	require.NoError(t, s.DeleteByID(created.ID))
	assert.ErrorIs(t, s.DeleteByID(created.ID), model.ErrUserNotFound)

	// the email is free again after deletion
	_, err = s.Create("a@x.com", "p1")
	assert.NoError(t, err)
}
