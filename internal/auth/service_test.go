package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AntonTsoy/jwt-auth-api/internal/model"
	"github.com/AntonTsoy/jwt-auth-api/internal/store"
	"github.com/AntonTsoy/jwt-auth-api/internal/token"
)

type fixture struct {
	service *Service
	users   *store.MemoryUserStore
	ledger  *store.MemoryRefreshTokenStore
	codec   *token.Codec
	alice   model.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := store.NewMemoryUserStore()
	ledger := store.NewMemoryRefreshTokenStore()
	codec := token.NewCodec("test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("p1"), bcrypt.MinCost)
	require.NoError(t, err)
	alice := model.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: string(hash), Role: model.RoleUser}
	require.NoError(t, users.Create(alice))

	return &fixture{
		service: NewService(users, ledger, codec, 15*time.Minute, 24*time.Hour),
		users:   users,
		ledger:  ledger,
		codec:   codec,
		alice:   alice,
	}
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)

		pair, err := f.service.Login("a@x.com", "p1", "10.0.0.1")
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

		entry, ok, err := f.ledger.Find(pair.RefreshToken)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "a@x.com", entry.User.Email)
		assert.Equal(t, "10.0.0.1", entry.ClientIP)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Login("a@x.com", "wrong", "10.0.0.1")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Login("missing@x.com", "p1", "10.0.0.1")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		pair, err := f.service.Login("a@x.com", "p1", "10.0.0.1")
		require.NoError(t, err)

		accessToken, err := f.service.Refresh(pair.RefreshToken, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, f.codec.IsValid(accessToken, f.alice))
	})

	t.Run("Malformed", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Refresh("not.a.jwt", "10.0.0.1")
		assert.ErrorIs(t, err, model.ErrMalformedToken)
	})

	t.Run("Expired", func(t *testing.T) {
		f := newFixture(t)
		expired, err := f.codec.Mint("a@x.com", time.Now().Add(-time.Minute))
		require.NoError(t, err)

		_, err = f.service.Refresh(expired, "10.0.0.1")
		assert.ErrorIs(t, err, model.ErrExpiredToken)
	})

	t.Run("NotInLedger", func(t *testing.T) {
		f := newFixture(t)
		// correctly signed and unexpired, but never issued through Login
		stray, err := f.codec.Mint("a@x.com", time.Now().Add(time.Hour))
		require.NoError(t, err)

		_, err = f.service.Refresh(stray, "10.0.0.1")
		assert.ErrorIs(t, err, model.ErrIdentityMismatch)
	})

	t.Run("UserDeletedAfterIssuance", func(t *testing.T) {
		f := newFixture(t)
		pair, err := f.service.Login("a@x.com", "p1", "10.0.0.1")
		require.NoError(t, err)

		require.NoError(t, f.users.DeleteByID(f.alice.ID))

		_, err = f.service.Refresh(pair.RefreshToken, "10.0.0.1")
		assert.ErrorIs(t, err, model.ErrIdentityMismatch)
	})
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	f := newFixture(t)
	pair, err := f.service.Login("a@x.com", "p1", "10.0.0.1")
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(pair.RefreshToken))

	_, err = f.service.Refresh(pair.RefreshToken, "10.0.0.1")
	assert.ErrorIs(t, err, model.ErrIdentityMismatch)
}
