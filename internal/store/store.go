package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonTsoy/jwt-auth-api/internal/model"
)

// UserStore holds the authoritative user records.
type UserStore interface {
	Create(user model.User) error
	FindByEmail(email string) (model.User, error)
	FindByID(id uuid.UUID) (model.User, error)
	FindAll() ([]model.User, error)
	DeleteByID(id uuid.UUID) error
}

// LedgerEntry is the identity snapshot recorded when a refresh token is
// issued. ClientIP is the address the token was issued to.
type LedgerEntry struct {
	User      model.User `json:"user"`
	ClientIP  string     `json:"clientIp"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// RefreshTokenStore maps issued refresh token strings to the identity they
// were granted to. Entries for expired tokens are not returned by Find.
type RefreshTokenStore interface {
	Save(token string, entry LedgerEntry) error
	Find(token string) (LedgerEntry, bool, error)
	Delete(token string) error
}

type ArticleStore interface {
	FindAll() ([]model.Article, error)
}
