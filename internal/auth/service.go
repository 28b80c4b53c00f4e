package auth

import (
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/AntonTsoy/jwt-auth-api/internal/email"
	"github.com/AntonTsoy/jwt-auth-api/internal/model"
	"github.com/AntonTsoy/jwt-auth-api/internal/store"
	"github.com/AntonTsoy/jwt-auth-api/internal/token"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Service implements the login/refresh/logout workflow on top of the user
// store, the refresh-token ledger, and the token codec.
type Service struct {
	users      store.UserStore
	ledger     store.RefreshTokenStore
	codec      *token.Codec
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(users store.UserStore, ledger store.RefreshTokenStore, codec *token.Codec, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		users:      users,
		ledger:     ledger,
		codec:      codec,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Login verifies the credentials and mints an access/refresh token pair.
// The refresh token is recorded in the ledger together with the user
// snapshot and the client IP it was issued to.
func (s *Service) Login(emailAddr, password, clientIP string) (TokenPair, error) {
	user, err := s.users.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return TokenPair{}, model.ErrInvalidCredentials
		}
		return TokenPair{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return TokenPair{}, model.ErrInvalidCredentials
	}

	now := time.Now()
	accessToken, err := s.codec.Mint(user.Email, now.Add(s.accessTTL))
	if err != nil {
		return TokenPair{}, err
	}

	refreshExpiry := now.Add(s.refreshTTL)
	refreshToken, err := s.codec.Mint(user.Email, refreshExpiry)
	if err != nil {
		return TokenPair{}, err
	}

	entry := store.LedgerEntry{User: user, ClientIP: clientIP, ExpiresAt: refreshExpiry}
	if err := s.ledger.Save(refreshToken, entry); err != nil {
		return TokenPair{}, err
	}

	slog.Info("user logged in", "email", user.Email)
	return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh redeems a refresh token for a new access token. It succeeds only
// when the token is correctly signed and unexpired, and its subject still
// resolves to the same identity the ledger recorded at issuance. A refresh
// from a different IP than the token was issued to triggers an async
// warning email.
func (s *Service) Refresh(refreshToken, clientIP string) (string, error) {
	emailAddr, err := s.codec.ExtractSubject(refreshToken)
	if err != nil {
		return "", model.ErrMalformedToken
	}

	if s.codec.IsExpired(refreshToken) {
		return "", model.ErrExpiredToken
	}

	current, err := s.users.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", model.ErrIdentityMismatch
		}
		return "", err
	}

	entry, ok, err := s.ledger.Find(refreshToken)
	if err != nil {
		return "", err
	}
	if !ok || entry.User.Email != current.Email {
		return "", model.ErrIdentityMismatch
	}

	if clientIP != "" && entry.ClientIP != "" && clientIP != entry.ClientIP {
		slog.Warn("refresh from new client IP", "email", current.Email, "ip", clientIP)
		go email.SendSignInWarning(current.Email, clientIP)
	}

	return s.codec.Mint(current.Email, time.Now().Add(s.accessTTL))
}

// Logout revokes the presented refresh token. The access token stays valid
// until its own expiry.
func (s *Service) Logout(refreshToken string) error {
	if err := s.ledger.Delete(refreshToken); err != nil {
		return err
	}
	slog.Info("refresh token revoked")
	return nil
}
