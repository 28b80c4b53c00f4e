package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AntonTsoy/jwt-auth-api/internal/model"
)

// Codec mints and parses signed bearer tokens. The subject claim carries the
// user's email; validity is signature plus expiry, nothing is persisted here.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (c *Codec) Mint(subject string, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(c.secret)
}

// ExtractSubject returns the subject claim of a correctly signed token.
// Expiry is deliberately not checked here: the refresh flow needs the
// subject of a token whose expiry it verifies separately.
func (c *Codec) ExtractSubject(tokenStr string) (string, error) {
	claims, err := c.parse(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// IsExpired reports whether the token's expiry claim is at or past now.
// Unparseable tokens are reported expired.
func (c *Codec) IsExpired(tokenStr string) bool {
	claims, err := c.parse(tokenStr)
	if err != nil || claims.ExpiresAt == nil {
		return true
	}
	return !time.Now().Before(claims.ExpiresAt.Time)
}

// IsValid reports whether the token is correctly signed, unexpired, and
// bound to the given user's email.
func (c *Codec) IsValid(tokenStr string, user model.User) bool {
	claims, err := c.parse(tokenStr)
	if err != nil {
		return false
	}
	if claims.ExpiresAt == nil || !time.Now().Before(claims.ExpiresAt.Time) {
		return false
	}
	return claims.Subject == user.Email
}

func (c *Codec) parse(tokenStr string) (*jwt.RegisteredClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	claims := &jwt.RegisteredClaims{}
	parsed, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, model.ErrMalformedToken
	}
	return claims, nil
}
