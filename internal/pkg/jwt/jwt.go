package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/s21platform/outreach-workspace/internal/model"
)

const connectTokenTTL = 30 * time.Minute

// Signer issues the token carried in the push connect packet. It is off unless PUSH_JWT_SECRET is set.
type Signer struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func New(secret, issuer string) *Signer {
	return &Signer{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

func (s *Signer) Enabled() bool {
	return len(s.secret) > 0
}

// ConnectAuth signs a short-lived HS256 token for userID and wraps it as connect auth.
func (s *Signer) ConnectAuth(userID string) (*model.PushAuth, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(connectTokenTTL)

	claims := model.PushConnectClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign push token for %s: %w", userID, err)
	}

	return &model.PushAuth{
		Token:     signed,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}
