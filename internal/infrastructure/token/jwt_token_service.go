package token

import (
	"errors"
	"time"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v4"
)

const defaultTokenTTL = 12 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Approved bool   `json:"approved"`
	jwt.RegisteredClaims
}

// JWTTokenService issues and validates HS256 session tokens. The subject is
// the user id; role and approval travel in the claims so the middleware does
// not need a user lookup per request.

type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenService = (*JWTTokenService)(nil)

func NewJWTTokenService(secret string) *JWTTokenService {
	return &JWTTokenService{secret: []byte(secret), ttl: defaultTokenTTL, now: time.Now}
}

func (s *JWTTokenService) Generate(u entities.User) (string, error) {
	now := s.now().UTC()
	claims := sessionClaims{
		Username: u.Username,
		Role:     string(u.Role),
		Approved: u.Approved,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JWTTokenService) Validate(tokenString string) (entities.Actor, error) {
	var claims sessionClaims
	tok, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return entities.Actor{}, ErrInvalidToken
	}

	return entities.Actor{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     entities.Role(claims.Role),
		Approved: claims.Approved,
	}, nil
}
