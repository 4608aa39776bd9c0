package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskapi/internal/core/domain"
)

// JWT issues and verifies HS256 bearer tokens. The secret and TTL are fixed
// at construction; rotating the secret invalidates every outstanding token.
type JWT struct {
	secret []byte
	ttl    time.Duration
}

func NewJWT(secret string, ttl time.Duration) *JWT {
	return &JWT{secret: []byte(secret), ttl: ttl}
}

func (j *JWT) CreateToken(userUUID uuid.UUID) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userUUID.String(),
		"iat": now.Unix(),
		"exp": now.Add(j.ttl).Unix(),
	})

	return token.SignedString(j.secret)
}

// VerifyToken fails closed: bad signature, wrong signing method, malformed
// payload and elapsed expiry all come back as ErrInvalidToken.
func (j *JWT) VerifyToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return j.secret, nil
	})

	if err != nil || !token.Valid {
		return uuid.Nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return uuid.Nil, domain.ErrInvalidToken
	}

	id, ok := claims["id"].(string)

	if !ok {
		return uuid.Nil, domain.ErrInvalidToken
	}

	userUUID, err := uuid.Parse(id)

	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	return userUUID, nil
}
