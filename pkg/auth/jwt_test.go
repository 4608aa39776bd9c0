package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"

	"taskapi/internal/core/domain"
)

func TestCreateAndVerifyTokenRoundtrip(t *testing.T) {
	RegisterTestingT(t)

	jwt := NewJWT("test-secret", time.Hour)
	userUUID := uuid.New()

	token, err := jwt.CreateToken(userUUID)

	Expect(err).To(BeNil())
	Expect(token).ToNot(BeEmpty())

	verified, err := jwt.VerifyToken(token)

	Expect(err).To(BeNil())
	Expect(verified).To(Equal(userUUID))
}

func TestVerifyTokenExpired(t *testing.T) {
	RegisterTestingT(t)

	jwt := NewJWT("test-secret", -time.Minute)

	token, err := jwt.CreateToken(uuid.New())
	Expect(err).To(BeNil())

	_, err = jwt.VerifyToken(token)

	Expect(err).To(MatchError(domain.ErrInvalidToken))
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	RegisterTestingT(t)

	issuer := NewJWT("one-secret", time.Hour)
	verifier := NewJWT("another-secret", time.Hour)

	token, err := issuer.CreateToken(uuid.New())
	Expect(err).To(BeNil())

	_, err = verifier.VerifyToken(token)

	Expect(err).To(MatchError(domain.ErrInvalidToken))
}

func TestVerifyTokenMalformed(t *testing.T) {
	RegisterTestingT(t)

	jwt := NewJWT("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := jwt.VerifyToken(token)

		Expect(err).To(MatchError(domain.ErrInvalidToken))
	}
}
