package jwt_test

import (
	"time"

	tokenIssuer "moonpump/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		now     time.Time
		signed  string
	)

	BeforeEach(func() {
		now = time.Now()
		tokenIssuer.TimeNow = func() time.Time { return now }
		service = tokenIssuer.NewJWTService([]byte("secret"), "moonpump")

		var err error
		signed, err = service.Sign(service.Generate(tokenIssuer.SessionInfo{
			Address:    "0xAbCdEf0000000000000000000000000000000001",
			Expiration: time.Hour,
		}))
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	It("should issue tokens for the lowercase address", func() {
		subject, err := service.Subject(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(subject).To(Equal("0xabcdef0000000000000000000000000000000001"))

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["iss"]).To(Equal("moonpump"))
	})

	It("should reject tokens signed with another secret", func() {
		other := tokenIssuer.NewJWTService([]byte("other"), "moonpump")
		_, err := other.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject expired tokens", func() {
		now = now.Add(2 * time.Hour)
		_, err := service.Subject(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})

	It("should reject garbage", func() {
		_, err := service.Validate("not.a.token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject tokens without a subject", func() {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
		raw, err := service.Sign(token)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Subject(raw)
		Expect(err).To(MatchError(tokenIssuer.ErrMissingSubject))
	})
})
