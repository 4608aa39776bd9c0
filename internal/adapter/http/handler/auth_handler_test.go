package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"taskapi/internal/adapter/database/sqlite/repository"
	"taskapi/internal/adapter/http/handler"
	"taskapi/internal/adapter/http/routes"
	"taskapi/internal/core/port"
	"taskapi/internal/core/service"
	"taskapi/pkg/auth"
	. "taskapi/pkg/test"
)

type AuthHandlerSuite struct {
	suite.Suite
	UserRepo port.UserRepository
	Tokens   port.TokenService
	Router   *gin.Engine
}

func (s *AuthHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db := InitTestDB()

	s.UserRepo = repository.NewUserRepository(db)
	s.Tokens = auth.NewJWT("test-secret", time.Hour)

	authSvc := service.NewAuthService(s.UserRepo, s.Tokens)
	userSvc := service.NewUserService(s.UserRepo)

	authHandler := handler.NewAuthHandler(authSvc, userSvc, nil)

	s.Router = routes.SetupRouter(routes.HandlersConfig{
		AuthHandler: authHandler,
	}, s.Tokens, nil, nil, nil)
}

func TestAuthHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AuthHandlerSuite))
}

func (s *AuthHandlerSuite) doRequest(method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, gin.H) {
	var reader io.Reader

	if body != "" {
		reader = strings.NewReader(body)
	}

	req, _ := http.NewRequest(method, path, reader)

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	data := gin.H{}
	raw, _ := io.ReadAll(rr.Body)
	json.Unmarshal(raw, &data)

	return rr, data
}

func (s *AuthHandlerSuite) TestRegisterSuccess() {
	rr, data := s.doRequest("POST", "/api/auth/register",
		`{"name": "New User", "email": "new@example.com", "password": "Abcdef1"}`, nil)

	Expect(rr.Code).To(Equal(http.StatusCreated))
	Expect(data["success"]).To(BeTrue())
	Expect(data["token"]).ToNot(BeEmpty())

	user := data["user"].(map[string]any)
	Expect(user["name"]).To(Equal("New User"))
	Expect(user["email"]).To(Equal("new@example.com"))
	Expect(user["id"]).ToNot(BeEmpty())
	// The password hash never appears in a response.
	Expect(user).ToNot(HaveKey("password"))
}

func (s *AuthHandlerSuite) TestRegisterTokenResolvesToUser() {
	_, data := s.doRequest("POST", "/api/auth/register",
		`{"name": "New User", "email": "token@example.com", "password": "Abcdef1"}`, nil)

	user := data["user"].(map[string]any)

	verified, err := s.Tokens.VerifyToken(data["token"].(string))

	Expect(err).To(BeNil())
	Expect(verified.String()).To(Equal(user["id"]))
}

func (s *AuthHandlerSuite) TestRegisterWeakPassword() {
	rr, data := s.doRequest("POST", "/api/auth/register",
		`{"name": "New User", "email": "weak@example.com", "password": "abcdefg"}`, nil)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
	Expect(data["success"]).To(BeFalse())
	Expect(data["message"]).To(ContainSubstring("uppercase"))
}

func (s *AuthHandlerSuite) TestRegisterShortName() {
	rr, _ := s.doRequest("POST", "/api/auth/register",
		`{"name": "ab", "email": "short@example.com", "password": "Abcdef1"}`, nil)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func (s *AuthHandlerSuite) TestRegisterUnknownFieldRejected() {
	rr, _ := s.doRequest("POST", "/api/auth/register",
		`{"name": "New User", "email": "strict@example.com", "password": "Abcdef1", "role": "admin"}`, nil)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func (s *AuthHandlerSuite) TestRegisterDuplicateEmail() {
	body := `{"name": "New User", "email": "dup@example.com", "password": "Abcdef1"}`

	rr, _ := s.doRequest("POST", "/api/auth/register", body, nil)
	Expect(rr.Code).To(Equal(http.StatusCreated))

	rr, data := s.doRequest("POST", "/api/auth/register", body, nil)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
	Expect(data["message"]).To(Equal("Email already exists"))
}

func (s *AuthHandlerSuite) TestLoginSuccess() {
	s.doRequest("POST", "/api/auth/register",
		`{"name": "New User", "email": "login@example.com", "password": "Abcdef1"}`, nil)

	rr, data := s.doRequest("POST", "/api/auth/login",
		`{"email": "login@example.com", "password": "Abcdef1"}`, nil)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(data["success"]).To(BeTrue())
	Expect(data["token"]).ToNot(BeEmpty())
}

func (s *AuthHandlerSuite) TestLoginStripsUnknownFields() {
	s.doRequest("POST", "/api/auth/register",
		`{"name": "New User", "email": "strip@example.com", "password": "Abcdef1"}`, nil)

	// A leftover name field is stripped, not rejected.
	rr, _ := s.doRequest("POST", "/api/auth/login",
		`{"name": "New User", "email": "strip@example.com", "password": "Abcdef1"}`, nil)

	Expect(rr.Code).To(Equal(http.StatusOK))
}

func (s *AuthHandlerSuite) TestLoginInvalidCredentialsIndistinguishable() {
	s.doRequest("POST", "/api/auth/register",
		`{"name": "New User", "email": "victim@example.com", "password": "Abcdef1"}`, nil)

	rr1, wrongPassword := s.doRequest("POST", "/api/auth/login",
		`{"email": "victim@example.com", "password": "Wrong1pass"}`, nil)

	rr2, unknownEmail := s.doRequest("POST", "/api/auth/login",
		`{"email": "nobody@example.com", "password": "Abcdef1"}`, nil)

	Expect(rr1.Code).To(Equal(http.StatusBadRequest))
	Expect(rr2.Code).To(Equal(http.StatusBadRequest))
	Expect(wrongPassword["message"]).To(Equal(unknownEmail["message"]))
}

func (s *AuthHandlerSuite) TestMeSuccess() {
	_, registered := s.doRequest("POST", "/api/auth/register",
		`{"name": "New User", "email": "me@example.com", "password": "Abcdef1"}`, nil)

	rr, data := s.doRequest("GET", "/api/auth/me", "", map[string]string{
		"Authorization": "Bearer " + registered["token"].(string),
	})

	Expect(rr.Code).To(Equal(http.StatusOK))

	user := data["user"].(map[string]any)
	Expect(user["email"]).To(Equal("me@example.com"))
}

func (s *AuthHandlerSuite) TestMeWithoutToken() {
	rr, data := s.doRequest("GET", "/api/auth/me", "", nil)

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
	Expect(data["message"]).To(Equal("Unauthorized request"))
}

func (s *AuthHandlerSuite) TestMeWithMalformedToken() {
	rr, _ := s.doRequest("GET", "/api/auth/me", "", map[string]string{
		"Authorization": "Bearer not-a-token",
	})

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}
