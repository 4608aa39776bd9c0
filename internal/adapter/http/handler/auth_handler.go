package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	. "taskapi/internal/adapter/http/helper"
	"taskapi/internal/adapter/http/middleware"
	. "taskapi/internal/adapter/http/validation"
	"taskapi/internal/core/model/request"
	"taskapi/internal/core/model/response"
	"taskapi/internal/core/port"
	"taskapi/internal/core/util"
	"taskapi/pkg/telemetry"
)

type AuthHandler struct {
	svc     port.AuthService
	users   port.UserService
	metrics *telemetry.AppMetrics
}

func NewAuthHandler(svc port.AuthService, users port.UserService, metrics *telemetry.AppMetrics) *AuthHandler {
	return &AuthHandler{
		svc:     svc,
		users:   users,
		metrics: metrics,
	}
}

// Register creates an account. Unknown body fields are rejected; the login
// schema below deliberately strips them instead.
func (a *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.BindParamsStrict[request.RegisterRequest](c)

	if err != nil {
		SendBadRequestError(c, "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	user, token, err := a.svc.Register(ctx, &params)

	if err != nil {
		slog.Error("Auth#Register", "error", err)
		RenderError(c, err)
		return
	}

	if a.metrics != nil {
		a.metrics.RecordUserOperation("register")
	}

	SendSuccess(c, http.StatusCreated, response.AuthResponse{
		Success: true,
		Token:   token,
		User:    response.NewUserResponse(user),
	})
}

func (a *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.BindParams[request.LoginRequest](c)

	if err != nil {
		SendBadRequestError(c, "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	user, token, err := a.svc.Login(ctx, &params)

	if err != nil {
		RenderError(c, err)
		return
	}

	if a.metrics != nil {
		a.metrics.RecordUserOperation("login")
	}

	SendSuccess(c, http.StatusOK, response.AuthResponse{
		Success: true,
		Token:   token,
		User:    response.NewUserResponse(user),
	})
}

// Me resolves the full user record behind the authenticated principal.
func (a *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	userUUID, ok := middleware.CurrentUserUUID(c)

	if !ok {
		SendUnauthorizedError(c)
		return
	}

	user, err := a.users.GetByUUID(ctx, userUUID)

	if err != nil {
		// A token for a vanished user is still unauthorized.
		SendUnauthorizedError(c)
		return
	}

	SendSuccess(c, http.StatusOK, response.MeResponse{
		Success: true,
		User:    response.NewUserResponse(user),
	})
}
