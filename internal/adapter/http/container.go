package http

import (
	"time"

	"taskapi/internal/adapter/http/handler"
	"taskapi/internal/core/port"
	"taskapi/internal/core/service"
	"taskapi/pkg/auth"
	"taskapi/pkg/config"
	respcache "taskapi/pkg/response"
	"taskapi/pkg/telemetry"
)

const taskListCacheTTL = 3 * time.Second

type Container struct {
	UserRepo port.UserRepository
	TaskRepo port.TaskRepository

	Tokens port.TokenService
	Cache  *respcache.ResponseCache

	AuthHandler *handler.AuthHandler
	TaskHandler *handler.TaskHandler
}

func NewContainer(cfg *config.Config, userRepo port.UserRepository, taskRepo port.TaskRepository, metrics *telemetry.AppMetrics) *Container {
	tokens := auth.NewJWT(cfg.JWTSecret, cfg.JWTTTL)
	cache := respcache.NewResponseCache(taskListCacheTTL, metrics)

	authSvc := service.NewAuthService(userRepo, tokens)
	userSvc := service.NewUserService(userRepo)
	taskSvc := service.NewTaskService(taskRepo)

	return &Container{
		UserRepo: userRepo,
		TaskRepo: taskRepo,

		Tokens: tokens,
		Cache:  cache,

		AuthHandler: handler.NewAuthHandler(authSvc, userSvc, metrics),
		TaskHandler: handler.NewTaskHandler(taskSvc, cache, metrics),
	}
}
