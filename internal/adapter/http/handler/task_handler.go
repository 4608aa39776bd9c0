package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	. "taskapi/internal/adapter/http/helper"
	"taskapi/internal/adapter/http/middleware"
	. "taskapi/internal/adapter/http/validation"
	"taskapi/internal/core/domain"
	"taskapi/internal/core/model/request"
	"taskapi/internal/core/model/response"
	"taskapi/internal/core/port"
	"taskapi/internal/core/util"
	respcache "taskapi/pkg/response"
	"taskapi/pkg/telemetry"
	. "taskapi/pkg/tracing"
)

const tasksPath = "/api/tasks"

type TaskHandler struct {
	svc     port.TaskService
	cache   *respcache.ResponseCache
	metrics *telemetry.AppMetrics
}

func NewTaskHandler(svc port.TaskService, cache *respcache.ResponseCache, metrics *telemetry.AppMetrics) *TaskHandler {
	return &TaskHandler{
		svc:     svc,
		cache:   cache,
		metrics: metrics,
	}
}

func (t *TaskHandler) GetAllTasks(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.task.GetAllTasks", []attribute.KeyValue{
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})

	defer span.End()

	userUUID, ok := middleware.CurrentUserUUID(c)

	if !ok {
		SendUnauthorizedError(c)
		return
	}

	span.SetAttributes(attribute.String("user.uuid", userUUID.String()))

	tasks, err := t.svc.ListByUser(ctx, userUUID)

	if err != nil {
		AddSpanError(span, err)
		slog.Error("Error getting tasks", "error", err)
		RenderError(c, err)
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTaskOperation("list")
	}

	SendSuccess(c, http.StatusOK, response.NewTaskListResponse(tasks))
}

func (t *TaskHandler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	userUUID, ok := middleware.CurrentUserUUID(c)

	if !ok {
		SendUnauthorizedError(c)
		return
	}

	params, err := util.BindParamsStrict[request.CreateTaskRequest](c)

	if err != nil {
		SendBadRequestError(c, "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	task := domain.Task{
		UserUUID:    userUUID,
		Title:       params.Title,
		Description: params.Description,
		Completed:   params.Completed,
	}

	task, err = t.svc.Create(ctx, task)

	if err != nil {
		slog.Error("Error creating task", "error", err)
		RenderError(c, err)
		return
	}

	t.afterMutation(userUUID, "create")

	SendSuccess(c, http.StatusCreated, response.TaskCreatedResponse{
		Success: true,
		Task:    response.NewTaskResponse(task),
	})
}

func (t *TaskHandler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	userUUID, ok := middleware.CurrentUserUUID(c)

	if !ok {
		SendUnauthorizedError(c)
		return
	}

	uid, err := uuid.Parse(c.Param("id"))

	if err != nil {
		// An unparsable id and a foreign id look the same to the caller.
		RenderError(c, domain.ErrTaskNotFound)
		return
	}

	params, err := util.BindParamsStrict[request.UpdateTaskRequest](c)

	if err != nil {
		SendBadRequestError(c, "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	patch := domain.TaskPatch{
		Title:       params.Title,
		Description: params.Description,
		Completed:   params.Completed,
	}

	task, err := t.svc.UpdateByUUID(ctx, uid, userUUID, patch)

	if err != nil {
		RenderError(c, err)
		return
	}

	t.afterMutation(userUUID, "update")

	SendSuccess(c, http.StatusOK, response.TaskCreatedResponse{
		Success: true,
		Task:    response.NewTaskResponse(task),
	})
}

func (t *TaskHandler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	userUUID, ok := middleware.CurrentUserUUID(c)

	if !ok {
		SendUnauthorizedError(c)
		return
	}

	uid, err := uuid.Parse(c.Param("id"))

	if err != nil {
		RenderError(c, domain.ErrTaskNotFound)
		return
	}

	if err := t.svc.DeleteByUUID(ctx, uid, userUUID); err != nil {
		RenderError(c, err)
		return
	}

	t.afterMutation(userUUID, "delete")

	SendSuccess(c, http.StatusOK, response.TaskDeletedResponse{
		Success:   true,
		Message:   "Task deleted successfully",
		DeletedID: uid.String(),
	})
}

func (t *TaskHandler) afterMutation(userUUID uuid.UUID, operation string) {
	if t.cache != nil {
		t.cache.Invalidate(userUUID, tasksPath)
	}

	if t.metrics != nil {
		t.metrics.RecordTaskOperation(operation)
	}
}
