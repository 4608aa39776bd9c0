package response

import (
	"time"

	"taskapi/internal/core/domain"
)

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:    user.UUID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}

type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewTaskResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.UUID.String(),
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
	}
}

func NewTaskListResponse(tasks []domain.Task) TaskListResponse {
	items := make([]TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		items = append(items, NewTaskResponse(task))
	}

	return TaskListResponse{
		Success: true,
		Count:   len(items),
		Tasks:   items,
	}
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type MeResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

type TaskListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Tasks   []TaskResponse `json:"tasks"`
}

type TaskCreatedResponse struct {
	Success bool         `json:"success"`
	Task    TaskResponse `json:"task"`
}

type TaskDeletedResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	DeletedID string `json:"deletedId"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
