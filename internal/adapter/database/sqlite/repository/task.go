package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	database "taskapi/internal/adapter/database/sqlite"
	"taskapi/internal/core/domain"
	"taskapi/internal/core/port"
	"taskapi/pkg/tracing"
)

type TaskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) port.TaskRepository {
	return &TaskRepository{db: db}
}

func (tr *TaskRepository) ListByUser(ctx context.Context, userUUID uuid.UUID) ([]domain.Task, error) {
	ctx, span := tracing.CreateChildSpan(ctx, "db.task.ListByUser", []attribute.KeyValue{
		attribute.String("db.table", "tasks"),
		attribute.String("db.operation", "SELECT"),
		attribute.String("user.uuid", userUUID.String()),
	})

	defer span.End()

	query := tr.db.QueryBuilder.
		Select("id", "uuid", "user_uuid", "title", "description", "completed", "created_at", "updated_at").
		From("tasks").
		Where(sq.Eq{"user_uuid": userUUID.String()}).
		OrderBy("created_at DESC, id DESC")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		tracing.AddSpanError(span, err)
		slog.Error("Error fetching tasks", "error", err)
		return nil, err
	}

	defer rows.Close()

	data := []domain.Task{}

	for rows.Next() {
		var task domain.Task

		err = rows.Scan(
			&task.ID,
			&task.UUID,
			&task.UserUUID,
			&task.Title,
			&task.Description,
			&task.Completed,
			&task.CreatedAt,
			&task.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		data = append(data, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("db.rows_returned", len(data)))

	return data, nil
}

func (tr *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	query := tr.db.QueryBuilder.Insert("tasks").
		Columns("uuid", "user_uuid", "title", "description", "completed", "created_at", "updated_at").
		Values(task.UUID.String(), task.UserUUID.String(), task.Title, task.Description, task.Completed, task.CreatedAt, task.UpdatedAt)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error creating task", "error", err)
		return domain.Task{}, err
	}

	task.ID, err = result.LastInsertId()

	if err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (tr *TaskRepository) UpdateByUUID(ctx context.Context, uid uuid.UUID, userUUID uuid.UUID, patch domain.TaskPatch) (domain.Task, error) {
	if patch.IsEmpty() {
		return tr.getByUUIDForUser(ctx, uid, userUUID)
	}

	set := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if patch.Title != nil {
		set["title"] = *patch.Title
	}

	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	if patch.Completed != nil {
		set["completed"] = *patch.Completed
	}

	query := tr.db.QueryBuilder.Update("tasks").
		SetMap(set).
		Where(sq.Eq{"uuid": uid.String()}).
		Where(sq.Eq{"user_uuid": userUUID.String()})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error updating task", "error", err)
		return domain.Task{}, err
	}

	affected, err := result.RowsAffected()

	if err != nil {
		return domain.Task{}, err
	}

	// A missing row and a foreign owner are indistinguishable here.
	if affected == 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	return tr.getByUUIDForUser(ctx, uid, userUUID)
}

func (tr *TaskRepository) DeleteByUUID(ctx context.Context, uid uuid.UUID, userUUID uuid.UUID) error {
	query := tr.db.QueryBuilder.Delete("tasks").
		Where(sq.Eq{"uuid": uid.String()}).
		Where(sq.Eq{"user_uuid": userUUID.String()})

	stmt, args, err := query.ToSql()

	if err != nil {
		return err
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error deleting task", "error", err)
		return err
	}

	affected, err := result.RowsAffected()

	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (tr *TaskRepository) getByUUIDForUser(ctx context.Context, uid uuid.UUID, userUUID uuid.UUID) (domain.Task, error) {
	query := tr.db.QueryBuilder.
		Select("id", "uuid", "user_uuid", "title", "description", "completed", "created_at", "updated_at").
		From("tasks").
		Where(sq.Eq{"uuid": uid.String()}).
		Where(sq.Eq{"user_uuid": userUUID.String()}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	var task domain.Task

	err = tr.db.QueryRowContext(ctx, stmt, args...).Scan(
		&task.ID,
		&task.UUID,
		&task.UserUUID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}

		return domain.Task{}, err
	}

	return task, nil
}
