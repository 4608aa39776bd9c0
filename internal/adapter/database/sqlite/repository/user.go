package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	database "taskapi/internal/adapter/database/sqlite"
	"taskapi/internal/core/domain"
	"taskapi/internal/core/port"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func (ur *UserRepository) GetByUUID(ctx context.Context, uid uuid.UUID) (domain.User, error) {
	query := ur.db.QueryBuilder.
		Select("id", "uuid", "name", "email", "encrypted_password", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"uuid": uid.String()}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	return ur.scanOne(ctx, stmt, args)
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := ur.db.QueryBuilder.
		Select("id", "uuid", "name", "email", "encrypted_password", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"email": email}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	return ur.scanOne(ctx, stmt, args)
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query := ur.db.QueryBuilder.Insert("users").
		Columns("uuid", "name", "email", "encrypted_password", "created_at", "updated_at").
		Values(user.UUID.String(), user.Name, user.Email, user.EncryptedPassword, user.CreatedAt, user.UpdatedAt)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	result, err := ur.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		var sqliteErr sqlite3.Error

		// The unique index on email is the authoritative duplicate guard.
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.User{}, domain.ErrEmailTaken
		}

		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	user.ID, err = result.LastInsertId()

	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (ur *UserRepository) scanOne(ctx context.Context, stmt string, args []interface{}) (domain.User, error) {
	var user domain.User

	err := ur.db.QueryRowContext(ctx, stmt, args...).Scan(
		&user.ID,
		&user.UUID,
		&user.Name,
		&user.Email,
		&user.EncryptedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}

		return domain.User{}, err
	}

	return user, nil
}
