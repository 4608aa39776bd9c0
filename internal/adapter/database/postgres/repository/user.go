package repository

import (
	"context"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	database "taskapi/internal/adapter/database/postgres"
	"taskapi/internal/core/domain"
	"taskapi/internal/core/port"
)

const uniqueViolation = "23505"

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
		Where(sq.Eq{"uuid": uid}).
		Limit(1)

	sql, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	return ur.scanOne(ctx, sql, args)
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := ur.db.QueryBuilder.
		Select("id", "uuid", "name", "email", "encrypted_password", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"email": email}).
		Limit(1)

	sql, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	return ur.scanOne(ctx, sql, args)
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query := ur.db.QueryBuilder.Insert("users").
		Columns("uuid", "name", "email", "encrypted_password", "created_at", "updated_at").
		Values(user.UUID, user.Name, user.Email, user.EncryptedPassword, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	err = ur.db.QueryRow(ctx, stmt, args...).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError

		// The unique index on email is the authoritative duplicate guard.
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.User{}, domain.ErrEmailTaken
		}

		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	return user, nil
}

func (ur *UserRepository) scanOne(ctx context.Context, sql string, args []interface{}) (domain.User, error) {
	var user domain.User

	err := ur.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.UUID,
		&user.Name,
		&user.Email,
		&user.EncryptedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}

		return domain.User{}, err
	}

	return user, nil
}
