package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
	"job-finder-backend/pkg/logger"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const userColumns = `id, avatar_url, email, mobile_number, password, role, is_verified, created_at, updated_at`

// prefixedUserColumns qualifies the user column list with a table alias for
// joined selects.
func prefixedUserColumns(alias string) string {
	cols := strings.Split(userColumns, ", ")
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var avatarRaw []byte
	err := row.Scan(
		&user.ID, &avatarRaw, &user.Email, &user.MobileNumber, &user.Password,
		&user.Role, &user.IsVerified, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(avatarRaw) > 0 {
		if err := json.Unmarshal(avatarRaw, &user.AvatarURL); err != nil {
			return nil, err
		}
	}
	return &user, nil
}

func (r *userRepo) Get(ctx context.Context, q domain.UserQuery) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 OR email = $2`
	user, err := scanUser(r.db.QueryRow(ctx, query, q.ID, q.Email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Error("error retrieving user", "error", err)
		return nil, err
	}
	return user, nil
}

func (r *userRepo) Update(ctx context.Context, id int64, patch domain.UserPatch) error {
	b := newUpdateBuilder()
	if patch.Email != nil {
		b.Set("email", *patch.Email)
	}
	if patch.MobileNumber != nil {
		b.Set("mobile_number", *patch.MobileNumber)
	}
	if patch.Password != nil {
		b.Set("password", *patch.Password)
	}
	if patch.IsVerified != nil {
		b.Set("is_verified", *patch.IsVerified)
	}
	if patch.AvatarURL != nil {
		raw, err := json.Marshal(patch.AvatarURL)
		if err != nil {
			return err
		}
		b.Set("avatar_url", raw)
	}
	if b.Empty() {
		return nil
	}
	b.Set("updated_at", time.Now())

	query, args := b.Build("users", id)
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Validation("Email or mobile number is already in use.")
		}
		logger.Log.Error("error updating user", "error", err, "user_id", id)
		return err
	}
	return nil
}

func (r *userRepo) Remove(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("error removing user", "error", err, "user_id", id)
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("User not found.")
	}
	return nil
}

// insertUser is shared by the profile repositories so user and profile are
// created inside one transaction.
func insertUser(ctx context.Context, tx pgx.Tx, user *domain.User) error {
	query := `INSERT INTO users (email, mobile_number, password, role, is_verified)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id, created_at, updated_at`
	err := tx.QueryRow(ctx, query,
		user.Email, user.MobileNumber, user.Password, user.Role, user.IsVerified,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Validation("An account with this email or mobile number already exists.")
		}
		return err
	}
	return nil
}
