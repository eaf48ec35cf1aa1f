package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/logger"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) CreateWithUser(ctx context.Context, user *domain.User, admin *domain.Admin) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := insertUser(ctx, tx, user); err != nil {
		return err
	}

	admin.UserID = user.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO admins (first_name, last_name, user_id)
         VALUES ($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		admin.FirstName, admin.LastName, admin.UserID,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		logger.Log.Error("error creating admin", "error", err)
		return err
	}

	return tx.Commit(ctx)
}

func (r *adminRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Admin, error) {
	query := `SELECT a.id, a.first_name, a.last_name, a.user_id, a.created_at, a.updated_at,
                     ` + prefixedUserColumns("u") + `
              FROM admins a
              JOIN users u ON u.id = a.user_id
              WHERE a.user_id = $1`

	var admin domain.Admin
	var user domain.User
	var avatarRaw []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&admin.ID, &admin.FirstName, &admin.LastName, &admin.UserID,
		&admin.CreatedAt, &admin.UpdatedAt,
		&user.ID, &avatarRaw, &user.Email, &user.MobileNumber, &user.Password,
		&user.Role, &user.IsVerified, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Error("error retrieving admin", "error", err, "user_id", userID)
		return nil, err
	}
	if len(avatarRaw) > 0 {
		if err := json.Unmarshal(avatarRaw, &user.AvatarURL); err != nil {
			return nil, err
		}
	}
	admin.User = &user
	return &admin, nil
}
