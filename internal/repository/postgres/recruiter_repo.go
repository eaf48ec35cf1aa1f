package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/logger"
)

type recruiterRepo struct {
	db *pgxpool.Pool
}

func NewRecruiterRepository(db *pgxpool.Pool) domain.RecruiterRepository {
	return &recruiterRepo{db: db}
}

func (r *recruiterRepo) CreateWithUser(ctx context.Context, user *domain.User, recruiter *domain.Recruiter) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := insertUser(ctx, tx, user); err != nil {
		return err
	}

	recruiter.UserID = user.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO recruiters (name, industry, website_url, location, description,
                                 size, founded_in, is_verified, user_id)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING id, created_at, updated_at`,
		recruiter.Name, recruiter.Industry, recruiter.WebsiteURL, recruiter.Location,
		recruiter.Description, recruiter.Size, recruiter.FoundedIn,
		recruiter.IsVerified, recruiter.UserID,
	).Scan(&recruiter.ID, &recruiter.CreatedAt, &recruiter.UpdatedAt)
	if err != nil {
		logger.Log.Error("error creating recruiter", "error", err)
		return err
	}

	return tx.Commit(ctx)
}

func (r *recruiterRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Recruiter, error) {
	query := `SELECT r.id, r.name, r.industry, r.website_url, r.location, r.description,
                     r.size, r.founded_in, r.is_verified, r.user_id, r.created_at, r.updated_at,
                     ` + prefixedUserColumns("u") + `
              FROM recruiters r
              JOIN users u ON u.id = r.user_id
              WHERE r.user_id = $1`

	var recruiter domain.Recruiter
	var user domain.User
	var avatarRaw []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&recruiter.ID, &recruiter.Name, &recruiter.Industry, &recruiter.WebsiteURL,
		&recruiter.Location, &recruiter.Description, &recruiter.Size, &recruiter.FoundedIn,
		&recruiter.IsVerified, &recruiter.UserID, &recruiter.CreatedAt, &recruiter.UpdatedAt,
		&user.ID, &avatarRaw, &user.Email, &user.MobileNumber, &user.Password,
		&user.Role, &user.IsVerified, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Error("error retrieving recruiter", "error", err, "user_id", userID)
		return nil, err
	}
	if len(avatarRaw) > 0 {
		if err := json.Unmarshal(avatarRaw, &user.AvatarURL); err != nil {
			return nil, err
		}
	}
	recruiter.User = &user
	return &recruiter, nil
}

func (r *recruiterRepo) Update(ctx context.Context, id int64, patch domain.RecruiterPatch) error {
	b := newUpdateBuilder()
	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.Industry != nil {
		b.Set("industry", *patch.Industry)
	}
	if patch.WebsiteURL != nil {
		b.Set("website_url", *patch.WebsiteURL)
	}
	if patch.Location != nil {
		b.Set("location", *patch.Location)
	}
	if patch.Description != nil {
		b.Set("description", *patch.Description)
	}
	if patch.Size != nil {
		b.Set("size", *patch.Size)
	}
	if patch.FoundedIn != nil {
		b.Set("founded_in", *patch.FoundedIn)
	}
	if b.Empty() {
		return nil
	}
	b.Set("updated_at", time.Now())

	query, args := b.Build("recruiters", id)
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		logger.Log.Error("error updating recruiter", "error", err, "recruiter_id", id)
		return err
	}
	return nil
}

func (r *recruiterRepo) List(ctx context.Context, q domain.RecruitersQuery) ([]domain.Recruiter, error) {
	query := `SELECT id, name, industry, website_url, location, description,
                     size, founded_in, is_verified, user_id, created_at, updated_at
              FROM recruiters
              WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
                AND ($2 = '' OR industry ILIKE '%' || $2 || '%')
                AND ($3 = '' OR location ILIKE '%' || $3 || '%')
                AND ($4::boolean IS NULL OR is_verified = $4)
              ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, q.Name, q.Industry, q.Location, q.IsVerified)
	if err != nil {
		logger.Log.Error("error listing recruiters", "error", err)
		return nil, err
	}
	defer rows.Close()

	var recruiters []domain.Recruiter
	for rows.Next() {
		var rec domain.Recruiter
		err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Industry, &rec.WebsiteURL, &rec.Location,
			&rec.Description, &rec.Size, &rec.FoundedIn, &rec.IsVerified,
			&rec.UserID, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		recruiters = append(recruiters, rec)
	}
	return recruiters, rows.Err()
}
