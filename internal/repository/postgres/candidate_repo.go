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

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) CreateWithUser(ctx context.Context, user *domain.User, candidate *domain.Candidate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := insertUser(ctx, tx, user); err != nil {
		return err
	}

	candidate.UserID = user.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO candidates (first_name, last_name, title, skills, is_employed, user_id)
         VALUES ($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		candidate.FirstName, candidate.LastName, candidate.Title,
		candidate.Skills, candidate.IsEmployed, candidate.UserID,
	).Scan(&candidate.ID, &candidate.CreatedAt, &candidate.UpdatedAt)
	if err != nil {
		logger.Log.Error("error creating candidate", "error", err)
		return err
	}

	return tx.Commit(ctx)
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Candidate, error) {
	query := `SELECT c.id, c.first_name, c.last_name, c.title, c.skills, c.is_employed,
                     c.user_id, c.created_at, c.updated_at,
                     ` + prefixedUserColumns("u") + `
              FROM candidates c
              JOIN users u ON u.id = c.user_id
              WHERE c.user_id = $1`

	var candidate domain.Candidate
	var user domain.User
	var avatarRaw []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&candidate.ID, &candidate.FirstName, &candidate.LastName, &candidate.Title,
		&candidate.Skills, &candidate.IsEmployed, &candidate.UserID,
		&candidate.CreatedAt, &candidate.UpdatedAt,
		&user.ID, &avatarRaw, &user.Email, &user.MobileNumber, &user.Password,
		&user.Role, &user.IsVerified, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Error("error retrieving candidate", "error", err, "user_id", userID)
		return nil, err
	}
	if len(avatarRaw) > 0 {
		if err := json.Unmarshal(avatarRaw, &user.AvatarURL); err != nil {
			return nil, err
		}
	}
	candidate.User = &user
	return &candidate, nil
}

func (r *candidateRepo) Update(ctx context.Context, id int64, patch domain.CandidatePatch) error {
	b := newUpdateBuilder()
	if patch.FirstName != nil {
		b.Set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		b.Set("last_name", *patch.LastName)
	}
	if patch.Title != nil {
		b.Set("title", *patch.Title)
	}
	if patch.Skills != nil {
		b.Set("skills", patch.Skills)
	}
	if patch.IsEmployed != nil {
		b.Set("is_employed", *patch.IsEmployed)
	}
	if b.Empty() {
		return nil
	}
	b.Set("updated_at", time.Now())

	query, args := b.Build("candidates", id)
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		logger.Log.Error("error updating candidate", "error", err, "candidate_id", id)
		return err
	}
	return nil
}

func (r *candidateRepo) List(ctx context.Context, q domain.CandidatesQuery) ([]domain.Candidate, error) {
	query := `SELECT id, first_name, last_name, title, skills, is_employed,
                     user_id, created_at, updated_at
              FROM candidates
              WHERE ($1::text[] IS NULL OR skills && $1)
                AND ($2::boolean IS NULL OR is_employed = $2)
              ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, q.Skills, q.IsEmployed)
	if err != nil {
		logger.Log.Error("error listing candidates", "error", err)
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Title, &c.Skills, &c.IsEmployed,
			&c.UserID, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
