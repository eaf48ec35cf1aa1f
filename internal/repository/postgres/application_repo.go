package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
	"job-finder-backend/pkg/logger"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, application *domain.Application) error {
	query := `INSERT INTO applications (job_id, candidate_id, status)
              VALUES ($1, $2, $3)
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		application.JobID, application.CandidateID, application.Status,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Validation("You have already applied to this job.")
		}
		logger.Log.Error("error creating application", "error", err,
			"job_id", application.JobID, "candidate_id", application.CandidateID)
		return err
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT id, job_id, candidate_id, status, created_at, updated_at
              FROM applications WHERE id = $1`

	var a domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.JobID, &a.CandidateID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Error("error retrieving application", "error", err, "application_id", id)
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) GetByJobAndCandidate(ctx context.Context, jobID, candidateID int64) (*domain.Application, error) {
	query := `SELECT id, job_id, candidate_id, status, created_at, updated_at
              FROM applications WHERE job_id = $1 AND candidate_id = $2`

	var a domain.Application
	err := r.db.QueryRow(ctx, query, jobID, candidateID).Scan(
		&a.ID, &a.JobID, &a.CandidateID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Error("error retrieving application", "error", err,
			"job_id", jobID, "candidate_id", candidateID)
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	query := `SELECT a.id, a.job_id, a.candidate_id, a.status, a.created_at, a.updated_at,
                     j.id, j.title, j.description, j.responsibility, j.requirements,
                     j.benefits, j.location, j.type, j.vacancy, j.deadline, j.tags,
                     j.recruiter_id, j.views, j.is_active, j.created_at, j.updated_at
              FROM applications a
              JOIN jobs j ON j.id = a.job_id
              WHERE a.candidate_id = $1
              ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		logger.Log.Error("error listing applications", "error", err, "candidate_id", candidateID)
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var a domain.Application
		var j domain.Job
		err := rows.Scan(
			&a.ID, &a.JobID, &a.CandidateID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&j.ID, &j.Title, &j.Description, &j.Responsibility, &j.Requirements,
			&j.Benefits, &j.Location, &j.Type, &j.Vacancy, &j.Deadline, &j.Tags,
			&j.RecruiterID, &j.Views, &j.IsActive, &j.CreatedAt, &j.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		a.Job = &j
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `SELECT id, job_id, candidate_id, status, created_at, updated_at
              FROM applications
              WHERE job_id = $1
              ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		logger.Log.Error("error listing applications", "error", err, "job_id", jobID)
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var a domain.Application
		err := rows.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id,
	)
	if err != nil {
		logger.Log.Error("error updating application status", "error", err, "application_id", id)
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Application not found.")
	}
	return nil
}
