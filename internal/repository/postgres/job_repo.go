package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
	"job-finder-backend/pkg/logger"
)

const jobColumns = `id, title, description, responsibility, requirements, benefits,
                    location, type, vacancy, deadline, tags, recruiter_id, views,
                    is_active, created_at, updated_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(
		&job.ID, &job.Title, &job.Description, &job.Responsibility,
		&job.Requirements, &job.Benefits, &job.Location, &job.Type,
		&job.Vacancy, &job.Deadline, &job.Tags, &job.RecruiterID,
		&job.Views, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, description, responsibility, requirements,
                                benefits, location, type, vacancy, deadline, tags,
                                recruiter_id, is_active)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
              RETURNING id, views, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		job.Title, job.Description, job.Responsibility, job.Requirements,
		job.Benefits, job.Location, job.Type, job.Vacancy, job.Deadline,
		job.Tags, job.RecruiterID, job.IsActive,
	).Scan(&job.ID, &job.Views, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		logger.Log.Error("error creating job", "error", err, "recruiter_id", job.RecruiterID)
		return err
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Error("error retrieving job", "error", err, "job_id", id)
		return nil, err
	}
	return job, nil
}

func (r *jobRepo) List(ctx context.Context, q domain.JobsQuery) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + `
              FROM jobs
              WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
                AND ($2 = '' OR location ILIKE '%' || $2 || '%')
                AND ($3::text[] IS NULL OR type = ANY($3))
                AND (NOT $4::boolean OR (is_active AND deadline > now()))
              ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, q.Title, q.Location, q.Types, q.ActiveOnly)
	if err != nil {
		logger.Log.Error("error listing jobs", "error", err)
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *jobRepo) ListByRecruiter(ctx context.Context, recruiterID int64) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + `
              FROM jobs
              WHERE recruiter_id = $1
              ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		logger.Log.Error("error listing recruiter jobs", "error", err, "recruiter_id", recruiterID)
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func collectJobs(rows pgx.Rows) ([]domain.Job, error) {
	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, id int64, patch domain.JobPatch) error {
	b := newUpdateBuilder()
	if patch.Title != nil {
		b.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		b.Set("description", *patch.Description)
	}
	if patch.Responsibility != nil {
		b.Set("responsibility", *patch.Responsibility)
	}
	if patch.Requirements != nil {
		b.Set("requirements", patch.Requirements)
	}
	if patch.Benefits != nil {
		b.Set("benefits", patch.Benefits)
	}
	if patch.Location != nil {
		b.Set("location", *patch.Location)
	}
	if patch.Type != nil {
		b.Set("type", *patch.Type)
	}
	if patch.Vacancy != nil {
		b.Set("vacancy", *patch.Vacancy)
	}
	if patch.Deadline != nil {
		b.Set("deadline", *patch.Deadline)
	}
	if patch.Tags != nil {
		b.Set("tags", patch.Tags)
	}
	if patch.IsActive != nil {
		b.Set("is_active", *patch.IsActive)
	}
	if b.Empty() {
		return nil
	}
	b.Set("updated_at", time.Now())

	query, args := b.Build("jobs", id)
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		logger.Log.Error("error updating job", "error", err, "job_id", id)
		return err
	}
	return nil
}

func (r *jobRepo) Remove(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("error removing job", "error", err, "job_id", id)
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Job not found.")
	}
	return nil
}

func (r *jobRepo) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("error incrementing job views", "error", err, "job_id", id)
	}
	return err
}
