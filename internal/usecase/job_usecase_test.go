package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"job-finder-backend/internal/domain"
	"job-finder-backend/internal/usecase"
)

func TestJobOwnership(t *testing.T) {
	ctx := context.Background()
	recruiter := &domain.Recruiter{ID: 7, UserID: 70}

	t.Run("a foreign job is reported as missing", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		recruiterRepo := new(MockRecruiterRepo)
		uc := usecase.NewJobUsecase(jobRepo, recruiterRepo)

		recruiterRepo.On("GetByUserID", mock.Anything, int64(70)).Return(recruiter, nil)
		jobRepo.On("GetByID", mock.Anything, int64(3)).
			Return(&domain.Job{ID: 3, RecruiterID: 8}, nil)

		_, err := uc.GetOwnJob(ctx, 70, 3)

		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})

	t.Run("updating a foreign job never reaches the repository", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		recruiterRepo := new(MockRecruiterRepo)
		uc := usecase.NewJobUsecase(jobRepo, recruiterRepo)

		recruiterRepo.On("GetByUserID", mock.Anything, int64(70)).Return(recruiter, nil)
		jobRepo.On("GetByID", mock.Anything, int64(3)).
			Return(&domain.Job{ID: 3, RecruiterID: 8}, nil)

		title := "New title"
		err := uc.UpdateJob(ctx, 70, 3, domain.JobPatch{Title: &title})

		assert.Equal(t, http.StatusNotFound, appCode(t, err))
		jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestViewJob(t *testing.T) {
	ctx := context.Background()

	t.Run("inactive jobs are invisible", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, new(MockRecruiterRepo))

		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, IsActive: false}, nil)

		_, err := uc.ViewJob(ctx, 1)

		assert.Equal(t, http.StatusNotFound, appCode(t, err))
		jobRepo.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
	})

	t.Run("viewing counts", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo, new(MockRecruiterRepo))

		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, IsActive: true, Views: 4}, nil)
		jobRepo.On("IncrementViews", mock.Anything, int64(1)).Return(nil)

		job, err := uc.ViewJob(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, 5, job.Views)
	})
}

func TestListJobsForcesActiveOnly(t *testing.T) {
	jobRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(jobRepo, new(MockRecruiterRepo))

	jobRepo.On("List", mock.Anything, mock.MatchedBy(func(q domain.JobsQuery) bool {
		return q.ActiveOnly
	})).Return([]domain.Job{}, nil)

	_, err := uc.ListJobs(context.Background(), domain.JobsQuery{Title: "go"})

	assert.NoError(t, err)
	jobRepo.AssertExpectations(t)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	candidate := &domain.Candidate{ID: 2, UserID: 20}
	activeJob := func() *domain.Job {
		return &domain.Job{ID: 1, IsActive: true, Deadline: time.Now().Add(24 * time.Hour)}
	}

	newFixture := func() (domain.ApplicationUsecase, *MockApplicationRepo, *MockJobRepo, *MockCandidateRepo) {
		applicationRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(applicationRepo, jobRepo, candidateRepo, new(MockRecruiterRepo))
		return uc, applicationRepo, jobRepo, candidateRepo
	}

	t.Run("creates a pending application", func(t *testing.T) {
		uc, applicationRepo, jobRepo, candidateRepo := newFixture()
		candidateRepo.On("GetByUserID", mock.Anything, int64(20)).Return(candidate, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(activeJob(), nil)
		applicationRepo.On("GetByJobAndCandidate", mock.Anything, int64(1), int64(2)).Return(nil, nil)
		applicationRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Application) bool {
			return a.Status == domain.ApplicationPending && a.CandidateID == 2
		})).Return(nil)

		application, err := uc.Apply(ctx, 20, 1)

		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationPending, application.Status)
	})

	t.Run("duplicate application is rejected", func(t *testing.T) {
		uc, applicationRepo, jobRepo, candidateRepo := newFixture()
		candidateRepo.On("GetByUserID", mock.Anything, int64(20)).Return(candidate, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(activeJob(), nil)
		applicationRepo.On("GetByJobAndCandidate", mock.Anything, int64(1), int64(2)).
			Return(&domain.Application{ID: 9}, nil)

		_, err := uc.Apply(ctx, 20, 1)

		assert.Equal(t, http.StatusUnprocessableEntity, appCode(t, err))
		applicationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("expired deadline is rejected", func(t *testing.T) {
		uc, _, jobRepo, candidateRepo := newFixture()
		candidateRepo.On("GetByUserID", mock.Anything, int64(20)).Return(candidate, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, IsActive: true, Deadline: time.Now().Add(-time.Hour)}, nil)

		_, err := uc.Apply(ctx, 20, 1)

		assert.Equal(t, http.StatusUnprocessableEntity, appCode(t, err))
	})
}
