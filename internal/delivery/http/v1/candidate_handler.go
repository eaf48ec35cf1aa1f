package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
)

// CandidateHandler serves the candidate profile plus the public side of the
// job board: browsing, applying, and the candidate's own applications.
type CandidateHandler struct {
	candidateUC   domain.CandidateUsecase
	userUC        domain.UserUsecase
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
}

func NewCandidateHandler(
	r *gin.RouterGroup,
	candidateUC domain.CandidateUsecase,
	userUC domain.UserUsecase,
	jobUC domain.JobUsecase,
	applicationUC domain.ApplicationUsecase,
) {
	handler := &CandidateHandler{
		candidateUC:   candidateUC,
		userUC:        userUC,
		jobUC:         jobUC,
		applicationUC: applicationUC,
	}

	r.GET("/", handler.GetProfile)
	r.PATCH("/", handler.UpdateProfile)
	r.DELETE("/", handler.RemoveAccount)

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.ListJobs)
		jobs.GET("/:id", handler.ViewJob)
		jobs.POST("/:id/apply", handler.Apply)
	}
	r.GET("/applications", handler.ListApplications)
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.BadRequest("Invalid id parameter.")
	}
	return id, nil
}

// GetProfile godoc
// @Summary      Get candidate profile
// @Tags         candidate
// @Produce      json
// @Success      200  {object}  response.Envelope{payload=domain.CandidateDTO}
// @Failure      404  {object}  response.Envelope
// @Router       /candidate [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.candidateUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"candidate": profile})
}

// UpdateProfile godoc
// @Summary      Update candidate profile
// @Tags         candidate
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /candidate [patch]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	var patch domain.CandidatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.candidateUC.UpdateProfile(c.Request.Context(), userID, patch); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Profile updated."})
}

func (h *CandidateHandler) RemoveAccount(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	if err := h.userUC.RemoveAccount(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListJobs godoc
// @Summary      Browse active jobs
// @Description  Filter by title, location and a comma-separated list of types
// @Tags         jobs
// @Produce      json
// @Param        title     query  string  false  "Partial title match"
// @Param        location  query  string  false  "Partial location match"
// @Param        types     query  string  false  "Comma-separated job types"
// @Success      200  {object}  response.Envelope{payload=[]domain.Job}
// @Router       /candidate/jobs [get]
// @Security     BearerAuth
func (h *CandidateHandler) ListJobs(c *gin.Context) {
	q := domain.JobsQuery{
		Title:    c.Query("title"),
		Location: c.Query("location"),
	}
	if types := c.Query("types"); types != "" {
		for _, t := range strings.Split(types, ",") {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				q.Types = append(q.Types, trimmed)
			}
		}
	}

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), q)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"jobs": jobs})
}

// ViewJob returns one active job and counts the view.
func (h *CandidateHandler) ViewJob(c *gin.Context) {
	jobID, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.ViewJob(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"job": job})
}

// Apply godoc
// @Summary      Apply to a job
// @Tags         jobs
// @Produce      json
// @Success      201  {object}  response.Envelope{payload=domain.Application}
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /candidate/jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *CandidateHandler) Apply(c *gin.Context) {
	jobID, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	application, err := h.applicationUC.Apply(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{"application": application})
}

func (h *CandidateHandler) ListApplications(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	applications, err := h.applicationUC.ListOwn(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"applications": applications})
}
