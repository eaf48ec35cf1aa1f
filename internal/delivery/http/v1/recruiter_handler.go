package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
)

// RecruiterHandler serves the recruiter profile and the management side of
// the job board: posting jobs and working through their applications.
type RecruiterHandler struct {
	recruiterUC   domain.RecruiterUsecase
	userUC        domain.UserUsecase
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
}

func NewRecruiterHandler(
	r *gin.RouterGroup,
	recruiterUC domain.RecruiterUsecase,
	userUC domain.UserUsecase,
	jobUC domain.JobUsecase,
	applicationUC domain.ApplicationUsecase,
) {
	handler := &RecruiterHandler{
		recruiterUC:   recruiterUC,
		userUC:        userUC,
		jobUC:         jobUC,
		applicationUC: applicationUC,
	}

	r.GET("/", handler.GetProfile)
	r.PATCH("/", handler.UpdateProfile)
	r.DELETE("/", handler.RemoveAccount)

	jobs := r.Group("/jobs")
	{
		jobs.POST("", handler.CreateJob)
		jobs.GET("", handler.ListJobs)
		jobs.GET("/:id", handler.GetJob)
		jobs.PATCH("/:id", handler.UpdateJob)
		jobs.DELETE("/:id", handler.RemoveJob)
		jobs.GET("/:id/applications", handler.ListApplications)
	}
	r.PATCH("/applications/:id/status", handler.SetApplicationStatus)
}

// GetProfile godoc
// @Summary      Get recruiter profile
// @Tags         recruiter
// @Produce      json
// @Success      200  {object}  response.Envelope{payload=domain.RecruiterDTO}
// @Failure      404  {object}  response.Envelope
// @Router       /recruiter [get]
// @Security     BearerAuth
func (h *RecruiterHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.recruiterUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"recruiter": profile})
}

func (h *RecruiterHandler) UpdateProfile(c *gin.Context) {
	var patch domain.RecruiterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.recruiterUC.UpdateProfile(c.Request.Context(), userID, patch); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Profile updated."})
}

func (h *RecruiterHandler) RemoveAccount(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	if err := h.userUC.RemoveAccount(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateJob godoc
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Success      201  {object}  response.Envelope{payload=domain.Job}
// @Failure      400  {object}  response.Envelope
// @Router       /recruiter/jobs [post]
// @Security     BearerAuth
func (h *RecruiterHandler) CreateJob(c *gin.Context) {
	var req domain.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	job, err := h.jobUC.CreateJob(c.Request.Context(), userID, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{"job": job})
}

func (h *RecruiterHandler) ListJobs(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	jobs, err := h.jobUC.ListOwnJobs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"jobs": jobs})
}

func (h *RecruiterHandler) GetJob(c *gin.Context) {
	jobID, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	job, err := h.jobUC.GetOwnJob(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"job": job})
}

func (h *RecruiterHandler) UpdateJob(c *gin.Context) {
	jobID, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var patch domain.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.jobUC.UpdateJob(c.Request.Context(), userID, jobID, patch); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Job updated."})
}

func (h *RecruiterHandler) RemoveJob(c *gin.Context) {
	jobID, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.jobUC.RemoveJob(c.Request.Context(), userID, jobID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListApplications godoc
// @Summary      List applications for an owned job
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Envelope{payload=[]domain.Application}
// @Failure      404  {object}  response.Envelope
// @Router       /recruiter/jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *RecruiterHandler) ListApplications(c *gin.Context) {
	jobID, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	applications, err := h.applicationUC.ListForJob(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"applications": applications})
}

func (h *RecruiterHandler) SetApplicationStatus(c *gin.Context) {
	applicationID, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req domain.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.applicationUC.SetStatus(c.Request.Context(), userID, applicationID, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Application status updated."})
}
