package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"job-finder-backend/config"
	"job-finder-backend/internal/delivery/http/middleware"
	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/token"
)

// RouterDeps bundles everything the per-service routers need. Each service
// constructor uses the subset relevant to its namespace.
type RouterDeps struct {
	Config *config.Config
	Tokens *token.Manager

	AuthUC        domain.AuthUsecase
	UserUC        domain.UserUsecase
	AdminUC       domain.AdminUsecase
	CandidateUC   domain.CandidateUsecase
	RecruiterUC   domain.RecruiterUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	PayrollUC     domain.PayrollUsecase
}

// newBaseRouter wires the middleware stack every service shares and returns
// the /api/v1 group.
func newBaseRouter(cfg *config.Config) (*gin.Engine, *gin.RouterGroup) {
	r := gin.New()

	// CORS must run before anything that can short-circuit the request.
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(middleware.GlobalRateLimitConfig()))

	api := r.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, api
}

// NewAuthRouter serves the authentication service: sessions, registration,
// activation and password recovery for all roles.
func NewAuthRouter(deps RouterDeps) *gin.Engine {
	r, api := newBaseRouter(deps.Config)

	NewAuthHandler(api, deps.AuthUC, deps.Tokens, deps.Config)

	return r
}

// NewAdminRouter serves the admin namespace: profile, account operations and
// the payroll subsystem.
func NewAdminRouter(deps RouterDeps) *gin.Engine {
	r, api := newBaseRouter(deps.Config)

	admin := api.Group("/admin")
	admin.Use(middleware.Authorize(deps.Tokens, domain.RoleAdmin))
	{
		NewAdminHandler(admin, deps.AdminUC)
		NewUserHandler(admin, deps.UserUC)
		NewPayrollHandler(admin, deps.PayrollUC)
	}

	return r
}

// NewCandidateRouter serves the candidate namespace: profile, account
// operations and the job board.
func NewCandidateRouter(deps RouterDeps) *gin.Engine {
	r, api := newBaseRouter(deps.Config)

	candidate := api.Group("/candidate")
	candidate.Use(middleware.Authorize(deps.Tokens, domain.RoleCandidate))
	{
		NewCandidateHandler(candidate, deps.CandidateUC, deps.UserUC, deps.JobUC, deps.ApplicationUC)
		NewUserHandler(candidate, deps.UserUC)
	}

	return r
}

// NewRecruiterRouter serves the recruiter namespace: profile, account
// operations, job management and applications.
func NewRecruiterRouter(deps RouterDeps) *gin.Engine {
	r, api := newBaseRouter(deps.Config)

	recruiter := api.Group("/recruiter")
	recruiter.Use(middleware.Authorize(deps.Tokens, domain.RoleRecruiter))
	{
		NewRecruiterHandler(recruiter, deps.RecruiterUC, deps.UserUC, deps.JobUC, deps.ApplicationUC)
		NewUserHandler(recruiter, deps.UserUC)
	}

	return r
}
