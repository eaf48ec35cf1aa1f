package v1

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"job-finder-backend/config"
	"job-finder-backend/internal/delivery/http/middleware"
	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
	"job-finder-backend/pkg/token"
)

// AuthHandler serves the authentication flows for all three roles: sessions,
// registration, activation and password recovery.
type AuthHandler struct {
	authUC domain.AuthUsecase
	cfg    *config.Config
}

func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase, tokens *token.Manager, cfg *config.Config) {
	handler := &AuthHandler{authUC: authUC, cfg: cfg}

	auth := r.Group("/auth")
	{
		auth.POST("/login",
			middleware.RateLimit(middleware.SessionRateLimitConfig()), handler.Login)
		auth.POST("/register",
			middleware.RateLimit(middleware.RegisterRateLimitConfig()), handler.Register)
		auth.GET("/logout",
			middleware.RateLimit(middleware.SessionRateLimitConfig()),
			middleware.AuthorizeAny(tokens), handler.Logout)

		auth.GET("/password/forgot",
			middleware.RateLimit(middleware.RecoveryRateLimitConfig()), handler.ForgotPassword)
		auth.PATCH("/password/reset",
			middleware.RateLimit(middleware.RecoveryRateLimitConfig()),
			middleware.AuthorizePasswordReset(cfg, tokens), handler.ResetPassword)

		auth.GET("/account/request_activation",
			middleware.RateLimit(middleware.RecoveryRateLimitConfig()), handler.RequestActivation)
		auth.GET("/account/confirm_activation",
			middleware.AuthorizeActivation(cfg, tokens), handler.ConfirmActivation)
	}
}

// Login godoc
// @Summary      Log in
// @Description  Exchange credentials for a 24h access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Envelope{payload=domain.LoginResult}
// @Failure      401  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Register godoc
// @Summary      Register an account
// @Description  Creates the user with its role profile and sends the activation email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  response.Envelope{payload=domain.UserDTO}
// @Failure      400  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	if err := h.authUC.Logout(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Logged out."})
}

// ForgotPassword always answers 200 so the endpoint cannot be used to probe
// which emails have accounts.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	emailAddr, role, err := emailRoleQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.authUC.ForgotPassword(c.Request.Context(), emailAddr, role); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "If an account exists, a reset link has been sent."})
}

// ResetPassword godoc
// @Summary      Reset password
// @Description  Protected by the emailed password token
// @Tags         auth
// @Accept       json
// @Success      204
// @Failure      422  {object}  response.Envelope
// @Router       /auth/password/reset [patch]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req domain.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))
	if err := h.authUC.ResetPassword(c.Request.Context(), userID, role, req, c.ClientIP()); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) RequestActivation(c *gin.Context) {
	emailAddr, role, err := emailRoleQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.authUC.RequestActivation(c.Request.Context(), emailAddr, role); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "If an account exists, an activation link has been sent."})
}

// ConfirmActivation lands on the emailed link, so success and failure both
// redirect to the frontend activation page.
func (h *AuthHandler) ConfirmActivation(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	target := h.cfg.FrontendURL(role) + "/pages/auth/activate"
	if err := h.authUC.ConfirmActivation(c.Request.Context(), userID); err != nil {
		c.Redirect(http.StatusMovedPermanently, target+"?error="+url.QueryEscape(err.Error()))
		return
	}

	c.Redirect(http.StatusMovedPermanently, target)
}

func emailRoleQuery(c *gin.Context) (string, string, error) {
	emailAddr := c.Query("email")
	role := c.Query("role")
	if emailAddr == "" {
		return "", "", apperror.BadRequest("The email query parameter is required.")
	}
	switch role {
	case domain.RoleAdmin, domain.RoleCandidate, domain.RoleRecruiter:
	default:
		return "", "", apperror.BadRequest("The role query parameter must be admin, candidate or recruiter.")
	}
	return emailAddr, role, nil
}
