package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/apperror"
)

// UserHandler serves the account operations every role shares. It is mounted
// under each service's role namespace behind the role's access token.
type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(r *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	r.PATCH("/contact", handler.UpdateContact)
	r.PATCH("/password", handler.UpdatePassword)
}

// UpdateContact godoc
// @Summary      Update contact information
// @Description  Update the email and/or mobile number of the authenticated account
// @Tags         account
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /contact [patch]
// @Security     BearerAuth
func (h *UserHandler) UpdateContact(c *gin.Context) {
	if c.Request.ContentLength == 0 {
		c.Error(apperror.BadRequest("Request body is required."))
		return
	}

	var req domain.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.userUC.UpdateContact(c.Request.Context(), userID, req); err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Contact information updated."})
}

// UpdatePassword godoc
// @Summary      Change password
// @Description  Change the password of the authenticated account
// @Tags         account
// @Accept       json
// @Success      204
// @Failure      400  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /password [patch]
// @Security     BearerAuth
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req domain.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.userUC.UpdatePassword(c.Request.Context(), userID, req, c.ClientIP()); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
