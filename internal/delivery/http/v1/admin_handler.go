package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/internal/domain"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(r *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	r.GET("/", handler.GetProfile)
	r.DELETE("/", handler.RemoveAccount)
}

// GetProfile godoc
// @Summary      Get admin profile
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Envelope{payload=domain.AdminDTO}
// @Failure      404  {object}  response.Envelope
// @Router       /admin [get]
// @Security     BearerAuth
func (h *AdminHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.adminUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"admin": profile})
}

// RemoveAccount godoc
// @Summary      Delete admin account
// @Tags         admin
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Router       /admin [delete]
// @Security     BearerAuth
func (h *AdminHandler) RemoveAccount(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	if err := h.adminUC.RemoveAccount(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
