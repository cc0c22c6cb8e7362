package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadportal-api/internal/services"
)

// AdminHandler handles admin-gated HTTP requests
type AdminHandler struct {
	adminService services.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// @Summary Look up a user for impersonation
// @Description Return a user record plus a short-lived impersonation token. The acting admin must hold the admin role.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body services.ImpersonationLookupRequest true "Target and admin user IDs"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/impersonation-lookup [post]
func (h *AdminHandler) ImpersonationLookup(c *gin.Context) {
	var req services.ImpersonationLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.adminService.LookupUserForImpersonation(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to look up user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"user":               result.User,
		"impersonationToken": result.Token,
	})
}
