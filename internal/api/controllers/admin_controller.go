package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"elimu/internal/models/request_models"
	"elimu/internal/services"
	"elimu/pkg/utils"
)

type AdminController struct {
	accountService services.AccountServiceInterface
	statsService   services.StatsServiceInterface
}

func NewAdminController(
	accountService services.AccountServiceInterface,
	statsService services.StatsServiceInterface,
) *AdminController {
	return &AdminController{
		accountService: accountService,
		statsService:   statsService,
	}
}

// ApproveInstructor godoc
// @Summary Approve a pending instructor application
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.ApproveInstructorRequest true "Approval payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/instructors/approve [post]
func (a *AdminController) ApproveInstructor(c *gin.Context) {
	var req request_models.ApproveInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ApproveInstructor(c.Request.Context(), req.AccountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Instructor approved")
}

// GetStats godoc
// @Summary Platform-wide counts for the admin dashboard
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (a *AdminController) GetStats(c *gin.Context) {
	stats, err := a.statsService.GetAdminStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "")
}
