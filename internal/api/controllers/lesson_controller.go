package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"elimu/internal/services"
	"elimu/pkg/utils"
)

type LessonController struct {
	catalogService services.CatalogServiceInterface
}

func NewLessonController(catalogService services.CatalogServiceInterface) *LessonController {
	return &LessonController{
		catalogService: catalogService,
	}
}

// GetLesson godoc
// @Summary Get a lesson with its course outline
// @Description Returns lesson metadata always; content is gated behind an active subscription unless the lesson or course is free
// @Tags Lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /lessons/{id} [get]
func (l *LessonController) GetLesson(c *gin.Context) {
	// Anonymous callers get uuid.Nil and see free content only.
	accountID, _ := uuid.Parse(c.GetString("user_id"))

	lesson, err := l.catalogService.GetLessonDetail(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, lesson, "")
}

// CompleteLesson godoc
// @Summary Mark a lesson as completed
// @Tags Lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /lessons/{id}/complete [post]
func (l *LessonController) CompleteLesson(c *gin.Context) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	if err := l.catalogService.CompleteLesson(c.Request.Context(), accountID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Lesson marked as completed")
}
