package controllers

import (
	"github.com/gin-gonic/gin"

	"elimu/internal/services"
	"elimu/pkg/utils"
)

type CourseController struct {
	catalogService services.CatalogServiceInterface
}

func NewCourseController(catalogService services.CatalogServiceInterface) *CourseController {
	return &CourseController{
		catalogService: catalogService,
	}
}

// ListCourses godoc
// @Summary List published courses
// @Tags Courses
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /courses [get]
func (cc *CourseController) ListCourses(c *gin.Context) {
	courses, err := cc.catalogService.ListCourses(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"courses": courses}, "")
}
