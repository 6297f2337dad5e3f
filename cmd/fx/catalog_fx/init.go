package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"elimu/internal/api/controllers"
	"elimu/internal/repositories"
	"elimu/internal/services"
)

var Module = fx.Provide(
	provideCourseRepo, provideLessonRepo, provideStatsRepo,
	provideAccessService, provideCatalogService, provideStatsService,
	provideCourseController, provideLessonController, provideAdminController)

func provideCourseRepo(db *gorm.DB) repositories.ICourseRepository {
	return repositories.NewCourseRepository(db)
}

func provideLessonRepo(db *gorm.DB) repositories.ILessonRepository {
	return repositories.NewLessonRepository(db)
}

func provideStatsRepo(db *gorm.DB) repositories.StatsRepository {
	return repositories.NewStatsRepository(db)
}

func provideAccessService(subRepo repositories.SubscriptionRepository) services.AccessService {
	return services.NewAccessService(subRepo)
}

func provideCatalogService(
	courseRepo repositories.ICourseRepository,
	lessonRepo repositories.ILessonRepository,
	access services.AccessService,
) services.CatalogServiceInterface {
	return services.NewCatalogService(courseRepo, lessonRepo, access)
}

func provideStatsService(statsRepo repositories.StatsRepository) services.StatsServiceInterface {
	return services.NewStatsService(statsRepo)
}

func provideCourseController(catalogService services.CatalogServiceInterface) *controllers.CourseController {
	return controllers.NewCourseController(catalogService)
}

func provideLessonController(catalogService services.CatalogServiceInterface) *controllers.LessonController {
	return controllers.NewLessonController(catalogService)
}

func provideAdminController(
	accountService services.AccountServiceInterface,
	statsService services.StatsServiceInterface,
) *controllers.AdminController {
	return controllers.NewAdminController(accountService, statsService)
}
