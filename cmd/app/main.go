package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"elimu/cmd/fx/account_fx"
	"elimu/cmd/fx/catalog_fx"
	"elimu/cmd/fx/db_fx"
	"elimu/cmd/fx/mail_fx"
	"elimu/cmd/fx/payment_fx"
	"elimu/cmd/fx/plan_fx"
	"elimu/internal/api/controllers"
	"elimu/internal/models/db_models"
	"elimu/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		plan_fx.Module,
		catalog_fx.Module,
		payment_fx.Module,
		mail_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	courseController *controllers.CourseController,
	lessonController *controllers.LessonController,
	paymentController *controllers.PaymentController,
	adminController *controllers.AdminController,
) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController, planController, courseController,
		lessonController, paymentController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	courseController *controllers.CourseController,
	lessonController *controllers.LessonController,
	paymentController *controllers.PaymentController,
	adminController *controllers.AdminController,
) {
	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	r.GET("/plans", planController.ListPlans)
	r.GET("/courses", courseController.ListCourses)

	lessons := r.Group("/lessons")
	lessons.GET("/:id", middleware.OptionalJWTMiddleware(), lessonController.GetLesson)
	lessons.POST("/:id/complete", middleware.JWTAuthMiddleware(), lessonController.CompleteLesson)

	payments := r.Group("/payments", middleware.JWTAuthMiddleware())
	payments.POST("/create-checkout", paymentController.CreateCheckout)

	r.GET("/subscriptions/me", middleware.JWTAuthMiddleware(), paymentController.MySubscriptions)

	r.POST("/instructors/apply", middleware.JWTAuthMiddleware(), accountController.ApplyAsInstructor)

	admin := r.Group("/admin",
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware(string(db_models.RoleAdmin)))
	admin.POST("/instructors/approve", adminController.ApproveInstructor)
	admin.GET("/stats", adminController.GetStats)

	// Provider callbacks carry their own signature, never a user token.
	r.POST("/webhooks/lenco", paymentController.HandleWebhook)
}
