package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/penshopx/PUB-Latih-LMS1/internal/delivery/http/controllers"
	"github.com/penshopx/PUB-Latih-LMS1/internal/models"
	"github.com/penshopx/PUB-Latih-LMS1/internal/service"
	"github.com/penshopx/PUB-Latih-LMS1/pkg/logger"
)

func InitRoutes(l logger.Log, u service.Collection) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(cors.New(config))

	statusController := controllers.NewStatusHandler()
	authController := controllers.NewAuthHandler(l, u.AuthService)
	courseController := controllers.NewCourseHandler(l, u.CourseService)
	commentController := controllers.NewCommentHandler(l, u.DiscussionService)
	progressController := controllers.NewProgressHandler(l, u.Ledger)

	v1 := r.Group("/v1", controllers.LoggingMiddleware(l))
	{
		v1.GET("/status", statusController.Status)

		v1.GET("/me", authController.AuthMiddleware, authController.Me)

		auth := v1.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.POST("/register", authController.Register)
			auth.POST("/refresh", authController.Refresh)
		}

		courses := v1.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.GET("/search", courseController.SearchCourses)
			courses.GET("/:course_id", courseController.CourseByID)

			discussion := courses.Group("", authController.AuthMiddleware)
			{
				discussion.GET("/:course_id/comments", commentController.ListComments)
				discussion.POST("/:course_id/comments", commentController.AddComment)
			}

			author := courses.Group("", authController.AuthMiddleware,
				controllers.RequireRoles(models.InstructorRole, models.AdminRole))
			{
				author.POST("", courseController.CreateCourse)
				author.PUT("/:course_id", courseController.UpdateCourse)
				author.DELETE("/:course_id", courseController.DeleteCourse)
				author.PUT("/:course_id/thumbnail", courseController.UploadThumbnail)
				author.GET("/:course_id/enrollments", progressController.CourseProgress)
			}

			learner := courses.Group("", authController.AuthMiddleware, controllers.RequireRoles(models.LearnerRole))
			{
				learner.POST("/:course_id/enroll", progressController.Enroll)
				learner.POST("/:course_id/modules/:module_id/complete", progressController.CompleteModule)
				learner.GET("/:course_id/progress", progressController.MyCourseProgress)
			}
		}

		v1.GET("/my-progress", authController.AuthMiddleware,
			controllers.RequireRoles(models.LearnerRole), progressController.MyProgress)
		v1.GET("/certificates", authController.AuthMiddleware, progressController.Certificates)

		admin := v1.Group("", authController.AuthMiddleware, controllers.RequireRoles(models.AdminRole))
		{
			admin.PATCH("/users/:user_id/status", authController.ToggleUserStatus)
			admin.GET("/students/:student_id/progress", progressController.StudentProgress)
		}
	}
	return r
}
