package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ravikt/tuitiondesk/internal/app/controllers"
	"github.com/ravikt/tuitiondesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	admissionController *controllers.AdmissionController,
	systemController *controllers.SystemController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---
	api.POST("/auth/login", authController.Login)
	api.GET("/health", systemController.Health)

	// Registration form submissions come straight from the public web form.
	api.POST("/admissions", admissionController.SubmitRequest)

	// --- Admin routes ---
	admin := api.Group("")
	admin.Use(authMiddleware.JWTAuth())
	{
		students := admin.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.POST("", studentController.CreateStudent)
			students.GET("/:id", studentController.GetStudentByID)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
			students.POST("/:id/payment", studentController.RecordPayment)
		}

		admissions := admin.Group("/admissions")
		{
			admissions.GET("", admissionController.GetAllRequests)
			admissions.GET("/:id", admissionController.GetRequestByID)
			admissions.POST("/:id/approve", admissionController.ApproveRequest)
			admissions.POST("/:id/reject", admissionController.RejectRequest)
			admissions.GET("/pending/count", admissionController.GetPendingCount)
		}

		admin.GET("/stats", systemController.Stats)
		admin.POST("/backup", systemController.Backup)
	}
}
