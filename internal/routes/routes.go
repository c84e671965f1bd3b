package routes

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jobsight/backend/internal/controllers"
	"github.com/jobsight/backend/internal/middleware"
	"github.com/jobsight/backend/internal/services"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize services
	llmService := services.NewLLMService(
		os.Getenv("LLM_BASE_URL"),
		os.Getenv("LLM_MODEL"),
	)
	assistantService := services.NewAssistantService(db, llmService)

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	businessController := controllers.NewBusinessController(db)
	clientController := controllers.NewClientController(db)
	projectController := controllers.NewProjectController(db)
	crewController := controllers.NewCrewController(db)
	dailyLogController := controllers.NewDailyLogController(db)
	taskController := controllers.NewTaskController(db)
	milestoneController := controllers.NewMilestoneController(db)
	issueController := controllers.NewIssueController(db)
	equipmentController := controllers.NewEquipmentController(db)
	billingController := controllers.NewBillingController(db)
	assistantController := controllers.NewAssistantController(assistantService, llmService)

	// API routes
	api := r.Group("/api/v1")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.POST("/register", authController.Register)
		}

		// Protected routes: authenticated and scoped to a business tenant
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		protected.Use(middleware.TenantMiddleware(db))
		{
			protected.POST("/auth/refresh", authController.RefreshToken)
			protected.POST("/auth/change-password", authController.ChangePassword)

			// Users
			users := protected.Group("/users")
			{
				users.GET("/me", userController.GetCurrentUser)
				users.PUT("/me", userController.UpdateCurrentUser)
			}

			// Business
			business := protected.Group("/business")
			{
				business.GET("", businessController.GetCurrentBusiness)
				business.PUT("", businessController.UpdateBusiness)
				business.GET("/members", businessController.GetMembers)
			}

			// Clients
			clients := protected.Group("/clients")
			{
				clients.GET("", clientController.GetClients)
				clients.POST("", clientController.CreateClient)
				clients.GET("/:id", clientController.GetClient)
				clients.PUT("/:id", clientController.UpdateClient)
				clients.DELETE("/:id", clientController.DeleteClient)
			}

			// Projects
			projects := protected.Group("/projects")
			{
				projects.GET("", projectController.GetProjects)
				projects.POST("", projectController.CreateProject)
				projects.GET("/:id", projectController.GetProject)
				projects.PUT("/:id", projectController.UpdateProject)
				projects.DELETE("/:id", projectController.DeleteProject)
			}

			// Crews
			crews := protected.Group("/crews")
			{
				crews.GET("", crewController.GetCrews)
				crews.POST("", crewController.CreateCrew)
				crews.GET("/:id", crewController.GetCrew)
				crews.PUT("/:id", crewController.UpdateCrew)
				crews.DELETE("/:id", crewController.DeleteCrew)
				crews.POST("/:id/members", crewController.AddMember)
				crews.DELETE("/:id/members/:memberId", crewController.RemoveMember)
			}

			// Daily logs
			dailyLogs := protected.Group("/daily-logs")
			{
				dailyLogs.GET("", dailyLogController.GetDailyLogs)
				dailyLogs.POST("", dailyLogController.CreateDailyLog)
				dailyLogs.GET("/:id", dailyLogController.GetDailyLog)
				dailyLogs.PUT("/:id", dailyLogController.UpdateDailyLog)
				dailyLogs.DELETE("/:id", dailyLogController.DeleteDailyLog)
			}

			// Tasks
			tasks := protected.Group("/tasks")
			{
				tasks.GET("", taskController.GetTasks)
				tasks.POST("", taskController.CreateTask)
				tasks.GET("/:id", taskController.GetTask)
				tasks.PUT("/:id", taskController.UpdateTask)
				tasks.DELETE("/:id", taskController.DeleteTask)
			}

			// Milestones
			milestones := protected.Group("/milestones")
			{
				milestones.GET("", milestoneController.GetMilestones)
				milestones.POST("", milestoneController.CreateMilestone)
				milestones.PUT("/:id", milestoneController.UpdateMilestone)
				milestones.DELETE("/:id", milestoneController.DeleteMilestone)
			}

			// Issues
			issues := protected.Group("/issues")
			{
				issues.GET("", issueController.GetIssues)
				issues.POST("", issueController.CreateIssue)
				issues.GET("/:id", issueController.GetIssue)
				issues.PUT("/:id", issueController.UpdateIssue)
				issues.DELETE("/:id", issueController.DeleteIssue)
			}

			// Equipment
			equipment := protected.Group("/equipment")
			{
				equipment.GET("", equipmentController.GetEquipment)
				equipment.POST("", equipmentController.CreateEquipment)
				equipment.GET("/:id", equipmentController.GetEquipmentItem)
				equipment.PUT("/:id", equipmentController.UpdateEquipment)
				equipment.DELETE("/:id", equipmentController.DeleteEquipment)
				equipment.POST("/:id/assignments", equipmentController.AssignEquipment)
				equipment.PUT("/:id/assignments/:assignmentId/close", equipmentController.UnassignEquipment)
			}

			// Billing
			invoices := protected.Group("/invoices")
			{
				invoices.GET("", billingController.GetInvoices)
				invoices.POST("", billingController.CreateInvoice)
				invoices.GET("/:id", billingController.GetInvoice)
				invoices.POST("/:id/send", billingController.SendInvoice)
				invoices.POST("/:id/payments", billingController.RecordPayment)
				invoices.POST("/:id/cancel", billingController.CancelInvoice)
			}

			// Assistant
			assistant := protected.Group("/assistant")
			{
				assistant.POST("/query", assistantController.Query)
				assistant.POST("/transcribe", assistantController.Transcribe)
				assistant.GET("/status", assistantController.GetStatus)
				assistant.GET("/api-calls", assistantController.GetAPICalls)
				assistant.DELETE("/api-calls", assistantController.ClearAPICalls)
			}
		}
	}
}
