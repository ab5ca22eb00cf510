package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/helpdesk/backend/internal/controllers"
	"github.com/helpdesk/backend/internal/middleware"
	"github.com/helpdesk/backend/internal/services"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize services
	queryService := services.NewTicketQueryService(db)
	bulkService := services.NewBulkMutationService(db)
	tagService := services.NewTagService(db)
	fieldService := services.NewCustomFieldService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	profileController := controllers.NewProfileController(db)
	ticketController := controllers.NewTicketController(db, queryService, bulkService)
	tagController := controllers.NewTagController(tagService)
	fieldController := controllers.NewCustomFieldController(fieldService)
	responseController := controllers.NewResponseController(db)
	noteController := controllers.NewNoteController(db)
	feedbackController := controllers.NewFeedbackController(db)
	eventsController := controllers.NewEventsController()

	// API routes
	api := r.Group("/api/v1")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.POST("/register", authController.Register)
			auth.POST("/refresh", middleware.AuthMiddleware(), authController.RefreshToken)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profiles
			profiles := protected.Group("/profiles")
			{
				profiles.GET("/me", profileController.GetCurrentProfile)
				profiles.PUT("/me", profileController.UpdateCurrentProfile)
				profiles.GET("/staff", middleware.RequireStaff(), profileController.ListStaff)
				profiles.GET("", middleware.RequireAdmin(), profileController.ListProfiles)
				profiles.PUT("/:id/role", middleware.RequireAdmin(), profileController.UpdateRole)
			}

			// Tickets
			tickets := protected.Group("/tickets")
			{
				tickets.GET("", ticketController.ListTickets)
				tickets.POST("", ticketController.CreateTicket)
				tickets.GET("/:id", ticketController.GetTicket)
				tickets.PUT("/:id", ticketController.UpdateTicket)
				tickets.DELETE("/:id", middleware.RequireAdmin(), ticketController.DeleteTicket)
				tickets.POST("/bulk", middleware.RequireStaff(), ticketController.BulkUpdate)

				// Responses (customer-visible conversation)
				tickets.GET("/:id/responses", responseController.ListResponses)
				tickets.POST("/:id/responses", responseController.CreateResponse)

				// Internal notes (staff only, never customer-visible)
				tickets.GET("/:id/notes", middleware.RequireStaff(), noteController.ListNotes)
				tickets.POST("/:id/notes", middleware.RequireStaff(), noteController.CreateNote)

				// Tags on a ticket
				tickets.GET("/:id/tags", tagController.ListTicketTags)
				tickets.POST("/:id/tags/:tagId", middleware.RequireStaff(), tagController.AddTicketTag)
				tickets.DELETE("/:id/tags/:tagId", middleware.RequireStaff(), tagController.RemoveTicketTag)

				// Custom field values on a ticket
				tickets.GET("/:id/custom-fields", middleware.RequireStaff(), fieldController.ListTicketValues)
				tickets.PUT("/:id/custom-fields/:fieldId", middleware.RequireStaff(), fieldController.SetTicketValue)

				// Feedback (one per ticket, owning customer only)
				tickets.GET("/:id/feedback", feedbackController.GetFeedback)
				tickets.POST("/:id/feedback", feedbackController.SubmitFeedback)
			}

			// Tag taxonomy
			tags := protected.Group("/tags")
			{
				tags.GET("", tagController.ListTags)
				tags.POST("", middleware.RequireAdmin(), tagController.CreateTag)
				tags.DELETE("/:id", middleware.RequireAdmin(), tagController.DeleteTag)
			}

			// Custom field definitions
			fields := protected.Group("/custom-fields")
			{
				fields.GET("", middleware.RequireStaff(), fieldController.ListFields)
				fields.POST("", middleware.RequireAdmin(), fieldController.CreateField)
				fields.PUT("/:id", middleware.RequireAdmin(), fieldController.RenameField)
				fields.DELETE("/:id", middleware.RequireAdmin(), fieldController.DeleteField)
			}

			// Change feed
			protected.GET("/events", eventsController.Stream)
		}
	}
}
