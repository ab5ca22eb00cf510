package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk/backend/internal/middleware"
	"github.com/helpdesk/backend/internal/models"
	"gorm.io/gorm"
)

type FeedbackController struct {
	db *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{db: db}
}

type SubmitFeedbackRequest struct {
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	FeedbackText string `json:"feedbackText"`
}

func (fc *FeedbackController) GetFeedback(c *gin.Context) {
	profile, _ := middleware.CurrentProfile(c)
	ticket := visibleTicket(c, fc.db, profile)
	if ticket == nil {
		return
	}

	var feedback models.TicketFeedback
	if err := fc.db.First(&feedback, "ticket_id = ?", ticket.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "No feedback for this ticket",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch feedback",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    feedback,
	})
}

// SubmitFeedback records the customer's one-time rating. Only the owning
// customer may submit, only after the ticket is resolved or closed, and
// only once.
func (fc *FeedbackController) SubmitFeedback(c *gin.Context) {
	profile, _ := middleware.CurrentProfile(c)
	ticket := visibleTicket(c, fc.db, profile)
	if ticket == nil {
		return
	}

	if ticket.CustomerID != profile.ID {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Only the ticket owner can submit feedback",
		})
		return
	}
	if !ticket.IsResolved() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Feedback can only be submitted for resolved tickets",
		})
		return
	}

	var existing models.TicketFeedback
	if err := fc.db.First(&existing, "ticket_id = ?", ticket.ID).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "Feedback already submitted for this ticket",
		})
		return
	}

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "A rating between 1 and 5 is required",
		})
		return
	}

	feedback := models.TicketFeedback{
		TicketID: ticket.ID,
		Rating:   req.Rating,
	}
	if req.FeedbackText != "" {
		feedback.FeedbackText = &req.FeedbackText
	}

	if err := fc.db.Create(&feedback).Error; err != nil {
		// The unique index on ticket_id backstops a concurrent double submit.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "Feedback already submitted for this ticket",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to submit feedback",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    feedback,
	})
}
