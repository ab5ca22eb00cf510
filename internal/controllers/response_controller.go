package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/helpdesk/backend/internal/middleware"
	"github.com/helpdesk/backend/internal/models"
	"gorm.io/gorm"
)

type ResponseController struct {
	db *gorm.DB
}

func NewResponseController(db *gorm.DB) *ResponseController {
	return &ResponseController{db: db}
}

type CreateResponseRequest struct {
	Content string `json:"content" binding:"required"`
}

// visibleTicket loads a ticket enforcing the caller's visibility: customers
// reach only their own tickets, staff reach all. Writes the error response
// itself and returns nil when the ticket is not reachable.
func visibleTicket(c *gin.Context, db *gorm.DB, profile *models.Profile) *models.Ticket {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid ticket id",
		})
		return nil
	}

	var ticket models.Ticket
	if err := db.First(&ticket, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Ticket not found",
		})
		return nil
	}
	if !profile.IsStaff() && ticket.CustomerID != profile.ID {
		// Hidden rather than forbidden: customers cannot probe for other
		// customers' ticket ids.
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Ticket not found",
		})
		return nil
	}
	return &ticket
}

// ListResponses returns a ticket's customer-visible replies, oldest first.
func (rc *ResponseController) ListResponses(c *gin.Context) {
	profile, _ := middleware.CurrentProfile(c)
	ticket := visibleTicket(c, rc.db, profile)
	if ticket == nil {
		return
	}

	var responses []models.TicketResponse
	if err := rc.db.Preload("Responder").
		Where("ticket_id = ?", ticket.ID).
		Order("created_at asc").
		Find(&responses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch responses",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    responses,
	})
}

// CreateResponse appends a reply. No edit or delete exists.
func (rc *ResponseController) CreateResponse(c *gin.Context) {
	profile, _ := middleware.CurrentProfile(c)
	ticket := visibleTicket(c, rc.db, profile)
	if ticket == nil {
		return
	}

	var req CreateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	response := models.TicketResponse{
		TicketID:    ticket.ID,
		ResponderID: profile.ID,
		Content:     req.Content,
	}

	if err := rc.db.Create(&response).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to add response",
		})
		return
	}

	// Load author relationship
	rc.db.Preload("Responder").First(&response, "id = ?", response.ID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    response,
	})
}
