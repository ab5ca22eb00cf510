package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/helpdesk/backend/internal/middleware"
	"github.com/helpdesk/backend/internal/models"
	"gorm.io/gorm"
)

// NoteController manages staff-only internal notes. Routes are gated by
// RequireStaff, so customers never reach these handlers.
type NoteController struct {
	db *gorm.DB
}

func NewNoteController(db *gorm.DB) *NoteController {
	return &NoteController{db: db}
}

type CreateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

func (nc *NoteController) ListNotes(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid ticket id",
		})
		return
	}

	var notes []models.TicketInternalNote
	if err := nc.db.Preload("Author").
		Where("ticket_id = ?", ticketID).
		Order("created_at asc").
		Find(&notes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch notes",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    notes,
	})
}

func (nc *NoteController) CreateNote(c *gin.Context) {
	profile, _ := middleware.CurrentProfile(c)

	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid ticket id",
		})
		return
	}

	var ticket models.Ticket
	if err := nc.db.First(&ticket, "id = ?", ticketID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Ticket not found",
		})
		return
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	note := models.TicketInternalNote{
		TicketID: ticket.ID,
		AuthorID: profile.ID,
		Content:  req.Content,
	}

	if err := nc.db.Create(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to add note",
		})
		return
	}

	// Load author relationship
	nc.db.Preload("Author").First(&note, "id = ?", note.ID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    note,
	})
}
