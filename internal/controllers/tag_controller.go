package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/helpdesk/backend/internal/events"
	"github.com/helpdesk/backend/internal/services"
	"gorm.io/gorm"
)

type TagController struct {
	tags *services.TagService
}

func NewTagController(tags *services.TagService) *TagController {
	return &TagController{tags: tags}
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

func (tc *TagController) ListTags(c *gin.Context) {
	tags, err := tc.tags.ListTags()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch tags",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tags,
	})
}

func (tc *TagController) CreateTag(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	tag, err := tc.tags.CreateTag(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateTagName) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}
		if errors.Is(err, services.ErrEmptyTagName) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create tag",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    tag,
	})
}

func (tc *TagController) DeleteTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid tag id",
		})
		return
	}

	if err := tc.tags.DeleteTag(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Tag not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete tag",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tag deleted successfully",
	})
}

func (tc *TagController) ListTicketTags(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid ticket id",
		})
		return
	}

	tags, err := tc.tags.TicketTags(ticketID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch ticket tags",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tags,
	})
}

// AddTicketTag attaches a tag to a ticket. Repeating the same pair succeeds
// without creating a second row.
func (tc *TagController) AddTicketTag(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid ticket id",
		})
		return
	}
	tagID, err := uuid.Parse(c.Param("tagId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid tag id",
		})
		return
	}

	if err := tc.tags.AddToTicket(ticketID, tagID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to add tag to ticket",
		})
		return
	}

	events.PublishTicket(events.ActionTagged, ticketID.String())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tag added to ticket",
	})
}

func (tc *TagController) RemoveTicketTag(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid ticket id",
		})
		return
	}
	tagID, err := uuid.Parse(c.Param("tagId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid tag id",
		})
		return
	}

	if err := tc.tags.RemoveFromTicket(ticketID, tagID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to remove tag from ticket",
		})
		return
	}

	events.PublishTicket(events.ActionUntagged, ticketID.String())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tag removed from ticket",
	})
}
