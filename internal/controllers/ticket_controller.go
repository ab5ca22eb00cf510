package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/helpdesk/backend/internal/events"
	"github.com/helpdesk/backend/internal/logger"
	"github.com/helpdesk/backend/internal/middleware"
	"github.com/helpdesk/backend/internal/models"
	"github.com/helpdesk/backend/internal/services"
	"gorm.io/gorm"
)

type TicketController struct {
	db      *gorm.DB
	queries *services.TicketQueryService
	bulk    *services.BulkMutationService
}

func NewTicketController(db *gorm.DB, queries *services.TicketQueryService, bulk *services.BulkMutationService) *TicketController {
	return &TicketController{db: db, queries: queries, bulk: bulk}
}

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    *int   `json:"priority"`
}

type UpdateTicketRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *int       `json:"priority"`
	AssigneeID  *uuid.UUID `json:"assigneeId"`
}

type BulkUpdateRequest struct {
	TicketIDs  []uuid.UUID `json:"ticketIds" binding:"required,min=1"`
	Status     *string     `json:"status"`
	Priority   *int        `json:"priority"`
	AssigneeID *uuid.UUID  `json:"assigneeId"`
	// ActiveFilter is the caller's current filter value for the mutated
	// dimension, used to reconcile its selection after the update.
	ActiveFilter string `json:"activeFilter"`
}

// ListTickets runs the filter/sort pipeline scoped to the caller.
func (tc *TicketController) ListTickets(c *gin.Context) {
	profile, _ := middleware.CurrentProfile(c)

	filters := services.TicketFilters{
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Assignee:  c.Query("assignee"),
		Tag:       c.Query("tag"),
		SortField: c.Query("sort"),
		SortDir:   c.Query("order"),
	}

	tickets, err := tc.queries.List(profile, filters)
	if err != nil {
		if errors.Is(err, services.ErrAssigneeFilterForbidden) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Assignee filter requires staff role",
			})
			return
		}
		if errors.Is(err, services.ErrInvalidFilter) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}
		logger.WithError(err, "ticket").Error("list tickets failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch tickets",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tickets,
	})
}

func (tc *TicketController) GetTicket(c *gin.Context) {
	profile, _ := middleware.CurrentProfile(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid ticket id",
		})
		return
	}

	ticket, err := tc.queries.Get(profile, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Ticket not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ticket,
	})
}

func (tc *TicketController) CreateTicket(c *gin.Context) {
	profile, _ := middleware.CurrentProfile(c)

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
			"errors":  err.Error(),
		})
		return
	}
	if req.Priority != nil && !models.ValidPriority(*req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid priority value",
		})
		return
	}

	status := models.StatusOpen
	ticket := models.Ticket{
		Title:       req.Title,
		Description: req.Description,
		Status:      &status,
		Priority:    req.Priority,
		CustomerID:  profile.ID,
	}

	if err := tc.db.Create(&ticket).Error; err != nil {
		logger.WithError(err, "ticket").Error("create ticket failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create ticket",
		})
		return
	}

	events.PublishTicket(events.ActionCreated, ticket.ID.String())

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    ticket,
	})
}

func (tc *TicketController) UpdateTicket(c *gin.Context) {
	profile, _ := middleware.CurrentProfile(c)

	id := c.Param("id")
	var ticket models.Ticket
	if err := tc.db.First(&ticket, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Ticket not found",
		})
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if !profile.IsStaff() {
		// Customers may edit only their own unresolved tickets, and only
		// the title and description.
		if ticket.CustomerID != profile.ID {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Not your ticket",
			})
			return
		}
		if ticket.IsResolved() {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Resolved tickets can no longer be edited",
			})
			return
		}
		if req.Status != nil || req.Priority != nil || req.AssigneeID != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Staff access required for triage fields",
			})
			return
		}
	}

	if req.Title != nil {
		ticket.Title = *req.Title
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid status value",
			})
			return
		}
		status := models.TicketStatus(*req.Status)
		ticket.Status = &status
	}
	if req.Priority != nil {
		if !models.ValidPriority(*req.Priority) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid priority value",
			})
			return
		}
		ticket.Priority = req.Priority
	}
	if req.AssigneeID != nil {
		// The candidate list is staff only; enforce the same invariant here.
		var assignee models.Profile
		if err := tc.db.First(&assignee, "id = ?", req.AssigneeID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Assignee not found",
			})
			return
		}
		if !assignee.IsStaff() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Assignee must be a worker or admin",
			})
			return
		}
		ticket.AssignedTo = req.AssigneeID
	}

	if err := tc.db.Save(&ticket).Error; err != nil {
		logger.WithError(err, "ticket").Error("update ticket failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update ticket",
		})
		return
	}

	// Load relationships
	tc.db.Preload("Tags").Preload("Assignee").Preload("Feedback").First(&ticket, "id = ?", ticket.ID)

	events.PublishTicket(events.ActionUpdated, ticket.ID.String())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ticket,
	})
}

// DeleteTicket hard-deletes a ticket. Admin only.
func (tc *TicketController) DeleteTicket(c *gin.Context) {
	id := c.Param("id")

	var ticket models.Ticket
	if err := tc.db.First(&ticket, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Ticket not found",
		})
		return
	}

	if err := tc.db.Delete(&ticket).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete ticket",
		})
		return
	}

	events.PublishTicket(events.ActionDeleted, ticket.ID.String())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Ticket deleted successfully",
	})
}

// BulkUpdate applies exactly one of status/priority/assignee to the selected
// tickets and returns the reconciled selection.
func (tc *TicketController) BulkUpdate(c *gin.Context) {
	var req BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
			"errors":  err.Error(),
		})
		return
	}

	set := 0
	if req.Status != nil {
		set++
	}
	if req.Priority != nil {
		set++
	}
	if req.AssigneeID != nil {
		set++
	}
	if set != 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Exactly one of status, priority or assigneeId is required",
		})
		return
	}

	var (
		updated   int64
		selection []uuid.UUID
		err       error
	)
	switch {
	case req.Status != nil:
		updated, err = tc.bulk.UpdateStatus(req.TicketIDs, *req.Status)
		selection = services.ReconcileSelection(req.TicketIDs, req.ActiveFilter, *req.Status)
	case req.Priority != nil:
		updated, err = tc.bulk.UpdatePriority(req.TicketIDs, *req.Priority)
		selection = services.ReconcilePrioritySelection(req.TicketIDs, req.ActiveFilter, *req.Priority)
	default:
		updated, err = tc.bulk.Assign(req.TicketIDs, *req.AssigneeID)
		selection = services.ReconcileSelection(req.TicketIDs, req.ActiveFilter, req.AssigneeID.String())
	}

	if err != nil {
		if errors.Is(err, services.ErrInvalidFilter) || errors.Is(err, services.ErrAssigneeNotStaff) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}
		logger.WithError(err, "ticket").Error("bulk update failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update tickets",
		})
		return
	}

	ids := make([]string, len(req.TicketIDs))
	for i, id := range req.TicketIDs {
		ids[i] = id.String()
	}
	events.PublishTicketChange(events.ActionBulkUpdated, map[string]interface{}{"ticket_ids": ids})

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"updated":   updated,
		"selection": selection,
	})
}
