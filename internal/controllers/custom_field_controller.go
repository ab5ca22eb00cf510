package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/helpdesk/backend/internal/models"
	"github.com/helpdesk/backend/internal/services"
	"gorm.io/gorm"
)

type CustomFieldController struct {
	fields *services.CustomFieldService
}

func NewCustomFieldController(fields *services.CustomFieldService) *CustomFieldController {
	return &CustomFieldController{fields: fields}
}

type CreateFieldRequest struct {
	Name      string `json:"name" binding:"required"`
	FieldType string `json:"fieldType" binding:"required"`
}

type RenameFieldRequest struct {
	Name string `json:"name" binding:"required"`
}

type SetFieldValueRequest struct {
	Value string `json:"value"`
}

func (cc *CustomFieldController) ListFields(c *gin.Context) {
	fields, err := cc.fields.ListFields()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch custom fields",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    fields,
	})
}

func (cc *CustomFieldController) CreateField(c *gin.Context) {
	var req CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}
	if !models.ValidFieldType(req.FieldType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid field type",
		})
		return
	}

	field, err := cc.fields.CreateField(req.Name, req.FieldType)
	if err != nil {
		if errors.Is(err, services.ErrEmptyFieldName) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create custom field",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    field,
	})
}

func (cc *CustomFieldController) RenameField(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid field id",
		})
		return
	}

	var req RenameFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	field, err := cc.fields.RenameField(id, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Custom field not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to rename custom field",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    field,
	})
}

func (cc *CustomFieldController) DeleteField(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid field id",
		})
		return
	}

	if err := cc.fields.DeleteField(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Custom field not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete custom field",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Custom field deleted successfully",
	})
}

func (cc *CustomFieldController) ListTicketValues(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid ticket id",
		})
		return
	}

	values, err := cc.fields.TicketValues(ticketID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch custom field values",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    values,
	})
}

// SetTicketValue upserts a per-ticket value for one field definition.
func (cc *CustomFieldController) SetTicketValue(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid ticket id",
		})
		return
	}
	fieldID, err := uuid.Parse(c.Param("fieldId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid field id",
		})
		return
	}

	var req SetFieldValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	value, err := cc.fields.SetValue(ticketID, fieldID, req.Value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to set custom field value",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    value,
	})
}
