package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk/backend/internal/logger"
	"github.com/helpdesk/backend/internal/middleware"
	"github.com/helpdesk/backend/internal/models"
	"gorm.io/gorm"
)

type ProfileController struct {
	db *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{db: db}
}

type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (pc *ProfileController) GetCurrentProfile(c *gin.Context) {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) UpdateCurrentProfile(c *gin.Context) {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Update fields if provided
	if req.FullName != "" {
		profile.FullName = &req.FullName
	}
	if req.Email != "" {
		profile.Email = req.Email
	}

	if err := pc.db.Save(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListProfiles returns every profile, newest first. Admin only.
func (pc *ProfileController) ListProfiles(c *gin.Context) {
	var profiles []models.Profile
	if err := pc.db.Order("created_at desc").Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profiles,
	})
}

// ListStaff returns the worker and admin profiles, the candidate list for
// the assignee filter and bulk assignment.
func (pc *ProfileController) ListStaff(c *gin.Context) {
	var staff []models.Profile
	if err := pc.db.Where("role IN ?", []models.UserRole{models.RoleWorker, models.RoleAdmin}).
		Order("email").Find(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    staff,
	})
}

// UpdateRole changes a profile's role. Admin only; takes effect on the
// target's next request because roles are read fresh per request.
func (pc *ProfileController) UpdateRole(c *gin.Context) {
	id := c.Param("id")

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid role value",
		})
		return
	}

	var profile models.Profile
	if err := pc.db.First(&profile, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Profile not found",
		})
		return
	}

	profile.Role = models.UserRole(req.Role)
	if err := pc.db.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update role",
		})
		return
	}

	logger.WithUser(profile.ID.String()).Infof("role changed to %s", profile.Role)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
	})
}
