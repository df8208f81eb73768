package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grantdesk/grantdesk/internal/models"
	"gorm.io/gorm"
)

type ClubHandler struct {
	db *gorm.DB
}

func NewClubHandler(db *gorm.DB) *ClubHandler {
	return &ClubHandler{db: db}
}

type CreateClubRequest struct {
	ClubName string `json:"club_name" binding:"required"`
}

type UpdateClubRequest struct {
	ClubID   uint   `json:"club_id" binding:"required"`
	ClubName string `json:"club_name" binding:"required"`
}

type DeleteClubRequest struct {
	ClubID uint `json:"club_id" binding:"required"`
}

func (h *ClubHandler) ListClubs(ctx *gin.Context) {
	clubs := make([]models.Club, 0)

	if err := h.db.Find(&clubs).Error; err != nil {
		log.Printf("Failed to list clubs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, clubs)
}

func (h *ClubHandler) CreateClub(ctx *gin.Context) {
	var body CreateClubRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	club := models.Club{ClubName: body.ClubName}

	if err := h.db.Create(&club).Error; err != nil {
		log.Printf("Failed to create club: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, club)
}

func (h *ClubHandler) UpdateClub(ctx *gin.Context) {
	var body UpdateClubRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var club models.Club

	if err := h.db.Where("club_id = ?", body.ClubID).First(&club).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Club not found"})
			return
		}
		log.Printf("Failed to fetch club: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	club.ClubName = body.ClubName

	if err := h.db.Save(&club).Error; err != nil {
		log.Printf("Failed to update club: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, club)
}

// DeleteClub returns the deleted row, matching the clubs API contract.
func (h *ClubHandler) DeleteClub(ctx *gin.Context) {
	var body DeleteClubRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var club models.Club

	if err := h.db.Where("club_id = ?", body.ClubID).First(&club).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Club not found"})
			return
		}
		log.Printf("Failed to fetch club: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result := h.db.Where("club_id = ?", body.ClubID).Delete(&models.Club{})

	if result.Error != nil {
		log.Printf("Failed to delete club: %v", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// The row can vanish between the fetch and the delete; report the miss
	// rather than echoing a club that was never deleted here.
	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Club not found"})
		return
	}

	ctx.JSON(http.StatusOK, club)
}
