package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grantdesk/grantdesk/internal/models"
	"gorm.io/gorm"
)

// ErrInsufficientStock rejects a grant whose requested count exceeds the
// item's remaining stock.
var ErrInsufficientStock = errors.New("insufficient count")

type GrantHandler struct {
	db *gorm.DB
}

func NewGrantHandler(db *gorm.DB) *GrantHandler {
	return &GrantHandler{db: db}
}

type CreateGrantRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	ProcurementID uint   `json:"procurement_id" binding:"required"`
	Count         int    `json:"count" binding:"required,min=1"`
	ClubID        uint   `json:"club_id" binding:"required"`
}

func (h *GrantHandler) ListGrants(ctx *gin.Context) {
	grants := make([]models.Grant, 0)

	if err := h.db.Find(&grants).Error; err != nil {
		log.Printf("Failed to list grants: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, grants)
}

// CreateGrant records an allocation and decrements the item's stock as one
// atomic unit. The decrement is conditional on the remaining stock, so
// concurrent grants against the same item can never drive item_count
// negative: the losing request rolls back, taking its grant row with it.
func (h *GrantHandler) CreateGrant(ctx *gin.Context) {
	var body CreateGrantRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var grant models.Grant

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var item models.ProcurementItem

		if err := tx.Where("item_id = ?", body.ProcurementID).First(&item).Error; err != nil {
			return err
		}

		if item.ItemCount < body.Count {
			return ErrInsufficientStock
		}

		grant = models.Grant{
			UserID:        body.UserID,
			ProcurementID: body.ProcurementID,
			Count:         body.Count,
			ClubID:        body.ClubID,
		}

		if err := tx.Create(&grant).Error; err != nil {
			return err
		}

		result := tx.Model(&models.ProcurementItem{}).
			Where("item_id = ? AND item_count >= ?", body.ProcurementID, body.Count).
			Update("item_count", gorm.Expr("item_count - ?", body.Count))

		if result.Error != nil {
			return result.Error
		}

		// Another grant consumed the stock between the read and the
		// decrement; fail this one instead of going negative.
		if result.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Procurement item not found"})
		case errors.Is(err, ErrInsufficientStock):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient count"})
		default:
			log.Printf("Failed to process grant: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, grant)
}
