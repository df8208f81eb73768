package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grantdesk/grantdesk/internal/models"
	"gorm.io/gorm"
)

type ProcurementHandler struct {
	db *gorm.DB
}

func NewProcurementHandler(db *gorm.DB) *ProcurementHandler {
	return &ProcurementHandler{db: db}
}

type CreateItemRequest struct {
	ItemName     string `json:"item_name" binding:"required"`
	ItemCount    int    `json:"item_count" binding:"min=0"`
	ItemCategory string `json:"item_category" binding:"required"`
}

type UpdateItemRequest struct {
	ItemID       uint   `json:"item_id" binding:"required"`
	ItemName     string `json:"item_name" binding:"required"`
	ItemCount    int    `json:"item_count" binding:"min=0"`
	ItemCategory string `json:"item_category" binding:"required"`
}

type DeleteItemRequest struct {
	ItemID uint `json:"item_id" binding:"required"`
}

// ListItems supports optional case-insensitive substring filters on name and
// category. An empty filter matches everything rather than the empty string.
func (h *ProcurementHandler) ListItems(ctx *gin.Context) {
	itemName := ctx.Query("item_name")
	itemCategory := ctx.Query("item_category")

	query := h.db.Model(&models.ProcurementItem{})

	if itemName != "" {
		query = query.Where("LOWER(item_name) LIKE LOWER(?)", "%"+itemName+"%")
	}

	if itemCategory != "" {
		query = query.Where("LOWER(item_category) LIKE LOWER(?)", "%"+itemCategory+"%")
	}

	items := make([]models.ProcurementItem, 0)

	if err := query.Find(&items).Error; err != nil {
		log.Printf("Failed to list procurement items: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (h *ProcurementHandler) CreateItem(ctx *gin.Context) {
	var body CreateItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	item := models.ProcurementItem{
		ItemName:     body.ItemName,
		ItemCount:    body.ItemCount,
		ItemCategory: body.ItemCategory,
	}

	if err := h.db.Create(&item).Error; err != nil {
		log.Printf("Failed to create procurement item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// UpdateItem is a full-row replace keyed by item_id.
func (h *ProcurementHandler) UpdateItem(ctx *gin.Context) {
	var body UpdateItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var item models.ProcurementItem

	if err := h.db.Where("item_id = ?", body.ItemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Procurement item not found"})
			return
		}
		log.Printf("Failed to fetch procurement item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	item.ItemName = body.ItemName
	item.ItemCount = body.ItemCount
	item.ItemCategory = body.ItemCategory

	if err := h.db.Save(&item).Error; err != nil {
		log.Printf("Failed to update procurement item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// DeleteItem acknowledges with a confirmation message rather than the deleted
// row, and does not report a missing id as an error.
func (h *ProcurementHandler) DeleteItem(ctx *gin.Context) {
	var body DeleteItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.db.Where("item_id = ?", body.ItemID).Delete(&models.ProcurementItem{}).Error; err != nil {
		log.Printf("Failed to delete procurement item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusAccepted, gin.H{
		"message": fmt.Sprintf("Item with ID %d has been deleted", body.ItemID),
	})
}
