package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grantdesk/grantdesk/internal/auth"
	"github.com/grantdesk/grantdesk/internal/models"
	"github.com/grantdesk/grantdesk/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type SignupRequest struct {
	UserID            string `json:"user_id" binding:"required"`
	Username          string `json:"username" binding:"required"`
	ClubOrAssociation string `json:"club_or_association" binding:"required"`
	Password          string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	UserID            string `json:"user_id" binding:"required"`
	Username          string `json:"username" binding:"required"`
	ClubOrAssociation string `json:"club_or_association" binding:"required"`
}

// UserResponse is the sanitized view of a user account; the stored password
// hash is never serialized.
type UserResponse struct {
	UserID            string `json:"user_id"`
	Username          string `json:"username"`
	ClubOrAssociation string `json:"club_or_association"`
}

func toUserResponse(user models.User) UserResponse {
	return UserResponse{
		UserID:            user.UserID,
		Username:          user.Username,
		ClubOrAssociation: user.ClubOrAssociation,
	}
}

// Signup is the only public write path: it creates an account from an
// externally assigned user_id and a plaintext password, which is stored
// only as a bcrypt hash.
func (h *UserHandler) Signup(ctx *gin.Context) {
	var body SignupRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		UserID:            body.UserID,
		Username:          body.Username,
		ClubOrAssociation: body.ClubOrAssociation,
		Password:          string(passwordHash),
	}

	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "User ID already exists"})
			return
		}
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": toUserResponse(user)})
}

// Login verifies a user_id/password pair and issues a fresh token. The route
// itself is bearer-gated: any holder of a valid token can mint a token for
// another identity by presenting that identity's credentials.
func (h *UserHandler) Login(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	password := ctx.Query("password")

	var user models.User

	if err := h.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateJWT(user)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":  toUserResponse(user),
		"token": token,
	})
}

func (h *UserHandler) ListUsers(ctx *gin.Context) {
	var users []models.User

	if err := h.db.Find(&users).Error; err != nil {
		log.Printf("Failed to list users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]UserResponse, 0, len(users))

	for _, user := range users {
		response = append(response, toUserResponse(user))
	}

	ctx.JSON(http.StatusOK, gin.H{"users": response})
}

func (h *UserHandler) UpdateUser(ctx *gin.Context) {
	var body UpdateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var user models.User

	if err := h.db.Where("user_id = ?", body.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user.Username = body.Username
	user.ClubOrAssociation = body.ClubOrAssociation

	if err := h.db.Save(&user).Error; err != nil {
		log.Printf("Failed to update user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if identity, err := utils.GetCurrentIdentity(ctx); err == nil {
		log.Printf("User %s updated account %s", identity.UserID, user.UserID)
	}

	ctx.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func (h *UserHandler) DeleteUser(ctx *gin.Context) {
	userID := ctx.Query("user_id")

	result := h.db.Where("user_id = ?", userID).Delete(&models.User{})

	if result.Error != nil {
		log.Printf("Failed to delete user: %v", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if identity, err := utils.GetCurrentIdentity(ctx); err == nil {
		log.Printf("User %s deleted account %s", identity.UserID, userID)
	}

	ctx.Status(http.StatusNoContent)
}
