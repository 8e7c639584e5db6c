package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/porchfest/backend/internal/helpers"
	"github.com/porchfest/backend/internal/models"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func getDB(c *gin.Context) (*gorm.DB, bool) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return db.(*gorm.DB), true
}

func getUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

// issueTokens generates a fresh access/refresh pair and persists both on
// the user row so the current tokens are always queryable.
func issueTokens(db *gorm.DB, user *models.User) error {
	accessToken, err := helpers.GenerateAccessToken(user.ID)
	if err != nil {
		return err
	}
	refreshToken, err := helpers.GenerateRefreshToken(user.ID)
	if err != nil {
		return err
	}

	user.AccessToken = accessToken
	user.RefreshToken = refreshToken
	return db.Model(user).Updates(map[string]interface{}{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	}).Error
}

func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if !helpers.IsValidEmail(req.Email) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Email is not a valid format.")
		return
	}
	if !helpers.IsValidPassword(req.Password) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Password must be 8-20 characters with a digit, a lowercase, an uppercase and a symbol.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var existingUser models.User
	if result := gormDB.Where("email = ?", req.Email).First(&existingUser); result.Error == nil {
		helpers.RespondWithError(c, http.StatusConflict, "User already exists. Please log in.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to hash the password.")
		return
	}

	user := models.User{
		ID:       uuid.New(),
		Username: strings.SplitN(req.Email, "@", 2)[0],
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := gormDB.Create(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	if err := issueTokens(gormDB, &user); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate tokens.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"access_token":  user.AccessToken,
		"refresh_token": user.RefreshToken,
	})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var user models.User
	if err := gormDB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	if err := issueTokens(gormDB, &user); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate tokens.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"access_token":  user.AccessToken,
		"refresh_token": user.RefreshToken,
	})
}

func Refresh(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var user models.User
	if err := gormDB.Where("id = ?", userID).First(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Unknown user.")
		return
	}

	accessToken, err := helpers.GenerateAccessToken(user.ID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	if err := gormDB.Model(&user).Update("access_token", accessToken).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to persist token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

func GetProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var user models.User
	if err := gormDB.Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "User not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": user.Email})
}
