package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/porchfest/backend/internal/helpers"
	"github.com/porchfest/backend/internal/models"
)

type FavoriteRequest struct {
	ArtistID uuid.UUID `json:"artist_id" binding:"required"`
}

// ToggleFavorite creates a favorite=true row on first toggle and flips the
// boolean afterwards. The write runs in a transaction and the (user, artist)
// unique index guarantees a single row per pair even under concurrent
// toggles.
func ToggleFavorite(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var artist models.Artist
	if err := gormDB.Where("id = ?", req.ArtistID).First(&artist).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
		return
	}

	var favorite models.Favorite
	err := gormDB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND artist_id = ?", userID, artist.ID).First(&favorite).Error
		if err == gorm.ErrRecordNotFound {
			favorite = models.Favorite{
				UserID:   userID,
				ArtistID: artist.ID,
				Favorite: true,
			}
			return tx.Create(&favorite).Error
		}
		if err != nil {
			return err
		}

		favorite.Favorite = !favorite.Favorite
		return tx.Model(&favorite).Update("favorite", favorite.Favorite).Error
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update favorite.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorite": favorite.Favorite})
}

func ListFavorites(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var favorites []models.Favorite
	err := gormDB.Preload("Artist").
		Where("user_id = ? AND favorite = ?", userID, true).
		Find(&favorites).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving favorites.")
		return
	}

	artists := make([]models.Artist, 0, len(favorites))
	for _, favorite := range favorites {
		artists = append(artists, favorite.Artist)
	}

	c.JSON(http.StatusOK, artists)
}
