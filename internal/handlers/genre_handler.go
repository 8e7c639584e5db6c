package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/porchfest/backend/internal/helpers"
	"github.com/porchfest/backend/internal/models"
)

func ListGenres(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var genres []models.Genre
	if err := gormDB.Order("name ASC").Find(&genres).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving genres.")
		return
	}

	c.JSON(http.StatusOK, genres)
}

func GetGenre(c *gin.Context) {
	slug := c.Param("slug")

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var genre models.Genre
	if err := gormDB.Where("url_slug = ?", slug).First(&genre).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Genre not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving genre.")
		return
	}

	var artists []models.Artist
	err := gormDB.
		Joins("JOIN artist_genres ON artist_genres.artist_id = artists.id").
		Where("artist_genres.genre_id = ?", genre.ID).
		Order("artists.name ASC").
		Find(&artists).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artists.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"genre":   genre.Name,
		"slug":    genre.Slug,
		"artists": artists,
	})
}
