package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/porchfest/backend/internal/helpers"
	"github.com/porchfest/backend/internal/models"
)

const searchResultLimit = 4

type SearchRequest struct {
	Entry string `json:"entry" binding:"required"`
}

// searchArtists returns up to 4 matches: exact name matches first, then
// substring matches filling the remainder. The id set keeps an artist from
// appearing in both halves.
func searchArtists(db *gorm.DB, entry string) ([]models.Artist, error) {
	var exact []models.Artist
	if err := db.Where("name = ?", entry).Limit(searchResultLimit).Find(&exact).Error; err != nil {
		return nil, err
	}

	results := exact
	if len(exact) < searchResultLimit {
		seen := make(map[uuid.UUID]bool, len(exact))
		for _, artist := range exact {
			seen[artist.ID] = true
		}

		var similar []models.Artist
		err := db.Where("name LIKE ?", "%"+entry+"%").
			Limit(searchResultLimit - len(exact)).
			Find(&similar).Error
		if err != nil {
			return nil, err
		}
		for _, artist := range similar {
			if !seen[artist.ID] {
				results = append(results, artist)
			}
		}
	}
	return results, nil
}

func searchGenres(db *gorm.DB, entry string) ([]models.Genre, error) {
	var exact []models.Genre
	if err := db.Where("name = ?", entry).Limit(searchResultLimit).Find(&exact).Error; err != nil {
		return nil, err
	}

	results := exact
	if len(exact) < searchResultLimit {
		seen := make(map[uuid.UUID]bool, len(exact))
		for _, genre := range exact {
			seen[genre.ID] = true
		}

		var similar []models.Genre
		err := db.Where("name LIKE ?", "%"+entry+"%").
			Limit(searchResultLimit - len(exact)).
			Find(&similar).Error
		if err != nil {
			return nil, err
		}
		for _, genre := range similar {
			if !seen[genre.ID] {
				results = append(results, genre)
			}
		}
	}
	return results, nil
}

func Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	artists, err := searchArtists(gormDB, req.Entry)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching artists.")
		return
	}

	genres, err := searchGenres(gormDB, req.Entry)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching genres.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artists": artists,
		"genres":  genres,
	})
}
