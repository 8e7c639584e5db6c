package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/porchfest/backend/internal/helpers"
	"github.com/porchfest/backend/internal/models"
)

type genreArtists struct {
	Genre   string          `json:"genre"`
	Slug    string          `json:"slug"`
	Artists []models.Artist `json:"artists"`
}

// ListArtists returns every artist alphabetically when sort=alphabetical,
// otherwise a per-genre listing of up to 3 representative artists.
func ListArtists(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	if c.DefaultQuery("sort", "genre") == "alphabetical" {
		var artists []models.Artist
		if err := gormDB.Order("name ASC").Find(&artists).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artists.")
			return
		}
		c.JSON(http.StatusOK, artists)
		return
	}

	var genres []models.Genre
	if err := gormDB.Order("name ASC").Find(&genres).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving genres.")
		return
	}

	results := make([]genreArtists, 0, len(genres))
	for _, genre := range genres {
		var artists []models.Artist
		err := gormDB.
			Joins("JOIN artist_genres ON artist_genres.artist_id = artists.id").
			Where("artist_genres.genre_id = ?", genre.ID).
			Order("artists.name ASC").
			Limit(3).
			Find(&artists).Error
		if err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artists.")
			return
		}
		results = append(results, genreArtists{
			Genre:   genre.Name,
			Slug:    genre.Slug,
			Artists: artists,
		})
	}

	c.JSON(http.StatusOK, results)
}

// optionalUserID resolves a bearer access token if one is presented. Routes
// that work both anonymously and authenticated use it instead of the auth
// middleware.
func optionalUserID(c *gin.Context) (uuid.UUID, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return uuid.Nil, false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return uuid.Nil, false
	}
	userID, err := helpers.ParseToken(parts[1], helpers.TokenTypeAccess)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

func GetArtist(c *gin.Context) {
	slug := c.Param("slug")

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var artist models.Artist
	if err := gormDB.Preload("Genres").Where("url_slug = ?", slug).First(&artist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artist.")
		return
	}

	result := gin.H{"artist": artist}

	if userID, authed := optionalUserID(c); authed {
		var favorite models.Favorite
		err := gormDB.Where("user_id = ? AND artist_id = ?", userID, artist.ID).First(&favorite).Error
		if err == nil {
			result["liked"] = favorite.Favorite
		}
	}

	c.JSON(http.StatusOK, result)
}
