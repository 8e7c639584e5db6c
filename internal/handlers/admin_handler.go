package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/porchfest/backend/internal/helpers"
	"github.com/porchfest/backend/internal/models"
	"github.com/porchfest/backend/internal/seed"
)

type CreateArtistRequest struct {
	Name      string `json:"name" binding:"required"`
	Hometown  string `json:"hometown"`
	About     string `json:"about"`
	Photo     string `json:"photo"`
	Spotify   string `json:"spotify"`
	Website   string `json:"website"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Merch     string `json:"merch"`
}

type CreatePorchRequest struct {
	Address string `json:"address" binding:"required"`
}

type CreateEventRequest struct {
	ArtistID uuid.UUID `json:"artist_id" binding:"required"`
	PorchID  uuid.UUID `json:"porch_id" binding:"required"`
	Time     time.Time `json:"time" binding:"required"`
}

func CreateArtist(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var existing models.Artist
	if result := gormDB.Where("name = ?", req.Name).First(&existing); result.Error == nil {
		helpers.RespondWithError(c, http.StatusConflict, "Artist already exists.")
		return
	}

	artist := models.Artist{
		Name:      req.Name,
		Hometown:  req.Hometown,
		About:     req.About,
		Photo:     req.Photo,
		Spotify:   req.Spotify,
		Website:   req.Website,
		Facebook:  req.Facebook,
		Twitter:   req.Twitter,
		Instagram: req.Instagram,
		Merch:     req.Merch,
		Slug:      helpers.Slugify(req.Name),
	}

	if err := gormDB.Create(&artist).Error; err != nil {
		helpers.RespondWithError(c, http.StatusConflict, "Failed to create artist.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "New artist created.",
		"artist_id": artist.ID,
	})
}

func CreatePorch(c *gin.Context) {
	var req CreatePorchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var existing models.Porch
	if result := gormDB.Where("address = ?", req.Address).First(&existing); result.Error == nil {
		helpers.RespondWithError(c, http.StatusConflict, "Porch already exists.")
		return
	}

	porch := models.Porch{Address: req.Address}
	if err := gormDB.Create(&porch).Error; err != nil {
		helpers.RespondWithError(c, http.StatusConflict, "Failed to create porch.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "New porch created.",
		"porch_id": porch.ID,
	})
}

// CreateEvent schedules an artist on a porch. The pre-checks produce the
// user-visible conflict messages; the unique indexes on (artist, time) and
// (porch, time) are what actually prevent double booking under concurrent
// requests.
func CreateEvent(c *gin.Context) {
	var req CreateEventRequest
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

	var porch models.Porch
	if err := gormDB.Where("id = ?", req.PorchID).First(&porch).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Porch not found.")
		return
	}

	var clash models.Performance
	if result := gormDB.Where("artist_id = ? AND time = ?", artist.ID, req.Time).First(&clash); result.Error == nil {
		helpers.RespondWithError(c, http.StatusConflict, "This artist is already playing at this time.")
		return
	}
	if result := gormDB.Where("porch_id = ? AND time = ?", porch.ID, req.Time).First(&clash); result.Error == nil {
		helpers.RespondWithError(c, http.StatusConflict, "An artist is already playing this porch at this time.")
		return
	}

	performance := models.Performance{
		ArtistID: artist.ID,
		PorchID:  porch.ID,
		Time:     req.Time,
	}
	if err := gormDB.Create(&performance).Error; err != nil {
		helpers.RespondWithError(c, http.StatusConflict, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "New event created.",
		"event_id": performance.ID,
	})
}

func scheduleCSVPath() string {
	if path := os.Getenv("SCHEDULE_CSV"); path != "" {
		return path
	}
	return "data/performer_schedule.csv"
}

func PopulateDB(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	err := gormDB.Transaction(func(tx *gorm.DB) error {
		return seed.PopulateFromCSV(tx, scheduleCSVPath())
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to populate database: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true})
}

// ResetDB is populate with a clean slate; the truncation inside the seeder
// already covers the wipe, so it shares the same path.
func ResetDB(c *gin.Context) {
	PopulateDB(c)
}

func SeedSample(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	err := gormDB.Transaction(func(tx *gorm.DB) error {
		return seed.Sample(tx)
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to seed sample data: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true})
}
