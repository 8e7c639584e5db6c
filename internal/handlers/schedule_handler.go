package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/porchfest/backend/internal/helpers"
	"github.com/porchfest/backend/internal/models"
)

// ListSchedule returns every scheduled performance with its artist and
// porch, earliest first.
func ListSchedule(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var performances []models.Performance
	err := gormDB.Preload("Artist").Preload("Porch").Order("time ASC").Find(&performances).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving schedule.")
		return
	}

	c.JSON(http.StatusOK, performances)
}
