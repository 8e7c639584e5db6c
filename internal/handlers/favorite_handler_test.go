package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porchfest/backend/internal/models"
)

func toggleFavorite(t *testing.T, r *gin.Engine, artistID uuid.UUID, token string) bool {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/v1/favorites", gin.H{"artist_id": artistID}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Favorite bool `json:"favorite"`
	}
	decodeBody(t, w, &resp)
	return resp.Favorite
}

func TestToggleFavorite_FlipsTrueThenFalse(t *testing.T) {
	r, db := setupTestServer(t)
	artist := createArtist(t, db, "The Flywheels")
	access, _ := signupUser(t, r, "alice@example.com")

	assert.True(t, toggleFavorite(t, r, artist.ID, access))
	assert.False(t, toggleFavorite(t, r, artist.ID, access))
	assert.True(t, toggleFavorite(t, r, artist.ID, access))

	// Still a single row for the pair.
	var count int64
	db.Model(&models.Favorite{}).Where("artist_id = ?", artist.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestToggleFavorite_RequiresAuth(t *testing.T) {
	r, db := setupTestServer(t)
	artist := createArtist(t, db, "The Flywheels")

	w := doJSON(t, r, http.MethodPost, "/v1/favorites", gin.H{"artist_id": artist.ID}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestToggleFavorite_UnknownArtistIs404(t *testing.T) {
	r, _ := setupTestServer(t)
	access, _ := signupUser(t, r, "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/v1/favorites", gin.H{"artist_id": uuid.New()}, access)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListFavorites_OnlyFavoritedArtists(t *testing.T) {
	r, db := setupTestServer(t)
	kept := createArtist(t, db, "Kept Band")
	dropped := createArtist(t, db, "Dropped Band")
	createArtist(t, db, "Never Touched")
	access, _ := signupUser(t, r, "alice@example.com")

	toggleFavorite(t, r, kept.ID, access)
	toggleFavorite(t, r, dropped.ID, access)
	toggleFavorite(t, r, dropped.ID, access) // back to false

	w := doJSON(t, r, http.MethodGet, "/v1/favorites", nil, access)
	require.Equal(t, http.StatusOK, w.Code)

	var artists []models.Artist
	decodeBody(t, w, &artists)
	require.Len(t, artists, 1)
	assert.Equal(t, "Kept Band", artists[0].Name)
}

func TestListFavorites_ScopedToUser(t *testing.T) {
	r, db := setupTestServer(t)
	artist := createArtist(t, db, "The Flywheels")
	aliceToken, _ := signupUser(t, r, "alice@example.com")
	bobToken, _ := signupUser(t, r, "bob@example.com")

	toggleFavorite(t, r, artist.ID, aliceToken)

	w := doJSON(t, r, http.MethodGet, "/v1/favorites", nil, bobToken)
	require.Equal(t, http.StatusOK, w.Code)

	var artists []models.Artist
	decodeBody(t, w, &artists)
	assert.Empty(t, artists)
}
