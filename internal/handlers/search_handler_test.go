package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porchfest/backend/internal/models"
)

type searchResponse struct {
	Artists []models.Artist `json:"artists"`
	Genres  []models.Genre  `json:"genres"`
}

func search(t *testing.T, r *gin.Engine, entry string) searchResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/v1/search", gin.H{"entry": entry}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp searchResponse
	decodeBody(t, w, &resp)
	return resp
}

func TestSearch_SingleExactMatch(t *testing.T) {
	r, db := setupTestServer(t)
	createArtist(t, db, "Madonna")
	createArtist(t, db, "The Flywheels")

	resp := search(t, r, "Madonna")
	require.Len(t, resp.Artists, 1)
	assert.Equal(t, "Madonna", resp.Artists[0].Name)
	assert.Empty(t, resp.Genres)
}

func TestSearch_SubstringFillsRemainder(t *testing.T) {
	r, db := setupTestServer(t)
	createArtist(t, db, "Band")
	createArtist(t, db, "Band of Horses")
	createArtist(t, db, "The Band Camino")

	resp := search(t, r, "Band")
	require.Len(t, resp.Artists, 3)
	// The exact match leads, and shows up once despite also matching the
	// substring query.
	assert.Equal(t, "Band", resp.Artists[0].Name)
	seen := map[string]int{}
	for _, artist := range resp.Artists {
		seen[artist.Name]++
	}
	assert.Equal(t, 1, seen["Band"])
}

func TestSearch_CapsAtFour(t *testing.T) {
	r, db := setupTestServer(t)
	for _, name := range []string{"Band A", "Band B", "Band C", "Band D", "Band E"} {
		createArtist(t, db, name)
	}

	resp := search(t, r, "Band")
	assert.Len(t, resp.Artists, 4)
}

func TestSearch_MatchesGenresIndependently(t *testing.T) {
	r, db := setupTestServer(t)
	createGenre(t, db, "Rock")
	createGenre(t, db, "Punk rock")
	createArtist(t, db, "Rocket Club")

	resp := search(t, r, "Rock")
	require.Len(t, resp.Genres, 2)
	assert.Equal(t, "Rock", resp.Genres[0].Name)
	require.Len(t, resp.Artists, 1)
	assert.Equal(t, "Rocket Club", resp.Artists[0].Name)
}

func TestSearch_NoMatchesReturnsEmptyLists(t *testing.T) {
	r, _ := setupTestServer(t)

	resp := search(t, r, "nothing here")
	assert.Empty(t, resp.Artists)
	assert.Empty(t, resp.Genres)
}

func TestSearch_MissingEntryIsBadRequest(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/v1/search", gin.H{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
