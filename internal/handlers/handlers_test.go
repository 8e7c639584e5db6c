package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/porchfest/backend/config"
	"github.com/porchfest/backend/internal/helpers"
	"github.com/porchfest/backend/internal/models"
	"github.com/porchfest/backend/internal/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testDBCounter int

// setupTestServer builds a router backed by a fresh in-memory sqlite
// database. Each test gets its own named shared-cache DB so the pool's
// connections all see the same data.
func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	testDBCounter++
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", testDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))

	r := gin.New()
	server.SetupRoutes(r, db)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// signupUser registers a user through the API and returns the token pair.
func signupUser(t *testing.T, r *gin.Engine, email string) (access, refresh string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/v1/signup", gin.H{
		"email":    email,
		"password": "Abcdef1!",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	return resp.AccessToken, resp.RefreshToken
}

func createArtist(t *testing.T, db *gorm.DB, name string, genres ...models.Genre) models.Artist {
	t.Helper()
	artist := models.Artist{
		Name:   name,
		Slug:   helpers.Slugify(name),
		Genres: genres,
	}
	require.NoError(t, db.Create(&artist).Error)
	return artist
}

func createGenre(t *testing.T, db *gorm.DB, name string) models.Genre {
	t.Helper()
	genre := models.Genre{Name: name, Slug: helpers.Slugify(name)}
	require.NoError(t, db.Create(&genre).Error)
	return genre
}

func createPorch(t *testing.T, db *gorm.DB, address string) models.Porch {
	t.Helper()
	porch := models.Porch{Address: address}
	require.NoError(t, db.Create(&porch).Error)
	return porch
}
