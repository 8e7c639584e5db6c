package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/porchfest/backend/config"
	"github.com/porchfest/backend/internal/handlers"
	"github.com/porchfest/backend/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	public := r.Group("/v1")
	{
		public.POST("/signup", handlers.Signup)
		public.POST("/login", handlers.Login)

		public.GET("/artists", handlers.ListArtists)
		public.GET("/artists/:slug", handlers.GetArtist)
		public.GET("/genres", handlers.ListGenres)
		public.GET("/genres/:slug", handlers.GetGenre)
		public.GET("/schedule", handlers.ListSchedule)
		public.POST("/search", handlers.Search)
	}

	refresh := r.Group("/v1")
	refresh.Use(middleware.JWTRefreshMiddleware())
	{
		refresh.POST("/refresh", handlers.Refresh)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.GET("/profile", handlers.GetProfile)
		protected.POST("/favorites", handlers.ToggleFavorite)
		protected.GET("/favorites", handlers.ListFavorites)
	}

	admin := r.Group("/v1/admin")
	{
		admin.POST("/artists", handlers.CreateArtist)
		admin.POST("/porches", handlers.CreatePorch)
		admin.POST("/events", handlers.CreateEvent)
		admin.POST("/populate", handlers.PopulateDB)
		admin.POST("/reset", handlers.ResetDB)
		admin.POST("/sample", handlers.SeedSample)
	}
}
