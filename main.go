package main

import (
	"time"

	"library-app/config"
	"library-app/database"
	routes "library-app/internal/app/http"
	"library-app/internal/storage/uploads"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	db := database.InitDB()
	store := uploads.New(config.UPLOAD_DIR)

	r := gin.Default()
	r.MaxMultipartMemory = uploads.MaxUploadBytes

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, store)

	r.Run(":" + config.PORT)
}
