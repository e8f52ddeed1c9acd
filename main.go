package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stayhub/config"
	"stayhub/controllers"
	_ "stayhub/docs"
	"stayhub/jobs"
	"stayhub/models"
	"stayhub/routes"
	"stayhub/services"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.Guest{},
		&models.RoomType{},
		&models.Floor{},
		&models.Room{},
		&models.RentalForm{},
		&models.Booking{},
		&models.Review{},
		&models.ChatHistory{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env not loaded, using existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	jobs.SetPendingExpirer(services.BookingExpirer{})
	jobs.SetSnapshotWarmer(services.SnapshotWarmer{})
	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)
	controllers.SetupChatHandlers(m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
