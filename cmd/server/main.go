package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"njaboot_connect_backend/internal/router"
	"njaboot_connect_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; environment variables win when both are set
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env file: %v", err)
	}

	// Initialize Logger
	utils.InitLogger()

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		utils.SetJWTSecret(secret)
	} else {
		utils.LogInfo("JWT_SECRET not set, using built-in development key")
	}

	engine := gin.Default()

	engine.Use(utils.RequestID())
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// All state is memory-resident and lost on restart.
	repos := router.NewRepositories()
	router.Setup(engine, repos)

	if utils.Getenv("SEED_DEMO_DATA", "false") == "true" {
		if err := router.SeedDemoData(repos); err != nil {
			utils.LogError(err, "Failed to seed demo data")
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		utils.LogInfo("Demo data seeded")
	}

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
