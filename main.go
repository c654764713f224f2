package main

import (
	"log"

	"github.com/Govind-619/PaySphere/config"
	"github.com/Govind-619/PaySphere/routes"
	"github.com/Govind-619/PaySphere/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	if err := utils.InitLogger(cfg.LogLevel, cfg.Env); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Initialize database and ensure the schema exists
	if err := config.InitDB(cfg); err != nil {
		utils.LogError("Failed to initialize database: %v", err)
		log.Fatal("Failed to initialize database:", err)
	}

	// Set up router
	router := routes.SetupRouter()

	utils.LogInfo("%s starting on port 8080 (env: %s)", cfg.AppName, cfg.Env)
	// Start server
	if err := router.Run(":8080"); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
