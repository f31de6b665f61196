package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/joho/godotenv"
	"github.com/mozqueda-alejandro/nutrition-tracker/internal/admin"
	"github.com/mozqueda-alejandro/nutrition-tracker/internal/database"
	"github.com/mozqueda-alejandro/nutrition-tracker/internal/repository"
	"github.com/mozqueda-alejandro/nutrition-tracker/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	// Подключение к базе
	db, err := database.NewPostgres(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := database.CreateSchema(db); err != nil {
		log.Fatal("Failed to create schema:", err)
	}

	// Репозитории
	referenceRepo := repository.NewReferenceRepo(db)
	foodLogRepo := repository.NewFoodLogRepo(db)

	// Сервисы
	referenceService := service.NewReferenceService(referenceRepo)
	foodLogService := service.NewFoodLogService(foodLogRepo)

	// Gin router
	router := gin.Default()
	admin.SetupRoutes(router, referenceService, foodLogService)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	log.Println("Admin panel starting on", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Failed to run admin panel:", err)
	}
}
