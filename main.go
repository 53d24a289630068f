package main

import (
	"log"
	"os"
	"time"

	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Controllers"
	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/CronJobs"
	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Models"
	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	Models.ConnectDataBase()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"}, // Replace with your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))
	Routes.ConfigRoutes(router)

	janitor := CronJobs.NewDocumentJanitor(Controllers.DocumentsDir, 7*24*time.Hour)
	janitor.StartCleanupCron()

	router.Run(":" + getEnv("PORT", "8080"))
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
