package main

import (
	"log"
	"net/http"
	"os"

	"denuncias-be/config"
	"denuncias-be/controllers"
	"denuncias-be/repository"
	"denuncias-be/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	log.Println("MongoDB connection established successfully!")

	config.ConnectRedis()

	reports := repository.NewMongoReports(db)
	reportController := controllers.NewReportController(reports)

	r := gin.Default()
	r.Use(cors.Default())

	routes.AuthRoutes(r)
	routes.ReportRoutes(r, reportController)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Servidor funcionando correctamente"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
