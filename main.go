package main

import (
	"log"
	"net/http"
	"os"

	"backoffice/config"
	_ "backoffice/docs"
	"backoffice/jobs"
	"backoffice/models"
	"backoffice/routes"
	"backoffice/services"
	"backoffice/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.PaymentMethod{},
		&models.Sale{},
		&models.Salary{},
		&models.ExpenseCategory{},
		&models.Expense{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	reportService := services.NewReportService(services.ReportServiceOptions{
		DB:     config.DB,
		Redis:  config.RedisClient,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	jobs.SetReportWarmer(reportService)

	migrateTables()

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
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
