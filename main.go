package main

import (
	"finflow/config"
	"finflow/database"
	authRoutes "finflow/routers/authRoutes"
	transactionRoutes "finflow/routers/transactionRoutes"
	userProfileRoutes "finflow/routers/userRoutes"
	"finflow/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "FinFlow API is running"})
	})

	authRoutes.SetupAuthRoutes(app)
	transactionRoutes.SetupTransactionRoutes(app)
	userProfileRoutes.SetupUserRoutes(app)

	utils.InitializeReportScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
