package transactionRoutes

import (
	transactionController "finflow/controllers/transaction"
	"finflow/middleware"
	transactionValidator "finflow/validators/transaction"

	"github.com/gofiber/fiber/v2"
)

func SetupTransactionRoutes(app *fiber.App) {
	transactionGroup := app.Group("/transactions")

	// The dashboard and export routes must register before the :id route so
	// Fiber does not swallow them as path parameters.
	transactionGroup.Get("/stats/dashboard", middleware.JWTMiddleware, transactionController.GetDashboardStats)
	transactionGroup.Get("/export", middleware.JWTMiddleware, transactionController.ExportTransactions)

	transactionGroup.Get("/", middleware.JWTMiddleware, transactionController.ListTransactions)
	transactionGroup.Post("/", transactionValidator.Create(), middleware.JWTMiddleware, transactionController.CreateTransaction)
	transactionGroup.Get("/:id", middleware.JWTMiddleware, transactionController.GetTransaction)
	transactionGroup.Put("/:id", transactionValidator.Update(), middleware.JWTMiddleware, transactionController.UpdateTransaction)
	transactionGroup.Delete("/:id", middleware.JWTMiddleware, transactionController.DeleteTransaction)
}
