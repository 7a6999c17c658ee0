package transactionController

import (
	"finflow/database"
	"finflow/middleware"
	"finflow/models"
	"finflow/stats"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats assembles the financial summary for an optional date
// window: totals, the expense breakdown by category and the monthly series.
func GetDashboardStats(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	filter := models.TransactionFilter{UserID: userId}
	if errs := parseDateBounds(c, &filter); len(errs) > 0 {
		return middleware.ValidationErrorResponse(c, errs)
	}

	// Full scan of the window in insertion order. The listing cap does not
	// apply here; the dashboard must reflect the whole range requested.
	var transactions []models.Transaction
	if err := filter.Scope(database.Database.Db).
		Order("id ASC").
		Find(&transactions).Error; err != nil {
		log.Printf("Error fetching dashboard transactions for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	summary := stats.Build(transactions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched!", summary)
}
