package transactionController

import (
	"bytes"
	"encoding/csv"
	"finflow/database"
	"finflow/middleware"
	"finflow/models"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ExportTransactions streams the user's transaction history as a CSV
// attachment. The same filters as the listing apply, but no row cap.
func ExportTransactions(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	filter := models.TransactionFilter{
		UserID:   userId,
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	if errs := parseDateBounds(c, &filter); len(errs) > 0 {
		return middleware.ValidationErrorResponse(c, errs)
	}

	var transactions []models.Transaction
	if err := filter.Ordered(database.Database.Db).Find(&transactions).Error; err != nil {
		log.Printf("Error exporting transactions for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to export transactions!", nil)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	writer.Write([]string{"id", "type", "category", "amount", "description", "date"})
	for _, txn := range transactions {
		writer.Write([]string{
			strconv.FormatUint(uint64(txn.ID), 10),
			string(txn.Type),
			txn.Category,
			txn.Amount.StringFixed(2),
			txn.Description,
			txn.Date.Format("2006-01-02"),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Printf("Error writing CSV for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to export transactions!", nil)
	}

	filename := fmt.Sprintf("transactions_%s.csv", uuid.NewString())
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Send(buf.Bytes())
}
