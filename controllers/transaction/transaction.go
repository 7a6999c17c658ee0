package transactionController

import (
	"errors"
	"finflow/database"
	"finflow/middleware"
	"finflow/models"
	"finflow/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// parseDateBounds reads the optional startDate/endDate query params into
// the filter. Unparseable values are caller errors, never silently skipped.
func parseDateBounds(c *fiber.Ctx, filter *models.TransactionFilter) map[string]string {
	errs := make(map[string]string)

	if startStr := c.Query("startDate"); startStr != "" {
		t, err := utils.ParseDate(startStr)
		if err != nil {
			errs["startDate"] = "Invalid date format!"
		} else {
			filter.StartDate = &t
		}
	}
	if endStr := c.Query("endDate"); endStr != "" {
		t, err := utils.ParseDate(endStr)
		if err != nil {
			errs["endDate"] = "Invalid date format!"
		} else {
			filter.EndDate = &t
		}
	}

	return errs
}

// ListTransactions returns the user's transactions, most recent first,
// capped at models.MaxListResults rows
func ListTransactions(c *fiber.Ctx) error {
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
	if err := filter.Ordered(database.Database.Db).
		Limit(models.MaxListResults).
		Find(&transactions).Error; err != nil {
		log.Printf("Error fetching transactions for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched!", fiber.Map{
		"transactions": transactions,
		"count":        len(transactions),
	})
}

// GetTransaction returns a single transaction by id
func GetTransaction(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid transaction id!", nil)
	}

	var transaction models.Transaction
	if err := database.Database.Db.Where("id = ? AND user_id = ?", id, userId).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A record owned by someone else looks exactly like a missing one
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Transaction not found!", nil)
		}
		log.Printf("Error fetching transaction %d for user %d: %v", id, userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transaction!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction fetched!", transaction)
}

// CreateTransaction records a new income or expense for the user
func CreateTransaction(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedTransaction").(*struct {
		Type        string           `json:"type"`
		Category    string           `json:"category"`
		Amount      *decimal.Decimal `json:"amount"`
		Description string           `json:"description"`
		Date        string           `json:"date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Occurrence date defaults to the moment of creation when omitted
	date := time.Now()
	if reqData.Date != "" {
		date, _ = utils.ParseDate(reqData.Date) // format already checked by the validator
	}

	transaction := models.Transaction{
		UserID:      userId,
		Type:        models.TransactionType(reqData.Type),
		Category:    reqData.Category,
		Amount:      *reqData.Amount,
		Description: reqData.Description,
		Date:        date,
	}

	if err := database.Database.Db.Create(&transaction).Error; err != nil {
		log.Printf("Error creating transaction for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create transaction!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Transaction created!", transaction)
}

// UpdateTransaction changes only the whitelisted fields the request names.
// Owner, id and timestamps can never be written through this path.
func UpdateTransaction(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid transaction id!", nil)
	}

	reqData, ok := c.Locals("validatedTransactionUpdate").(*struct {
		Type        *string          `json:"type"`
		Category    *string          `json:"category"`
		Amount      *decimal.Decimal `json:"amount"`
		Description *string          `json:"description"`
		Date        *string          `json:"date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var transaction models.Transaction
	if err := database.Database.Db.Where("id = ? AND user_id = ?", id, userId).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Transaction not found!", nil)
		}
		log.Printf("Error fetching transaction %d for user %d: %v", id, userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transaction!", nil)
	}

	if reqData.Type != nil {
		transaction.Type = models.TransactionType(*reqData.Type)
	}
	if reqData.Category != nil {
		transaction.Category = *reqData.Category
	}
	if reqData.Amount != nil {
		transaction.Amount = *reqData.Amount
	}
	if reqData.Description != nil {
		transaction.Description = *reqData.Description
	}
	if reqData.Date != nil {
		date, _ := utils.ParseDate(*reqData.Date)
		transaction.Date = date
	}

	if err := database.Database.Db.Save(&transaction).Error; err != nil {
		log.Printf("Error updating transaction %d for user %d: %v", id, userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update transaction!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction updated!", transaction)
}

// DeleteTransaction removes a transaction for good. No tombstones.
func DeleteTransaction(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid transaction id!", nil)
	}

	result := database.Database.Db.Where("id = ? AND user_id = ?", id, userId).Delete(&models.Transaction{})
	if result.Error != nil {
		log.Printf("Error deleting transaction %d for user %d: %v", id, userId, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete transaction!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Transaction not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction deleted successfully!", nil)
}
