package transactionValidator

import (
	"finflow/middleware"
	"finflow/models"
	"finflow/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Create validates a new transaction request. Nothing touches the store
// until every field rule passes.
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Type        string           `json:"type"`
			Category    string           `json:"category"`
			Amount      *decimal.Decimal `json:"amount"`
			Description string           `json:"description"`
			Date        string           `json:"date"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !models.TransactionType(reqData.Type).IsValid() {
			errors["type"] = "Type must be income or expense!"
		}

		reqData.Category = strings.TrimSpace(reqData.Category)
		if reqData.Category == "" {
			errors["category"] = "Category is required!"
		}

		if reqData.Amount == nil || !reqData.Amount.IsPositive() {
			errors["amount"] = "Amount must be greater than 0!"
		}

		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Date != "" {
			if _, err := utils.ParseDate(reqData.Date); err != nil {
				errors["date"] = "Invalid date format!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTransaction", reqData)
		return c.Next()
	}
}

// Update validates a transaction update. Every field is optional; a field
// that is present must still satisfy the same rules as on create. Fields
// outside this set are never read, so callers cannot touch the owner, the
// id or the timestamps.
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Type        *string          `json:"type"`
			Category    *string          `json:"category"`
			Amount      *decimal.Decimal `json:"amount"`
			Description *string          `json:"description"`
			Date        *string          `json:"date"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Type != nil && !models.TransactionType(*reqData.Type).IsValid() {
			errors["type"] = "Type must be income or expense!"
		}

		if reqData.Category != nil {
			trimmed := strings.TrimSpace(*reqData.Category)
			if trimmed == "" {
				errors["category"] = "Category cannot be empty!"
			}
			reqData.Category = &trimmed
		}

		if reqData.Amount != nil && !reqData.Amount.IsPositive() {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if reqData.Description != nil {
			trimmed := strings.TrimSpace(*reqData.Description)
			reqData.Description = &trimmed
		}

		if reqData.Date != nil {
			if _, err := utils.ParseDate(*reqData.Date); err != nil {
				errors["date"] = "Invalid date format!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTransactionUpdate", reqData)
		return c.Next()
	}
}
