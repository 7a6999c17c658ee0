package userValidator

import (
	"finflow/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// UpdateProfile validates a profile update request. Both fields are
// optional but must not be empty or malformed when present.
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name  *string `json:"name"`
			Email *string `json:"email"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil {
			trimmed := strings.TrimSpace(*reqData.Name)
			if trimmed == "" {
				errors["name"] = "Name cannot be empty!"
			}
			reqData.Name = &trimmed
		}

		if reqData.Email != nil {
			if err := validate.Var(*reqData.Email, "required,email"); err != nil {
				errors["email"] = "Invalid email!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
