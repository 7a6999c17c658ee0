package userProfileRoutes

import (
	userProfileController "finflow/controllers/userControllers"
	"finflow/middleware"
	userProfileValidator "finflow/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userProfileController.GetProfile)
	userGroup.Put("/profile", userProfileValidator.UpdateProfile(), middleware.JWTMiddleware, userProfileController.UpdateProfile)
}
