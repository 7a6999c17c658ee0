package userController

import (
	"errors"
	"finflow/database"
	"finflow/middleware"
	"finflow/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetProfile returns the caller's own profile
func GetProfile(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
		}
		log.Printf("Error fetching profile for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched!", user)
}

// UpdateProfile changes the caller's name and/or email. The email must not
// belong to another account.
func UpdateProfile(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedProfile").(*struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
		}
		log.Printf("Error fetching profile for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	if reqData.Name != nil {
		user.Name = *reqData.Name
	}
	if reqData.Email != nil {
		// Check if email is already taken by another user
		var existing models.User
		if err := db.Where("email = ? AND id <> ?", *reqData.Email, userId).First(&existing).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already in use!", nil)
		}
		user.Email = *reqData.Email
	}

	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating profile for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated!", user)
}
