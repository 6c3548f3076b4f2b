package users

import (
	"database/sql"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func GetUsersAPI(c *fiber.Ctx) error {
	allUsers, err := database.GetAllUsers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load users"})
	}
	return c.JSON(fiber.Map{"users": allUsers})
}

func CreateUserAPI(c *fiber.Ctx) error {
	type CreateUserRequest struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
		Role     string `json:"role" form:"role"`
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
	}
	if !models.ValidRole(req.Role) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role"})
	}

	exists, err := database.UsernameExists(config.GetDB(), req.Username)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if exists {
		return c.Status(409).JSON(fiber.Map{"error": "Username already exists"})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Username: req.Username,
		Password: hashedPassword,
		Role:     models.Role(req.Role),
	}
	if err := database.CreateUser(config.GetDB(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

func UpdateUserAPI(c *fiber.Ctx) error {
	type UpdateUserRequest struct {
		Username string `json:"username" form:"username"`
		Role     string `json:"role" form:"role"`
	}

	userID := c.Params("id")

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Username == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Username is required"})
	}
	if !models.ValidRole(req.Role) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role"})
	}

	existing, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	// Renaming onto a taken username is rejected; keeping the same name
	// is fine.
	if req.Username != existing.Username {
		exists, err := database.UsernameExists(config.GetDB(), req.Username)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if exists {
			return c.Status(409).JSON(fiber.Map{"error": "Username already exists"})
		}
	}

	if err := database.UpdateUser(config.GetDB(), userID, req.Username, models.Role(req.Role)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{"message": "User updated successfully"})
}

// ResetPasswordAPI sets a new password for an account. This is the only reset
// path; the forgot-password form just tells users to ask an administrator.
func ResetPasswordAPI(c *fiber.Ctx) error {
	type ResetPasswordRequest struct {
		NewPassword string `json:"new_password" form:"new_password"`
	}

	userID := c.Params("id")

	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.NewPassword == "" {
		return c.Status(400).JSON(fiber.Map{"error": "New password is required"})
	}

	if _, err := database.GetUserByID(config.GetDB(), userID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	if err := database.UpdateUserPassword(config.GetDB(), userID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Password reset successfully"})
}

func DeleteUserAPI(c *fiber.Ctx) error {
	userID := c.Params("id")

	// An admin cannot remove their own account.
	if userID == c.Locals("user_id").(string) {
		return c.Status(400).JSON(fiber.Map{"error": "You cannot delete your own account"})
	}

	if _, err := database.GetUserByID(config.GetDB(), userID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if err := database.DeleteUser(config.GetDB(), userID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
