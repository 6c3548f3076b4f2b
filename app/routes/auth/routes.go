package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)
	auth.Get("/forgot-password", ShowForgotPasswordPage)
	auth.Post("/forgot-password", ForgotPasswordAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Post("/change-password", ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - School ERP",
	}, "")
}

func ShowForgotPasswordPage(c *fiber.Ctx) error {
	return c.Render("auth/forgot-password", fiber.Map{
		"Title": "Forgot Password - School ERP",
	}, "")
}

// AuthMiddleware validates JWT and sets user context
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	var claims *JWTClaims
	if tokenString != "" {
		if parsed, err := ValidateJWT(tokenString); err == nil {
			claims = parsed
		}
	}

	if Authorize(claims) == Unauthenticated {
		if isAPIRequest(c) {
			return c.Status(401).JSON(fiber.Map{"error": "Authentication required"})
		}
		// For web pages, redirect to login
		return c.Redirect("/auth/login")
	}

	// Set user context
	c.Locals("user_id", claims.UserID)
	c.Locals("username", claims.Username)
	c.Locals("role", claims.Role)
	c.Locals("claims", claims)
	if claims.StudentID != nil {
		c.Locals("student_id", *claims.StudentID)
	}

	return c.Next()
}

// RoleMiddleware checks if user has one of the required roles
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, _ := c.Locals("claims").(*JWTClaims)

		switch Authorize(claims, allowedRoles...) {
		case Allowed:
			return c.Next()
		case Unauthenticated:
			if isAPIRequest(c) {
				return c.Status(401).JSON(fiber.Map{"error": "Authentication required"})
			}
			return c.Redirect("/auth/login")
		}

		if isAPIRequest(c) {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}

		// For web pages, show 403 error page
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - School ERP",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
			"username":     c.Locals("username"),
		})
	}
}

func isAPIRequest(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}
