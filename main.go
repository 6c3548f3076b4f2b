package main

import (
	"encoding/json"
	"log"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/routes/assignments"
	"github.com/LUCY-sama29/school-erp/app/routes/attendance"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/LUCY-sama29/school-erp/app/routes/books"
	"github.com/LUCY-sama29/school-erp/app/routes/classes"
	"github.com/LUCY-sama29/school-erp/app/routes/dashboard"
	"github.com/LUCY-sama29/school-erp/app/routes/fees"
	"github.com/LUCY-sama29/school-erp/app/routes/homework"
	"github.com/LUCY-sama29/school-erp/app/routes/marks"
	"github.com/LUCY-sama29/school-erp/app/routes/notices"
	"github.com/LUCY-sama29/school-erp/app/routes/parents"
	"github.com/LUCY-sama29/school-erp/app/routes/reports"
	"github.com/LUCY-sama29/school-erp/app/routes/students"
	"github.com/LUCY-sama29/school-erp/app/routes/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Check if this is an API request
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	// Handle different error codes for web requests
	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - School ERP",
			"CurrentPage": "",
		})
	case 403:
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - School ERP",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": err.Error(),
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Unauthorized - School ERP",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Server Error - School ERP",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - School ERP",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Initialize configuration and database
	config.Load()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})
	engine.Reload(true) // Enable template reloading for development

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")
	app.Static("/uploads", config.GetConfig().UploadDir)

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup user management routes
	users.SetupUserRoutes(app)

	// Setup students routes
	students.SetupStudentRoutes(app)

	// Setup classes routes
	classes.SetupClassRoutes(app)

	// Setup parents routes
	parents.SetupParentRoutes(app)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app)

	// Setup assignments routes
	assignments.SetupAssignmentRoutes(app)

	// Setup marks routes
	marks.SetupMarkRoutes(app)

	// Setup report card routes
	reports.SetupReportRoutes(app)

	// Setup fees routes
	fees.SetupFeeRoutes(app)

	// Setup notices routes
	notices.SetupNoticeRoutes(app)

	// Setup homework routes
	homework.SetupHomeworkRoutes(app)

	// Setup books routes
	books.SetupBookRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	addr := config.GetConfig().ListenAddr
	log.Println("Server starting on " + addr)
	log.Fatal(app.Listen(addr))
}
