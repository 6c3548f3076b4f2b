package fees

import (
	"time"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupFeeRoutes(app *fiber.App) {
	fees := app.Group("/fees")
	fees.Use(auth.AuthMiddleware)

	fees.Get("/", auth.RoleMiddleware("admin"), ShowFeesPage)
	fees.Get("/dashboard", auth.RoleMiddleware("admin"), ShowFeeDashboardPage)
	fees.Get("/outstanding", auth.RoleMiddleware("admin"), ShowOutstandingPage)
	fees.Get("/dues", auth.RoleMiddleware("admin"), ShowDuesPage)
	fees.Get("/reports", auth.RoleMiddleware("admin"), ShowFeeReportsPage)
	fees.Get("/my", auth.RoleMiddleware("student"), ShowMyFeesPage)
	fees.Get("/children", auth.RoleMiddleware("parent"), ShowChildrenFeesPage)
	fees.Get("/:id/receipt", auth.RoleMiddleware("admin", "student", "parent"), DownloadReceiptPDF)

	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RoleMiddleware("admin"), GetFeesAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateFeeAPI)
	api.Post("/:id/mark-paid", auth.RoleMiddleware("admin"), MarkPaidAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteFeeAPI)
	api.Get("/export", auth.RoleMiddleware("admin"), ExportFeesCSV)
	api.Post("/reminders", auth.RoleMiddleware("admin"), SendRemindersAPI)
}

func parseFeeFilter(c *fiber.Ctx) database.FeeFilter {
	filter := database.FeeFilter{
		ClassID: c.Query("class_id"),
		Status:  c.Query("status"),
	}
	if v := c.Query("from_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.FromDate = &t
		}
	}
	if v := c.Query("to_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.ToDate = &t
		}
	}
	return filter
}

func ShowFeesPage(c *fiber.Ctx) error {
	db := config.GetDB()

	allFees, err := database.GetFees(db, parseFeeFilter(c))
	if err != nil {
		return err
	}

	allClasses, err := database.GetAllClasses(db)
	if err != nil {
		return err
	}

	allStudents, err := database.GetAllStudents(db)
	if err != nil {
		return err
	}

	return c.Render("fees/index", fiber.Map{
		"Title":       "Fees - School ERP",
		"CurrentPage": "fees",
		"username":    c.Locals("username"),
		"fees":        allFees,
		"classes":     allClasses,
		"students":    allStudents,
		"classID":     c.Query("class_id"),
		"status":      c.Query("status"),
		"fromDate":    c.Query("from_date"),
		"toDate":      c.Query("to_date"),
	})
}

func ShowFeeDashboardPage(c *fiber.Ctx) error {
	stats, err := database.GetFeeStats(config.GetDB())
	if err != nil {
		return err
	}

	return c.Render("fees/dashboard", fiber.Map{
		"Title":       "Fee Dashboard - School ERP",
		"CurrentPage": "fees",
		"username":    c.Locals("username"),
		"stats":       stats,
	})
}

// ShowOutstandingPage lists unpaid rollups grouped by class and student.
func ShowOutstandingPage(c *fiber.Ctx) error {
	outstanding, err := database.GetOutstandingFees(config.GetDB())
	if err != nil {
		return err
	}

	return c.Render("fees/outstanding", fiber.Map{
		"Title":       "Outstanding Fees - School ERP",
		"CurrentPage": "fees",
		"username":    c.Locals("username"),
		"rows":        outstanding,
	})
}

// ShowDuesPage lists students with outstanding balances, optionally for a
// single class.
func ShowDuesPage(c *fiber.Ctx) error {
	db := config.GetDB()
	classID := c.Query("class_id")

	dues, err := database.GetStudentDues(db, classID)
	if err != nil {
		return err
	}

	allClasses, err := database.GetAllClasses(db)
	if err != nil {
		return err
	}

	return c.Render("fees/dues", fiber.Map{
		"Title":       "Fee Dues - School ERP",
		"CurrentPage": "fees",
		"username":    c.Locals("username"),
		"dues":        dues,
		"classes":     allClasses,
		"classID":     classID,
	})
}

// ShowFeeReportsPage renders the fee records with a paid/unpaid summary,
// both filterable by class and month.
func ShowFeeReportsPage(c *fiber.Ctx) error {
	db := config.GetDB()
	classID := c.Query("class_id")
	month := c.Query("month")

	filter := database.FeeFilter{ClassID: classID}
	if month != "" {
		if from, err := time.Parse("2006-01", month); err == nil {
			to := from.AddDate(0, 1, -1)
			filter.FromDate = &from
			filter.ToDate = &to
		}
	}

	records, err := database.GetFees(db, filter)
	if err != nil {
		return err
	}

	summary, err := database.GetFeeReportSummary(db, classID, month)
	if err != nil {
		return err
	}

	allClasses, err := database.GetAllClasses(db)
	if err != nil {
		return err
	}

	return c.Render("fees/reports", fiber.Map{
		"Title":       "Fee Reports - School ERP",
		"CurrentPage": "fees",
		"username":    c.Locals("username"),
		"records":     records,
		"summary":     summary,
		"classes":     allClasses,
		"classID":     classID,
		"month":       month,
	})
}

func ShowMyFeesPage(c *fiber.Ctx) error {
	studentID := c.Locals("student_id").(string)
	db := config.GetDB()

	myFees, err := database.GetStudentFees(db, studentID)
	if err != nil {
		return err
	}

	summary, err := database.GetStudentFeeSummary(db, studentID)
	if err != nil {
		return err
	}

	return c.Render("fees/my", fiber.Map{
		"Title":       "My Fees - School ERP",
		"CurrentPage": "fees",
		"username":    c.Locals("username"),
		"fees":        myFees,
		"summary":     summary,
	})
}

func ShowChildrenFeesPage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	db := config.GetDB()

	children, err := database.GetParentStudents(db, userID)
	if err != nil {
		return err
	}

	ids := make([]string, len(children))
	for i, child := range children {
		ids[i] = child.ID
	}

	childFees, err := database.GetFeesForStudents(db, ids)
	if err != nil {
		return err
	}

	dues, err := database.GetDuesForStudents(db, ids)
	if err != nil {
		return err
	}

	return c.Render("fees/children", fiber.Map{
		"Title":       "Children Fees - School ERP",
		"CurrentPage": "fees",
		"username":    c.Locals("username"),
		"children":    children,
		"fees":        childFees,
		"dues":        dues,
	})
}
