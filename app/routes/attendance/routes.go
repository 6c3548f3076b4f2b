package attendance

import (
	"time"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	attendance := app.Group("/attendance")
	attendance.Use(auth.AuthMiddleware)

	attendance.Get("/", auth.RoleMiddleware("admin", "teacher"), ShowRosterPage)
	attendance.Get("/history", auth.RoleMiddleware("admin", "teacher"), ShowHistoryPage)
	attendance.Get("/monthly", auth.RoleMiddleware("admin", "teacher"), ShowMonthlyPage)
	attendance.Get("/report", auth.RoleMiddleware("admin", "teacher"), ShowReportPage)
	attendance.Get("/my", auth.RoleMiddleware("student"), ShowMyAttendancePage)
	attendance.Get("/children", auth.RoleMiddleware("parent"), ShowChildrenAttendancePage)

	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RoleMiddleware("admin", "teacher"), SaveAttendanceAPI)
	api.Post("/bulk", auth.RoleMiddleware("admin", "teacher"), BulkSaveAttendanceAPI)
	api.Put("/:id", auth.RoleMiddleware("admin", "teacher"), UpdateAttendanceAPI)
	api.Get("/export", auth.RoleMiddleware("admin", "teacher"), ExportAttendanceCSV)
}

// ShowRosterPage renders the per-class roster for a date, with any statuses
// already saved for that day preselected.
func ShowRosterPage(c *fiber.Ctx) error {
	db := config.GetDB()

	allClasses, err := database.GetAllClasses(db)
	if err != nil {
		return err
	}

	dateStr := c.Query("date", time.Now().Format("2006-01-02"))
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		date = time.Now()
		dateStr = date.Format("2006-01-02")
	}

	data := fiber.Map{
		"Title":       "Attendance - School ERP",
		"CurrentPage": "attendance",
		"username":    c.Locals("username"),
		"classes":     allClasses,
		"date":        dateStr,
		"locked":      !WithinEditWindow(date, time.Now()),
	}

	if classID := c.Query("class_id"); classID != "" {
		students, err := database.GetStudentsByClass(db, classID)
		if err != nil {
			return err
		}
		saved, err := database.GetRosterAttendance(db, classID, date)
		if err != nil {
			return err
		}
		data["classID"] = classID
		data["students"] = students
		data["saved"] = saved
	}

	return c.Render("attendance/index", data)
}

func ShowHistoryPage(c *fiber.Ctx) error {
	db := config.GetDB()

	allClasses, err := database.GetAllClasses(db)
	if err != nil {
		return err
	}

	var fromDate, toDate *time.Time
	if v := c.Query("from_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			fromDate = &t
		}
	}
	if v := c.Query("to_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			toDate = &t
		}
	}

	records, err := database.GetAttendanceHistory(db, c.Query("class_id"), c.Query("student_id"), fromDate, toDate)
	if err != nil {
		return err
	}

	return c.Render("attendance/history", fiber.Map{
		"Title":       "Attendance History - School ERP",
		"CurrentPage": "attendance",
		"username":    c.Locals("username"),
		"classes":     allClasses,
		"records":     records,
		"classID":     c.Query("class_id"),
		"fromDate":    c.Query("from_date"),
		"toDate":      c.Query("to_date"),
	})
}

func ShowMonthlyPage(c *fiber.Ctx) error {
	db := config.GetDB()

	allClasses, err := database.GetAllClasses(db)
	if err != nil {
		return err
	}

	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	data := fiber.Map{
		"Title":       "Monthly Attendance - School ERP",
		"CurrentPage": "attendance",
		"username":    c.Locals("username"),
		"classes":     allClasses,
		"year":        year,
		"month":       month,
	}

	if classID := c.Query("class_id"); classID != "" {
		summaries, err := database.GetMonthlyAttendanceSummary(db, classID, year, month)
		if err != nil {
			return err
		}
		data["classID"] = classID
		data["summaries"] = summaries
	}

	return c.Render("attendance/monthly", data)
}

func ShowReportPage(c *fiber.Ctx) error {
	db := config.GetDB()

	allClasses, err := database.GetAllClasses(db)
	if err != nil {
		return err
	}

	data := fiber.Map{
		"Title":       "Attendance Report - School ERP",
		"CurrentPage": "attendance",
		"username":    c.Locals("username"),
		"classes":     allClasses,
	}

	if classID := c.Query("class_id"); classID != "" {
		rates, err := database.GetAttendanceRates(db, classID)
		if err != nil {
			return err
		}
		data["classID"] = classID
		data["rates"] = rates
	}

	return c.Render("attendance/report", data)
}

func ShowMyAttendancePage(c *fiber.Ctx) error {
	studentID := c.Locals("student_id").(string)

	records, err := database.GetStudentAttendance(config.GetDB(), studentID)
	if err != nil {
		return err
	}

	percentage, err := database.GetStudentAttendancePercentage(config.GetDB(), studentID)
	if err != nil {
		return err
	}

	return c.Render("attendance/my", fiber.Map{
		"Title":       "My Attendance - School ERP",
		"CurrentPage": "attendance",
		"username":    c.Locals("username"),
		"records":     records,
		"percentage":  percentage,
	})
}

func ShowChildrenAttendancePage(c *fiber.Ctx) error {
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

	records, err := database.GetAttendanceForStudents(db, ids)
	if err != nil {
		return err
	}

	return c.Render("attendance/children", fiber.Map{
		"Title":       "Children Attendance - School ERP",
		"CurrentPage": "attendance",
		"username":    c.Locals("username"),
		"children":    children,
		"records":     records,
	})
}
