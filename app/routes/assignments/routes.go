package assignments

import (
	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupAssignmentRoutes(app *fiber.App) {
	assignments := app.Group("/assignments")
	assignments.Use(auth.AuthMiddleware)

	assignments.Get("/", auth.RoleMiddleware("admin", "teacher"), ShowAssignmentsPage)
	assignments.Get("/my", auth.RoleMiddleware("student"), ShowMyAssignmentsPage)
	assignments.Get("/children", auth.RoleMiddleware("parent"), ShowChildrenWorkPage)
	assignments.Get("/:id/submissions", auth.RoleMiddleware("admin", "teacher"), ShowSubmissionsPage)

	api := app.Group("/api/assignments")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RoleMiddleware("admin", "teacher"), CreateAssignmentAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin", "teacher"), DeleteAssignmentAPI)
	api.Post("/:id/submit", auth.RoleMiddleware("student"), SubmitAssignmentAPI)
	api.Post("/submissions/:id/grade", auth.RoleMiddleware("admin", "teacher"), GradeSubmissionAPI)
}

func ShowAssignmentsPage(c *fiber.Ctx) error {
	db := config.GetDB()

	allAssignments, err := database.GetAllAssignments(db)
	if err != nil {
		return err
	}

	allClasses, err := database.GetAllClasses(db)
	if err != nil {
		return err
	}

	return c.Render("assignments/index", fiber.Map{
		"Title":       "Assignments - School ERP",
		"CurrentPage": "assignments",
		"username":    c.Locals("username"),
		"assignments": allAssignments,
		"classes":     allClasses,
	})
}

// ShowMyAssignmentsPage lists the student's class assignments with their
// own submission state.
func ShowMyAssignmentsPage(c *fiber.Ctx) error {
	studentID := c.Locals("student_id").(string)
	db := config.GetDB()

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		return err
	}

	data := fiber.Map{
		"Title":       "My Assignments - School ERP",
		"CurrentPage": "assignments",
		"username":    c.Locals("username"),
		"student":     student,
	}

	if student.ClassID != nil {
		assignments, err := database.GetAssignmentsByClass(db, *student.ClassID)
		if err != nil {
			return err
		}

		submitted := make(map[string]bool, len(assignments))
		for _, assignment := range assignments {
			if _, err := database.GetStudentSubmission(db, assignment.ID, studentID); err == nil {
				submitted[assignment.ID] = true
			}
		}
		data["assignments"] = assignments
		data["submitted"] = submitted
	}

	return c.Render("assignments/my", data)
}

func ShowChildrenWorkPage(c *fiber.Ctx) error {
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

	submissions, err := database.GetSubmissionsForStudents(db, ids)
	if err != nil {
		return err
	}

	homework, err := database.GetHomeworkForStudents(db, ids)
	if err != nil {
		return err
	}

	return c.Render("assignments/children", fiber.Map{
		"Title":       "Children's Work - School ERP",
		"CurrentPage": "assignments",
		"username":    c.Locals("username"),
		"children":    children,
		"submissions": submissions,
		"homework":    homework,
	})
}

func ShowSubmissionsPage(c *fiber.Ctx) error {
	db := config.GetDB()

	assignment, err := database.GetAssignmentByID(db, c.Params("id"))
	if err != nil {
		return err
	}

	submissions, err := database.GetSubmissionsForAssignment(db, assignment.ID)
	if err != nil {
		return err
	}

	return c.Render("assignments/submissions", fiber.Map{
		"Title":       "Submissions - School ERP",
		"CurrentPage": "assignments",
		"username":    c.Locals("username"),
		"assignment":  assignment,
		"submissions": submissions,
	})
}
