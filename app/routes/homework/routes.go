package homework

import (
	"database/sql"
	"time"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupHomeworkRoutes(app *fiber.App) {
	homework := app.Group("/homework")
	homework.Use(auth.AuthMiddleware)

	homework.Get("/", ShowHomeworkPage)

	api := app.Group("/api/homework")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RoleMiddleware("admin", "teacher"), CreateHomeworkAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin", "teacher"), DeleteHomeworkAPI)
}

// ShowHomeworkPage scopes the list by role: staff see everything, students
// their class, parents their children's classes.
func ShowHomeworkPage(c *fiber.Ctx) error {
	db := config.GetDB()
	role := c.Locals("role").(string)

	data := fiber.Map{
		"Title":       "Homework - School ERP",
		"CurrentPage": "homework",
		"username":    c.Locals("username"),
	}

	switch role {
	case "admin", "teacher":
		allHomework, err := database.GetAllHomework(db)
		if err != nil {
			return err
		}
		allClasses, err := database.GetAllClasses(db)
		if err != nil {
			return err
		}
		data["homework"] = allHomework
		data["classes"] = allClasses

	case "student":
		student, err := database.GetStudentByID(db, c.Locals("student_id").(string))
		if err != nil {
			return err
		}
		if student.ClassID != nil {
			myHomework, err := database.GetHomeworkByClass(db, *student.ClassID)
			if err != nil {
				return err
			}
			data["homework"] = myHomework
		}

	case "parent":
		children, err := database.GetParentStudents(db, c.Locals("user_id").(string))
		if err != nil {
			return err
		}
		ids := make([]string, len(children))
		for i, child := range children {
			ids[i] = child.ID
		}
		childHomework, err := database.GetHomeworkForStudents(db, ids)
		if err != nil {
			return err
		}
		data["homework"] = childHomework
	}

	return c.Render("homework/index", data)
}

func CreateHomeworkAPI(c *fiber.Ctx) error {
	type CreateHomeworkRequest struct {
		Title       string `json:"title" form:"title"`
		Description string `json:"description" form:"description"`
		ClassID     string `json:"class_id" form:"class_id"`
		DueDate     string `json:"due_date" form:"due_date"`
	}

	var req CreateHomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Title == "" || req.Description == "" || req.ClassID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title, description and class are required"})
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid due date, expected YYYY-MM-DD"})
	}

	item := &models.Homework{
		Title:       req.Title,
		Description: req.Description,
		ClassID:     req.ClassID,
		DueDate:     dueDate,
		CreatedBy:   c.Locals("user_id").(string),
	}
	if err := database.CreateHomework(config.GetDB(), item); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create homework"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Homework assigned successfully",
		"homework": item,
	})
}

func DeleteHomeworkAPI(c *fiber.Ctx) error {
	if err := database.DeleteHomework(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Homework not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete homework"})
	}
	return c.JSON(fiber.Map{"message": "Homework deleted successfully"})
}
