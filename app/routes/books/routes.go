package books

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxBookSize = 20 * 1024 * 1024 // 20MB

func SetupBookRoutes(app *fiber.App) {
	books := app.Group("/books")
	books.Use(auth.AuthMiddleware)

	books.Get("/", ShowBooksPage)
	books.Get("/:id/download", DownloadBook)

	api := app.Group("/api/books")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RoleMiddleware("admin", "teacher"), UploadBookAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin", "teacher"), DeleteBookAPI)
}

// ShowBooksPage lists uploaded study material; students only see their own
// class's books.
func ShowBooksPage(c *fiber.Ctx) error {
	db := config.GetDB()
	role := c.Locals("role").(string)

	data := fiber.Map{
		"Title":       "Books - School ERP",
		"CurrentPage": "books",
		"username":    c.Locals("username"),
	}

	if role == "student" {
		student, err := database.GetStudentByID(db, c.Locals("student_id").(string))
		if err != nil {
			return err
		}
		if student.ClassID != nil {
			myBooks, err := database.GetBooksByClass(db, *student.ClassID)
			if err != nil {
				return err
			}
			data["books"] = myBooks
		}
		return c.Render("books/index", data)
	}

	allBooks, err := database.GetAllBooks(db)
	if err != nil {
		return err
	}
	allClasses, err := database.GetAllClasses(db)
	if err != nil {
		return err
	}
	data["books"] = allBooks
	data["classes"] = allClasses

	return c.Render("books/index", data)
}

// UploadBookAPI accepts a PDF resource for a class. Only PDFs are allowed.
func UploadBookAPI(c *fiber.Ctx) error {
	title := c.FormValue("title")
	subject := c.FormValue("subject")
	classID := c.FormValue("class_id")
	description := c.FormValue("description")

	if title == "" || subject == "" || classID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title, subject and class are required"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded"})
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return c.Status(400).JSON(fiber.Map{"error": "Only PDF files are allowed"})
	}
	if file.Size > maxBookSize {
		return c.Status(400).JSON(fiber.Map{"error": "File too large: maximum size is 20MB"})
	}

	filename := fmt.Sprintf("%d_%s.pdf", time.Now().Unix(), uuid.New().String())
	bookDir := config.GetConfig().BookDir
	if err := c.SaveFile(file, filepath.Join(bookDir, filename)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save file"})
	}

	book := &models.Book{
		Title:       title,
		Subject:     subject,
		Description: description,
		ClassID:     classID,
		FilePath:    filename,
		UploadedBy:  c.Locals("user_id").(string),
	}
	if err := database.CreateBook(config.GetDB(), book); err != nil {
		os.Remove(filepath.Join(bookDir, filename))
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save book"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Book uploaded successfully",
		"book":    book,
	})
}

// DownloadBook streams the stored PDF. Students may only fetch books for
// their own class.
func DownloadBook(c *fiber.Ctx) error {
	db := config.GetDB()

	book, err := database.GetBookByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Book not found")
		}
		return err
	}

	if c.Locals("role").(string) == "student" {
		student, err := database.GetStudentByID(db, c.Locals("student_id").(string))
		if err != nil {
			return err
		}
		if student.ClassID == nil || *student.ClassID != book.ClassID {
			return fiber.NewError(403, "This book is not for your class")
		}
	}

	path := filepath.Join(config.GetConfig().BookDir, book.FilePath)
	return c.Download(path, book.Title+".pdf")
}

func DeleteBookAPI(c *fiber.Ctx) error {
	filePath, err := database.DeleteBook(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Book not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete book"})
	}

	if filePath != "" {
		os.Remove(filepath.Join(config.GetConfig().BookDir, filePath))
	}

	return c.JSON(fiber.Map{"message": "Book deleted successfully"})
}
