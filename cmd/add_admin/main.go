package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/LUCY-sama29/school-erp/app/config"
	"github.com/LUCY-sama29/school-erp/app/database"
	"github.com/LUCY-sama29/school-erp/app/models"
	"github.com/LUCY-sama29/school-erp/app/routes/auth"
)

// Bootstraps the first admin account on a fresh install.
func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("a password is required: -password <value>")
	}

	config.Load()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	exists, err := database.UsernameExists(db, *username)
	if err != nil {
		log.Fatal("Failed to check username:", err)
	}
	if exists {
		log.Fatalf("User %q already exists", *username)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Username: *username,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("Admin user created successfully: %s\n", user.Username)
}
