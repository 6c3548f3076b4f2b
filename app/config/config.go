package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB     *sql.DB
	SMTP   SMTPConfig
	School SchoolInfo

	// UploadDir holds student photos; BookDir holds uploaded PDF resources.
	UploadDir string
	BookDir   string

	ListenAddr string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SchoolInfo appears on generated receipts and report cards.
type SchoolInfo struct {
	Name    string
	Address string
	Phone   string
}

var AppConfig *Config

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if present), connects the database pool and initializes
// the global AppConfig.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	host := env("DB_HOST", "localhost")
	port := env("DB_PORT", "5432")
	user := env("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := env("DB_NAME", "school_erp")
	sslmode := env("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s", host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	smtpPort, err := strconv.Atoi(env("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	uploadDir := env("UPLOAD_DIR", filepath.Join("static", "uploads"))
	bookDir := filepath.Join(uploadDir, "books")
	for _, dir := range []string{uploadDir, bookDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal("Failed to create upload directory: ", err)
		}
	}

	AppConfig = &Config{
		DB: db,
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     smtpPort,
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     env("SMTP_FROM", os.Getenv("SMTP_USER")),
		},
		School: SchoolInfo{
			Name:    env("SCHOOL_NAME", "Shree Manas International Public School"),
			Address: env("SCHOOL_ADDRESS", "118, Sector 8 Main Rd, Sector 8, Raipur, Chhattisgarh 492014"),
			Phone:   env("SCHOOL_PHONE", "+91-7000225026"),
		},
		UploadDir:  uploadDir,
		BookDir:    bookDir,
		ListenAddr: env("LISTEN_ADDR", ":8080"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetConfig() *Config {
	return AppConfig
}
