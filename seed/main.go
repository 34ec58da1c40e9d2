package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/letsscience/quiz_api/seed/seeders"
	"github.com/letsscience/quiz_api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, users, quizzes, challenges")
		dbPath   = flag.String("db", "", "Database path (overrides DB_NAME env var)")
	)
	flag.Parse()

	databasePath := *dbPath
	if databasePath == "" {
		databasePath = os.Getenv("DB_NAME")
		if databasePath == "" {
			databasePath = "quiz_api.db"
		}
	}

	db, err := services.OpenSqlite(databasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(services.Models()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", databasePath)

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		err = mainSeeder.SeedAll()
	case "users":
		err = mainSeeder.SeedUsersOnly()
	case "quizzes":
		err = mainSeeder.SeedQuizzesOnly()
	case "challenges":
		err = mainSeeder.SeedChallengesOnly()
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'users', 'quizzes', or 'challenges'", *seedType)
	}
	if err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Seeding operation completed successfully!")
}
