package repositories_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/letsscience/quiz_api/model"
	"github.com/letsscience/quiz_api/services"
	"github.com/letsscience/quiz_api/services/repositories"
	"gorm.io/gorm"
)

var dbCounter int64

// openTestDB opens a fresh in-memory database per test. The shared-cache
// named DSN keeps every pooled connection on the same database; OpenSqlite
// turns foreign key enforcement on per connection.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("repo_test_%d", atomic.AddInt64(&dbCounter, 1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := services.OpenSqlite(dsn)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	if err := db.AutoMigrate(services.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string, email string) *model.User {
	t.Helper()

	user := &model.User{
		Name:    name,
		IsGuest: email == "",
	}
	if email != "" {
		user.Email = &email
	}

	created, err := repositories.NewUserRepository(db).CreateUser(user)
	if err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return created
}
