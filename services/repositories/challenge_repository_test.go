package repositories_test

import (
	"errors"
	"testing"

	"github.com/letsscience/quiz_api/dto"
	"github.com/letsscience/quiz_api/services/repositories"
	"github.com/letsscience/quiz_api/shared"
	"gorm.io/gorm"
)

func newChallengeRepo(db *gorm.DB) *repositories.ChallengeRepository {
	return repositories.NewChallengeRepository(db, repositories.NewTranslationRepository(db))
}

func createTestChallenge(t *testing.T, repo *repositories.ChallengeRepository, title string) string {
	t.Helper()

	id, err := repo.CreateChallenge(dto.CreateChallengeRequest{
		Title:       title,
		Category:    "testing",
		Type:        shared.ChallengeTypeCounter,
		Goal:        100,
		Description: "description of " + title,
	})
	if err != nil {
		t.Fatalf("create challenge %s: %v", title, err)
	}
	return id
}

func TestCreateAndGetChallenge(t *testing.T) {
	db := openTestDB(t)
	repo := newChallengeRepo(db)

	id := createTestChallenge(t, repo, "climb")

	got, err := repo.GetChallenge(id)
	if err != nil {
		t.Fatalf("GetChallenge: %v", err)
	}

	if got.Title != "climb" {
		t.Errorf("title = %q, want %q", got.Title, "climb")
	}
	if got.Description != "description of climb" {
		t.Errorf("description not joined from translation: %q", got.Description)
	}
	if got.Type != shared.ChallengeTypeCounter || got.Goal != 100 {
		t.Errorf("type/goal = %q/%d", got.Type, got.Goal)
	}
}

func TestGetChallengeNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := newChallengeRepo(db)

	if _, err := repo.GetChallenge("no-such-id"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("want ErrRecordNotFound, got %v", err)
	}
}

func TestGetChallenges(t *testing.T) {
	db := openTestDB(t)
	repo := newChallengeRepo(db)

	createTestChallenge(t, repo, "one")
	createTestChallenge(t, repo, "two")

	all, err := repo.GetChallenges()
	if err != nil {
		t.Fatalf("GetChallenges: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}

	titles := map[string]bool{}
	for _, c := range all {
		titles[c.Title] = true
	}
	if !titles["one"] || !titles["two"] {
		t.Errorf("missing challenges: %v", titles)
	}
}

func TestAddProgressAccumulates(t *testing.T) {
	db := openTestDB(t)
	repo := newChallengeRepo(db)

	user := createTestUser(t, db, "runner", "runner@example.com")
	challengeID := createTestChallenge(t, repo, "marathon")

	first, err := repo.AddProgress(user.ID, challengeID, 40)
	if err != nil {
		t.Fatalf("AddProgress: %v", err)
	}
	if first.Progress != 40 {
		t.Errorf("first progress = %d, want 40", first.Progress)
	}

	second, err := repo.AddProgress(user.ID, challengeID, 70)
	if err != nil {
		t.Fatalf("AddProgress: %v", err)
	}
	if second.Progress != 110 {
		t.Errorf("accumulated progress = %d, want 110", second.Progress)
	}

	rows, err := repo.GetProgress(user.ID, challengeID)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("ledger rows = %d, want one row per (user, challenge)", len(rows))
	}
}

func TestAddProgressUnknownChallenge(t *testing.T) {
	db := openTestDB(t)
	repo := newChallengeRepo(db)

	user := createTestUser(t, db, "lost", "lost@example.com")

	_, err := repo.AddProgress(user.ID, "no-such-challenge", 10)
	if !errors.Is(err, gorm.ErrForeignKeyViolated) {
		t.Errorf("want ErrForeignKeyViolated, got %v", err)
	}
}

func TestGetProgressScoping(t *testing.T) {
	db := openTestDB(t)
	repo := newChallengeRepo(db)

	user := createTestUser(t, db, "busy", "busy@example.com")
	other := createTestUser(t, db, "other", "other@example.com")
	first := createTestChallenge(t, repo, "first")
	second := createTestChallenge(t, repo, "second")

	mustAddProgress(t, repo, user.ID, first, 1)
	mustAddProgress(t, repo, user.ID, second, 2)
	mustAddProgress(t, repo, other.ID, first, 3)

	all, err := repo.GetProgress(user.ID, "")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("unscoped rows = %d, want 2", len(all))
	}

	scoped, err := repo.GetProgress(user.ID, second)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if len(scoped) != 1 || scoped[0].ChallengeID != second {
		t.Errorf("scoped rows = %+v, want the one row for %s", scoped, second)
	}
}

func mustAddProgress(t *testing.T, repo *repositories.ChallengeRepository, userID, challengeID string, progress int) {
	t.Helper()
	if _, err := repo.AddProgress(userID, challengeID, progress); err != nil {
		t.Fatalf("AddProgress(%s, %s): %v", userID, challengeID, err)
	}
}

func TestDeleteProgress(t *testing.T) {
	db := openTestDB(t)
	repo := newChallengeRepo(db)

	user := createTestUser(t, db, "quitter", "quitter@example.com")
	challengeID := createTestChallenge(t, repo, "abandoned")

	mustAddProgress(t, repo, user.ID, challengeID, 25)

	deleted, err := repo.DeleteProgress(user.ID, challengeID)
	if err != nil {
		t.Fatalf("DeleteProgress: %v", err)
	}
	if deleted.Progress != 25 {
		t.Errorf("deleted row progress = %d, want 25", deleted.Progress)
	}

	if _, err := repo.DeleteProgress(user.ID, challengeID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("second delete: want ErrRecordNotFound, got %v", err)
	}

	rows, err := repo.GetProgress(user.ID, challengeID)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("row survived deletion: %+v", rows)
	}
}
