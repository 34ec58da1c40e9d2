package repositories_test

import (
	"errors"
	"testing"

	"github.com/letsscience/quiz_api/model"
	"github.com/letsscience/quiz_api/services/repositories"
	"gorm.io/gorm"
)

func newQuizRepo(db *gorm.DB) *repositories.QuizRepository {
	return repositories.NewQuizRepository(db, repositories.NewTranslationRepository(db))
}

func TestCreateAndGetQuiz(t *testing.T) {
	db := openTestDB(t)
	repo := newQuizRepo(db)

	creator := createTestUser(t, db, "author", "author@example.com")

	questions := []repositories.QuizQuestionInput{
		{
			Text: "Pick one",
			Data: model.QuestionData{
				Type: model.QuestionTypeMultipleChoice,
				MultipleChoice: &model.MultipleChoiceData{
					Answers:       []string{"x", "y", "z"},
					CorrectAnswer: 2,
				},
			},
		},
		{
			Text: "Guess the year",
			Data: model.QuestionData{
				Type:    model.QuestionTypeNumeric,
				Numeric: &model.NumericData{RangeStart: 1900, RangeEnd: 1950},
			},
		},
		{
			Text: "True or not",
			Data: model.QuestionData{
				Type:        model.QuestionTypeTrueOrFalse,
				TrueOrFalse: &model.TrueOrFalseData{CorrectAnswer: false},
			},
		},
	}

	quizID, err := repo.CreateQuiz(creator.ID, "History basics", "en", questions)
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}

	got, err := repo.GetQuiz(quizID)
	if err != nil {
		t.Fatalf("GetQuiz: %v", err)
	}

	if got.Title != "History basics" {
		t.Errorf("title = %q, want %q", got.Title, "History basics")
	}
	if got.CreatedBy != creator.ID {
		t.Errorf("created_by = %q, want %q", got.CreatedBy, creator.ID)
	}
	if len(got.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(got.Questions))
	}

	// Authored order survives the round trip.
	for i, want := range []string{"Pick one", "Guess the year", "True or not"} {
		if got.Questions[i].Question != want {
			t.Errorf("question %d = %q, want %q", i, got.Questions[i].Question, want)
		}
	}

	mc := got.Questions[0].Data
	if mc.Type != model.QuestionTypeMultipleChoice || mc.MultipleChoice == nil || mc.MultipleChoice.CorrectAnswer != 2 {
		t.Errorf("multiple choice payload lost: %+v", mc)
	}
	num := got.Questions[1].Data
	if num.Type != model.QuestionTypeNumeric || num.Numeric == nil || num.Numeric.RangeEnd != 1950 {
		t.Errorf("numeric payload lost: %+v", num)
	}
}

func TestGetQuizNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := newQuizRepo(db)

	if _, err := repo.GetQuiz("no-such-id"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("want ErrRecordNotFound, got %v", err)
	}
}

func TestCreateQuizRollsBackOnBadQuestion(t *testing.T) {
	db := openTestDB(t)
	repo := newQuizRepo(db)

	creator := createTestUser(t, db, "author", "author@example.com")

	questions := []repositories.QuizQuestionInput{
		{
			Text: "Fine question",
			Data: model.QuestionData{
				Type:        model.QuestionTypeTrueOrFalse,
				TrueOrFalse: &model.TrueOrFalseData{CorrectAnswer: true},
			},
		},
		{
			Text: "Broken question",
			Data: model.QuestionData{Type: "Essay"},
		},
	}

	_, err := repo.CreateQuiz(creator.ID, "Doomed quiz", "en", questions)
	if err == nil {
		t.Fatal("quiz with unencodable question created")
	}

	// Nothing from the aggregate survives: no quiz, no questions, and no
	// translations written before the failing step.
	var quizzes, rows, translations int64
	db.Table("quizzes").Count(&quizzes)
	db.Table("questions").Count(&rows)
	db.Table("translations").Count(&translations)

	if quizzes != 0 || rows != 0 || translations != 0 {
		t.Errorf("partial aggregate persisted: quizzes=%d questions=%d translations=%d",
			quizzes, rows, translations)
	}
}

func TestCreateQuizUnknownCreator(t *testing.T) {
	db := openTestDB(t)
	repo := newQuizRepo(db)

	_, err := repo.CreateQuiz("no-such-user", "Orphan quiz", "en", nil)
	if !errors.Is(err, gorm.ErrForeignKeyViolated) {
		t.Errorf("want ErrForeignKeyViolated, got %v", err)
	}
}
