package repositories

import (
	"github.com/google/uuid"
	"github.com/letsscience/quiz_api/model"
	"github.com/letsscience/quiz_api/shared"
	"gorm.io/gorm"
)

// TranslationRepository appends write-once text records. Insert takes the
// caller's handle so the translation commits or rolls back together with
// the row that references it.
type TranslationRepository struct {
	BaseRepository
}

func NewTranslationRepository(db *gorm.DB) *TranslationRepository {
	return &TranslationRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *TranslationRepository) Insert(tx *gorm.DB, content, languageCode string) (string, error) {
	if languageCode == "" {
		languageCode = shared.DefaultLanguageCode
	}

	translation := &model.Translation{
		ID:           uuid.New().String(),
		LanguageCode: languageCode,
		Content:      content,
	}

	if err := tx.Create(translation).Error; err != nil {
		return "", err
	}
	return translation.ID, nil
}

func (ds *TranslationRepository) Get(id string) (*model.Translation, error) {
	var translation model.Translation
	if err := ds.db.Where("id = ?", id).First(&translation).Error; err != nil {
		return nil, err
	}
	return &translation, nil
}
