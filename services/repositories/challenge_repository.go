package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/letsscience/quiz_api/dto"
	"github.com/letsscience/quiz_api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChallengeRepository struct {
	BaseRepository

	translations *TranslationRepository
}

func NewChallengeRepository(db *gorm.DB, translations *TranslationRepository) *ChallengeRepository {
	return &ChallengeRepository{
		BaseRepository: NewBaseRepository(db),
		translations:   translations,
	}
}

func (ds *ChallengeRepository) CreateChallenge(req dto.CreateChallengeRequest) (string, error) {
	challengeID := uuid.New().String()

	err := ds.db.Transaction(func(tx *gorm.DB) error {
		descriptionID, err := ds.translations.Insert(tx, req.Description, req.LanguageCode)
		if err != nil {
			return err
		}

		challenge := &model.Challenge{
			ID:            challengeID,
			Type:          req.Type,
			Goal:          req.Goal,
			Title:         req.Title,
			Category:      req.Category,
			DescriptionID: descriptionID,
			CreatedAt:     time.Now(),
		}
		return tx.Create(challenge).Error
	})
	if err != nil {
		return "", err
	}

	return challengeID, nil
}

type challengeRow struct {
	ID          string
	Type        string
	Goal        int
	Title       string
	Category    string
	Description string
	CreatedAt   time.Time
}

func (row challengeRow) toResponse() dto.ChallengeResponse {
	return dto.ChallengeResponse{
		ID:          row.ID,
		Type:        row.Type,
		Goal:        row.Goal,
		Title:       row.Title,
		Category:    row.Category,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}

func (ds *ChallengeRepository) GetChallenge(challengeID string) (*dto.ChallengeResponse, error) {
	var row challengeRow
	err := ds.db.Table("challenges").
		Select("challenges.id, challenges.type, challenges.goal, challenges.title, challenges.category, translations.content AS description, challenges.created_at").
		Joins("INNER JOIN translations ON translations.id = challenges.description_id").
		Where("challenges.id = ?", challengeID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}

	resp := row.toResponse()
	return &resp, nil
}

func (ds *ChallengeRepository) GetChallenges() ([]dto.ChallengeResponse, error) {
	var rows []challengeRow
	err := ds.db.Table("challenges").
		Select("challenges.id, challenges.type, challenges.goal, challenges.title, challenges.category, translations.content AS description, challenges.created_at").
		Joins("INNER JOIN translations ON translations.id = challenges.description_id").
		Order("challenges.created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	challenges := make([]dto.ChallengeResponse, 0, len(rows))
	for _, row := range rows {
		challenges = append(challenges, row.toResponse())
	}
	return challenges, nil
}

// AddProgress is the merge-add upsert: first submission creates the row,
// later submissions accumulate into it. The conflict target is the
// composite (user_id, challenge_id) key, so concurrent contributions add
// up instead of clobbering each other. A missing challenge or user
// surfaces as gorm.ErrForeignKeyViolated.
func (ds *ChallengeRepository) AddProgress(userID, challengeID string, progress int) (*model.UserChallenge, error) {
	var result model.UserChallenge

	err := ds.db.Transaction(func(tx *gorm.DB) error {
		row := model.UserChallenge{
			UserID:      userID,
			ChallengeID: challengeID,
			Progress:    progress,
			UpdatedAt:   time.Now(),
		}

		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "challenge_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"progress":   gorm.Expr("user_challenges.progress + excluded.progress"),
				"updated_at": time.Now(),
			}),
		}).Create(&row).Error
		if err != nil {
			return err
		}

		// Create leaves the struct holding the inserted delta on the
		// update branch; read back the merged row.
		return tx.Where("user_id = ? AND challenge_id = ?", userID, challengeID).
			Take(&result).Error
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetProgress lists the user's ledger rows, scoped to one challenge when
// challengeID is non-empty.
func (ds *ChallengeRepository) GetProgress(userID, challengeID string) ([]model.UserChallenge, error) {
	query := ds.db.Where("user_id = ?", userID)
	if challengeID != "" {
		query = query.Where("challenge_id = ?", challengeID)
	}

	var rows []model.UserChallenge
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteProgress removes the row and returns what was removed, or
// gorm.ErrRecordNotFound if there was nothing to remove.
func (ds *ChallengeRepository) DeleteProgress(userID, challengeID string) (*model.UserChallenge, error) {
	var row model.UserChallenge

	err := ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND challenge_id = ?", userID, challengeID).
			Take(&row).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ? AND challenge_id = ?", userID, challengeID).
			Delete(&model.UserChallenge{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &row, nil
}
