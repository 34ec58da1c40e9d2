package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/letsscience/quiz_api/model"
	"gorm.io/gorm"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	BaseRepository
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// CreateUser inserts the user with a fresh id. Email uniqueness is left to
// the unique index: a duplicate surfaces as gorm.ErrDuplicatedKey, never
// detected with a prior existence check (that would race).
func (ds *UserRepository) CreateUser(user *model.User) (*model.User, error) {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()

	if err := ds.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (ds *UserRepository) GetUser(userID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UserPatch carries coalesce update semantics: nil fields keep the stored
// value, set fields overwrite it.
type UserPatch struct {
	Name       *string
	Email      *string
	AvatarSeed *string
	Hash       *string
	IsGuest    *bool
	Score      *int
}

// PatchUser applies the patch as one UPDATE statement and returns the
// resulting row, or gorm.ErrRecordNotFound if the user does not exist.
func (ds *UserRepository) PatchUser(userID string, patch UserPatch) (*model.User, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.AvatarSeed != nil {
		updates["avatar_seed"] = *patch.AvatarSeed
	}
	if patch.Hash != nil {
		updates["hash"] = *patch.Hash
	}
	if patch.IsGuest != nil {
		updates["is_guest"] = *patch.IsGuest
	}
	if patch.Score != nil {
		updates["score"] = *patch.Score
	}

	res := ds.db.Model(&model.User{}).Where("id = ?", userID).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return ds.GetUser(userID)
}

// IncreaseScore adds delta in a single statement, so concurrent increases
// for the same user never lose updates.
func (ds *UserRepository) IncreaseScore(userID string, delta int) (*model.User, error) {
	res := ds.db.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"score":      gorm.Expr("score + ?", delta),
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return ds.GetUser(userID)
}
