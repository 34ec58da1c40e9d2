package dto

import "time"

type UserProfileResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      *string    `json:"email,omitempty"`
	IsGuest    bool       `json:"is_guest"`
	AvatarSeed string     `json:"avatar_seed"`
	Score      int        `json:"score"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// UpdateProfileRequest carries coalesce semantics: only provided fields
// overwrite, omitted fields keep their stored values.
type UpdateProfileRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,max=64"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	AvatarSeed *string `json:"avatar_seed,omitempty"`
}

func (u UpdateProfileRequest) Validate() error {
	return GetValidator().Struct(u)
}

type IncreaseScoreRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

func (i IncreaseScoreRequest) Validate() error {
	return GetValidator().Struct(i)
}

type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Score  int64  `json:"score"`
	Rank   int64  `json:"rank"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}
