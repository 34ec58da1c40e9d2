package dto

import "time"

// ==================== CHALLENGE REQUEST DTOs ====================

type CreateChallengeRequest struct {
	Title        string `json:"title" validate:"required"`
	Category     string `json:"category"`
	Type         string `json:"type" validate:"required,oneof=counter dailychallenge"`
	Goal         int    `json:"goal" validate:"required,gt=0"`
	Description  string `json:"description" validate:"required"`
	LanguageCode string `json:"language_code,omitempty" validate:"omitempty,max=8"`
}

func (c CreateChallengeRequest) Validate() error {
	return GetValidator().Struct(c)
}

// Progress is a pointer so required means "field present": zero and
// negative contributions are valid deltas.
type AddProgressRequest struct {
	Progress *int `json:"progress" validate:"required"`
}

func (a AddProgressRequest) Validate() error {
	return GetValidator().Struct(a)
}

// ==================== CHALLENGE RESPONSE DTOs ====================

type ChallengeResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Goal        int       `json:"goal"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateChallengeResponse struct {
	ChallengeID string `json:"challenge_id"`
}

type UserChallengeResponse struct {
	UserID      string    `json:"user_id"`
	ChallengeID string    `json:"challenge_id"`
	Progress    int       `json:"progress"`
	UpdatedAt   time.Time `json:"updated_at"`
}
