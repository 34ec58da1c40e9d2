package dto

// ==================== AUTHENTICATION REQUEST DTOs ====================

// RegisterRequest covers both modes: a guest registration carries neither
// email nor password, a verified registration must carry both. The
// cross-field rule lives in AuthService so the error is a single
// bad-request outcome, not a per-field message.
type RegisterRequest struct {
	Name       string  `json:"name" validate:"required,max=64" example:"johndoe"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email" example:"user@example.com"`
	Password   *string `json:"password,omitempty" validate:"omitempty,min=8" example:"SecurePass123!"`
	AvatarSeed string  `json:"avatar_seed" example:"d41d8cd9"`
	IsGuest    bool    `json:"is_guest" example:"true"`
}

func (r RegisterRequest) Validate() error {
	return GetValidator().Struct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required" example:"SecurePass123!"`
}

func (l LoginRequest) Validate() error {
	return GetValidator().Struct(l)
}

// ==================== AUTHENTICATION RESPONSE DTOs ====================

type RegisterResponse struct {
	UserID      string `json:"user_id" example:"51f3f8e4-9744-4a52-9e40-b4e9373a1a37"`
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn   int64  `json:"expires_in" example:"10000"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn   int64  `json:"expires_in" example:"10000"`
}
