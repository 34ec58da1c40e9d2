package model

import "time"

// User invariant: a verified (non-guest) user has both email and hash, a
// guest has neither. The service layer rejects bad combinations before any
// write; the check constraint backstops the guest side at the store.
type User struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"size:64;not null" json:"name"`
	Email      *string    `gorm:"uniqueIndex" json:"email,omitempty"`
	Hash       *string    `gorm:"check:chk_guest_has_no_hash,is_guest = false OR hash IS NULL" json:"-"`
	IsGuest    bool       `gorm:"not null;default:true" json:"is_guest"`
	AvatarSeed string     `json:"avatar_seed"`
	Score      int        `gorm:"not null;default:0" json:"score"`
	CreatedAt  time.Time  `json:"created_at"`
	// Stays null until the first patch; the repository sets it explicitly.
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
}
