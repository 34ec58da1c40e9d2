package model

import "time"

type Challenge struct {
	ID            string       `gorm:"primaryKey" json:"id"`
	Type          string       `gorm:"size:32;not null" json:"type"`
	Goal          int          `gorm:"not null" json:"goal"`
	Title         string       `gorm:"not null" json:"title"`
	Category      string       `json:"category"`
	DescriptionID string       `gorm:"not null" json:"-"`
	Description   *Translation `gorm:"foreignKey:DescriptionID" json:"-"`
	CreatedAt     time.Time    `json:"created_at"`
}

// UserChallenge is the progress ledger row. The composite primary key is
// the one-row-per-(user, challenge) constraint that the merge-add upsert
// resolves against.
type UserChallenge struct {
	UserID      string     `gorm:"primaryKey" json:"user_id"`
	User        *User      `gorm:"foreignKey:UserID" json:"-"`
	ChallengeID string     `gorm:"primaryKey" json:"challenge_id"`
	Challenge   *Challenge `gorm:"foreignKey:ChallengeID" json:"-"`
	Progress    int        `gorm:"not null" json:"progress"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
