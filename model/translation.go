package model

// Translation rows are write-once. Every user-facing text column elsewhere
// references one of these by id instead of storing the text inline.
type Translation struct {
	ID           string `gorm:"primaryKey" json:"id"`
	LanguageCode string `gorm:"size:8;not null;default:'en'" json:"language_code"`
	Content      string `gorm:"not null" json:"content"`
}
