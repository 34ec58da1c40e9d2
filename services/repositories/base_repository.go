package repositories

import (
	"gorm.io/gorm"
)

// BaseRepository carries the shared gorm handle the concrete repositories
// embed. Transactional writes still take the handle explicitly so they run
// on the caller's transaction, not this one.
type BaseRepository struct {
	db *gorm.DB
}

func NewBaseRepository(db *gorm.DB) BaseRepository {
	return BaseRepository{db: db}
}

// DB exposes the raw handle for ad hoc queries.
func (r *BaseRepository) DB() *gorm.DB {
	return r.db
}
