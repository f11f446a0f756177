package specification

import "gorm.io/gorm"

// ByID filters by primary key
type ByID struct {
	ID int64
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// OwnedBy filters by the owner token stored in user_id
type OwnedBy struct {
	OwnerID string
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.OwnerID)
}

// NewestFirst orders messages reverse-chronologically. Ties on
// created_at are broken by id so the order is well-defined.
type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC, id DESC")
}
