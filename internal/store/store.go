// Package store is the persistence core: the entity schema lives in
// internal/models, and every multi-row create here runs as one all-or-nothing
// gorm transaction. Sensitive student fields pass through the field codec on
// the way in and out; callers only ever see plaintext.
package store

import (
	"gorm.io/gorm"

	"github.com/opencanteen/canteen/internal/fieldcrypt"
)

// Store bundles the database handle with the field codec. Both are injected
// so tests can run independent stores with independent keys.
type Store struct {
	db    *gorm.DB
	codec *fieldcrypt.Codec
}

func New(db *gorm.DB, codec *fieldcrypt.Codec) *Store {
	return &Store{db: db, codec: codec}
}
