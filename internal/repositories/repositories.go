// package repositories provides the persistence layer for the catalog schema.
package repositories

import (
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/xiaojl/musicbox/internal/shared"
)

// storeError classifies a driver error into the shared sentinel taxonomy.
//
// Unique and primary-key violations become [shared.ErrAlreadyExists]; foreign
// key violations become [shared.ErrForeignKey]. Anything else passes through
// unchanged so callers can still distinguish store failures.
func storeError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return shared.ErrAlreadyExists
		case sqlite3.ErrConstraintForeignKey:
			return shared.ErrForeignKey
		}
	}
	return err
}

// isNotFound reports whether err is one of the lookup-miss sentinels, as
// opposed to a store failure.
func isNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound) ||
		errors.Is(err, shared.ErrUserNotFound) ||
		errors.Is(err, shared.ErrArtistNotFound) ||
		errors.Is(err, shared.ErrAlbumNotFound) ||
		errors.Is(err, shared.ErrSongNotFound)
}

// ArtistFilter holds the optional predicates for filtered artist search.
// Empty fields contribute no clause.
type ArtistFilter struct {
	Query   string // case-insensitive substring match on name
	Country string // exact match
	Gender  string // exact match
}

// SongFilter holds the optional predicates for filtered song search.
// Empty fields contribute no clause.
type SongFilter struct {
	Query    string // case-insensitive substring match on title
	Language string // exact match
	Genre    string // exact match
}
