// Package repositories implements SQLite persistence for all catalog entities.
//
// Each repository wraps a *sql.DB and executes one parameterized statement per
// operation (favorites run a short fixed lookup-then-write sequence). No
// repository holds state between calls; isolation between concurrent callers
// is delegated entirely to the store's constraints.
//
// Key Implementations:
//   - [ArtistRepository] : Artist persistence with substring and filtered search
//   - [AlbumRepository] : Album persistence and denormalized listings
//   - [SongRepository] : Song persistence, denormalized lookups, filtered search
//   - [UserRepository] : Account persistence, full-row updates, authentication
//   - [FavoriteRepository] : Name-resolving, idempotent favorite management
//
// Uniqueness is enforced solely by the store's UNIQUE constraints: a
// constraint violation surfaces as [shared.ErrAlreadyExists] rather than being
// pre-checked, so racing inserts cannot slip duplicates past a lookup.
// Lookup misses surface as not-found sentinels and are distinct from store
// failures.
package repositories
