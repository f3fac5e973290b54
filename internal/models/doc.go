// Package models defines domain entities and query-shaped records for the musicbox catalog.
//
// The package contains two categories of types:
//
// 1. Entities: rows of the six catalog tables, keyed by integer ids
//   - [Artist] : Performer with name (unique), bio, country, gender
//   - [Album] : Release optionally linked to an artist
//   - [Song] : Track with unique title, required audio URL, optional album
//   - [User] : Account keyed by unique user_name
//   - [Playlist] : Named collection; schema-only, no operations use it
//   - [Favorite] : (user_id, song_id) pair marking a user's favored song
//
// 2. Denormalized records: flat query results joining several entities for display
//   - [SongDetail] : Song plus artist name and album title
//   - [AlbumSummary] : Album plus artist name
//   - [ArtistInfo] : Artist name and bio pair
//
// Entities carry Validate methods checking required fields before insert.
// Uniqueness and referential integrity are enforced by the store's
// constraints, never by in-process checks.
package models
