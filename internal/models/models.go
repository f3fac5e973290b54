// package models defines the data model for the musicbox catalog service
package models

import "fmt"

// Artist is a performer. Name is unique across the catalog.
type Artist struct {
	ID      int    `json:"artist_id"`
	Name    string `json:"name"`
	Bio     string `json:"bio,omitempty"`
	Country string `json:"country,omitempty"`
	Gender  string `json:"gender,omitempty"`
}

// Validate checks that the artist has the fields the schema requires.
func (a *Artist) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("artist name is required")
	}
	return nil
}

// Album is a release. ArtistID of zero means the album has no linked artist.
type Album struct {
	ID       int    `json:"album_id"`
	Title    string `json:"title"`
	ArtistID int    `json:"artist_id,omitempty"`
}

// Validate checks that the album has the fields the schema requires.
func (a *Album) Validate() error {
	if a.Title == "" {
		return fmt.Errorf("album title is required")
	}
	return nil
}

// Song is a track. Title is unique across the catalog; AlbumID of zero means
// the song belongs to no album.
type Song struct {
	ID       int    `json:"song_id"`
	Title    string `json:"title"`
	ArtistID int    `json:"artist_id"`
	AlbumID  int    `json:"album_id,omitempty"`
	Genre    string `json:"genre,omitempty"`
	AudioURL string `json:"audio_url"`
	Language string `json:"language,omitempty"`
}

// Validate checks that the song has the fields the schema requires.
func (s *Song) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("song title is required")
	}
	if s.AudioURL == "" {
		return fmt.Errorf("song audio URL is required")
	}
	return nil
}

// User is an account keyed by a unique user name.
type User struct {
	ID       int    `json:"user_id"`
	UserName string `json:"user_name"`
	Password string `json:"-"`
	Email    string `json:"email,omitempty"`
	Tel      string `json:"tel,omitempty"`
	Year     int    `json:"year,omitempty"`
	Month    int    `json:"month,omitempty"`
	Day      int    `json:"day,omitempty"`
}

// Validate checks that the user has the fields the schema requires.
func (u *User) Validate() error {
	if u.UserName == "" {
		return fmt.Errorf("user name is required")
	}
	if u.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// Playlist is a named collection. The table exists in the schema but no
// operation writes or reads it yet.
type Playlist struct {
	ID          int    `json:"playlist_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Favorite records that a user has marked a song as favored.
// The pair is the primary key; both sides cascade on delete.
type Favorite struct {
	UserID int `json:"user_id"`
	SongID int `json:"song_id"`
}

// SongDetail is a denormalized song row joining artist and album fields.
// AlbumID and AlbumTitle are zero values when the song has no album.
type SongDetail struct {
	ID         int    `json:"song_id"`
	Title      string `json:"title"`
	ArtistID   int    `json:"artist_id"`
	ArtistName string `json:"artist_name"`
	AlbumID    int    `json:"album_id,omitempty"`
	AlbumTitle string `json:"album_title,omitempty"`
	Genre      string `json:"genre,omitempty"`
	AudioURL   string `json:"audio_url"`
	Language   string `json:"language,omitempty"`
}

// AlbumSummary is a denormalized album row joining the artist name.
type AlbumSummary struct {
	ID         int    `json:"album_id"`
	Title      string `json:"album_title"`
	ArtistName string `json:"artist_name"`
}

// ArtistInfo is the display pair returned for a single artist lookup.
type ArtistInfo struct {
	Name string `json:"artist_name"`
	Bio  string `json:"bio,omitempty"`
}
