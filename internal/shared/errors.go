package shared

import "fmt"

var (
	// Store errors
	ErrNotFound      = fmt.Errorf("record not found")
	ErrAlreadyExists = fmt.Errorf("record already exists")
	ErrForeignKey    = fmt.Errorf("referenced record does not exist")

	// Lookup errors
	ErrUserNotFound   = fmt.Errorf("user not found")
	ErrArtistNotFound = fmt.Errorf("artist not found")
	ErrAlbumNotFound  = fmt.Errorf("album not found")
	ErrSongNotFound   = fmt.Errorf("song not found")

	// Authentication errors
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
)
