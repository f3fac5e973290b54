package repositories

import (
	"database/sql"
	"fmt"

	"github.com/xiaojl/musicbox/internal/models"
	"github.com/xiaojl/musicbox/internal/shared"
)

// FavoriteRepository manages the (user_id, song_id) favorites association.
//
// Callers address favorites by names rather than ids: the repository resolves
// the user by user_name and the song by title. The pair's primary key is the
// sole safeguard against duplicate favorites, so Add is idempotent even under
// racing inserts.
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new FavoriteRepository with the given database connection
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add marks a song as a favorite of the given user. The song is resolved by
// (title, artist name) so duplicate titles across artists stay unambiguous.
// Adding an existing favorite is a silent no-op.
func (r *FavoriteRepository) Add(userName, songTitle, artistName string) error {
	userID, err := r.resolveUser(userName)
	if err != nil {
		return err
	}

	songID, err := r.resolveSong(songTitle, artistName)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO favorites (user_id, song_id)
		VALUES (?, ?)
		ON CONFLICT (user_id, song_id) DO NOTHING
	`

	if _, err := r.db.Exec(query, userID, songID); err != nil {
		return fmt.Errorf("failed to insert favorite: %w", storeError(err))
	}

	return nil
}

// Remove deletes a favorite, resolving the song by title alone. It reports
// whether a row was actually removed; removing a song the user never favored
// returns false with no error.
//
// Title-only resolution differs from Add's (title, artist) resolution. The
// schema's unique title constraint makes the lookup unambiguous in practice,
// so the looser contract is kept.
func (r *FavoriteRepository) Remove(userName, songTitle string) (bool, error) {
	userID, err := r.resolveUser(userName)
	if err != nil {
		return false, err
	}

	var songID int
	err = r.db.QueryRow("SELECT song_id FROM songs WHERE title = ?", songTitle).Scan(&songID)
	if err == sql.ErrNoRows {
		return false, fmt.Errorf("%w: %s", shared.ErrSongNotFound, songTitle)
	}
	if err != nil {
		return false, fmt.Errorf("failed to resolve song: %w", err)
	}

	result, err := r.db.Exec("DELETE FROM favorites WHERE user_id = ? AND song_id = ?", userID, songID)
	if err != nil {
		return false, fmt.Errorf("failed to delete favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows > 0, nil
}

// ListByUser retrieves the denormalized favorite songs of a user. An unknown
// user or a user with no favorites yields an empty list, not an error.
func (r *FavoriteRepository) ListByUser(userName string) ([]models.SongDetail, error) {
	userID, err := r.resolveUser(userName)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	query := `
		SELECT songs.song_id, songs.title, songs.artist_id, artists.name,
		       songs.album_id, albums.title, songs.genre, songs.audio_url, songs.language
		FROM favorites
		JOIN songs ON favorites.song_id = songs.song_id
		JOIN artists ON songs.artist_id = artists.artist_id
		LEFT JOIN albums ON songs.album_id = albums.album_id
		WHERE favorites.user_id = ?
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var songs []models.SongDetail
	for rows.Next() {
		song, err := scanSongDetail(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return songs, nil
}

// resolveUser maps a user name to its id.
func (r *FavoriteRepository) resolveUser(userName string) (int, error) {
	var userID int

	err := r.db.QueryRow("SELECT user_id FROM users WHERE user_name = ?", userName).Scan(&userID)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: %s", shared.ErrUserNotFound, userName)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve user: %w", err)
	}

	return userID, nil
}

// resolveSong maps a (title, artist name) pair to a song id.
func (r *FavoriteRepository) resolveSong(songTitle, artistName string) (int, error) {
	query := `
		SELECT songs.song_id
		FROM songs
		JOIN artists ON songs.artist_id = artists.artist_id
		WHERE songs.title = ? AND artists.name = ?
	`

	var songID int

	err := r.db.QueryRow(query, songTitle, artistName).Scan(&songID)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: %q by %q", shared.ErrSongNotFound, songTitle, artistName)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve song: %w", err)
	}

	return songID, nil
}
