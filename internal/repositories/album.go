package repositories

import (
	"database/sql"
	"fmt"

	"github.com/xiaojl/musicbox/internal/models"
	"github.com/xiaojl/musicbox/internal/shared"
)

// AlbumRepository persists [models.Album] rows.
//
// Unlike artists and songs, album titles carry no uniqueness constraint and
// Create performs a blind insert. Two artists may well release albums with
// the same title, so the asymmetry is kept on purpose.
type AlbumRepository struct {
	db *sql.DB
}

// NewAlbumRepository creates a new AlbumRepository with the given database connection
func NewAlbumRepository(db *sql.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

// Create inserts a new album with its explicit id. A missing referenced
// artist surfaces as [shared.ErrForeignKey].
func (r *AlbumRepository) Create(album *models.Album) error {
	if err := album.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO albums (album_id, title, artist_id)
		VALUES (?, ?, ?)
	`

	_, err := r.db.Exec(query, nullID(album.ID), album.Title, nullID(album.ArtistID))
	if err != nil {
		return fmt.Errorf("failed to insert album %q: %w", album.Title, storeError(err))
	}

	return nil
}

// TitleByID retrieves an album's title by id.
func (r *AlbumRepository) TitleByID(id int) (string, error) {
	var title string

	err := r.db.QueryRow("SELECT title FROM albums WHERE album_id = ?", id).Scan(&title)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: id %d", shared.ErrAlbumNotFound, id)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query album title: %w", err)
	}

	return title, nil
}

// All retrieves every album joined with its artist's name. Albums without a
// linked artist are excluded, matching the mandatory join of the listing.
func (r *AlbumRepository) All() ([]models.AlbumSummary, error) {
	query := `
		SELECT albums.album_id, albums.title, artists.name
		FROM albums
		JOIN artists ON albums.artist_id = artists.artist_id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query albums: %w", err)
	}
	defer rows.Close()

	var albums []models.AlbumSummary
	for rows.Next() {
		var album models.AlbumSummary
		if err := rows.Scan(&album.ID, &album.Title, &album.ArtistName); err != nil {
			return nil, fmt.Errorf("failed to scan album: %w", err)
		}
		albums = append(albums, album)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return albums, nil
}

// Search retrieves albums whose title contains the query, case-insensitively.
func (r *AlbumRepository) Search(query string) ([]models.Album, error) {
	stmt := `
		SELECT album_id, title, artist_id
		FROM albums
		WHERE title LIKE ? COLLATE NOCASE
	`

	rows, err := r.db.Query(stmt, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search albums: %w", err)
	}
	defer rows.Close()

	var albums []models.Album
	for rows.Next() {
		var (
			album    models.Album
			artistID sql.NullInt64
		)

		if err := rows.Scan(&album.ID, &album.Title, &artistID); err != nil {
			return nil, fmt.Errorf("failed to scan album: %w", err)
		}

		album.ArtistID = int(artistID.Int64)
		albums = append(albums, album)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return albums, nil
}
