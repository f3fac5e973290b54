package repositories

import (
	"database/sql"
	"fmt"

	"github.com/xiaojl/musicbox/internal/models"
	"github.com/xiaojl/musicbox/internal/shared"
)

// SongRepository persists [models.Song] rows and serves the denormalized
// song listings (song + artist name + album title).
//
// Title uniqueness is enforced by the store's UNIQUE constraint. The catalog
// listing keeps songs without an album via an outer join; every other song
// query requires both the artist and the album, matching how the rows are
// displayed.
type SongRepository struct {
	db *sql.DB
}

// NewSongRepository creates a new SongRepository with the given database connection
func NewSongRepository(db *sql.DB) *SongRepository {
	return &SongRepository{db: db}
}

// Create inserts a new song with a store-assigned id. A duplicate title
// surfaces as [shared.ErrAlreadyExists]; a missing referenced artist or album
// surfaces as [shared.ErrForeignKey].
func (r *SongRepository) Create(song *models.Song) error {
	if err := song.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO songs (title, artist_id, album_id, genre, audio_url, language)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		song.Title,
		nullID(song.ArtistID),
		nullID(song.AlbumID),
		nullString(song.Genre),
		song.AudioURL,
		nullString(song.Language),
	)
	if err != nil {
		return fmt.Errorf("failed to insert song %q: %w", song.Title, storeError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted song id: %w", err)
	}
	song.ID = int(id)

	return nil
}

// Detail retrieves one denormalized song row by id.
func (r *SongRepository) Detail(id int) (*models.SongDetail, error) {
	query := `
		SELECT songs.song_id, songs.title, songs.artist_id, artists.name,
		       songs.album_id, albums.title, songs.genre, songs.audio_url, songs.language
		FROM songs
		JOIN artists ON songs.artist_id = artists.artist_id
		JOIN albums ON songs.album_id = albums.album_id
		WHERE songs.song_id = ?
	`

	rows, err := r.db.Query(query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query song %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("row iteration error: %w", err)
		}
		return nil, fmt.Errorf("%w: id %d", shared.ErrSongNotFound, id)
	}

	song, err := scanSongDetail(rows)
	if err != nil {
		return nil, err
	}

	return &song, nil
}

// All retrieves every song joined with its artist name and album title.
// Songs without an album are kept; songs without an artist are not.
func (r *SongRepository) All() ([]models.SongDetail, error) {
	query := `
		SELECT songs.song_id, songs.title, songs.artist_id, artists.name,
		       songs.album_id, albums.title, songs.genre, songs.audio_url, songs.language
		FROM songs
		JOIN artists ON songs.artist_id = artists.artist_id
		LEFT JOIN albums ON songs.album_id = albums.album_id
	`

	return r.collect(query)
}

// ByAlbum retrieves the denormalized songs of one album.
func (r *SongRepository) ByAlbum(albumID int) ([]models.SongDetail, error) {
	query := `
		SELECT songs.song_id, songs.title, songs.artist_id, artists.name,
		       songs.album_id, albums.title, songs.genre, songs.audio_url, songs.language
		FROM songs
		JOIN artists ON songs.artist_id = artists.artist_id
		JOIN albums ON songs.album_id = albums.album_id
		WHERE songs.album_id = ?
	`

	return r.collect(query, albumID)
}

// ByArtist retrieves the denormalized songs of one artist.
func (r *SongRepository) ByArtist(artistID int) ([]models.SongDetail, error) {
	query := `
		SELECT songs.song_id, songs.title, songs.artist_id, artists.name,
		       songs.album_id, albums.title, songs.genre, songs.audio_url, songs.language
		FROM songs
		JOIN artists ON songs.artist_id = artists.artist_id
		JOIN albums ON songs.album_id = albums.album_id
		WHERE songs.artist_id = ?
	`

	return r.collect(query, artistID)
}

// Search retrieves songs whose title contains the query, case-insensitively.
func (r *SongRepository) Search(query string) ([]models.SongDetail, error) {
	return r.SearchWithFilters(SongFilter{Query: query})
}

// SearchWithFilters retrieves songs matching every non-empty filter field.
// An empty filter returns every song that has both an artist and an album.
func (r *SongRepository) SearchWithFilters(filter SongFilter) ([]models.SongDetail, error) {
	query := `
		SELECT songs.song_id, songs.title, songs.artist_id, artists.name,
		       songs.album_id, albums.title, songs.genre, songs.audio_url, songs.language
		FROM songs
		JOIN artists ON songs.artist_id = artists.artist_id
		JOIN albums ON songs.album_id = albums.album_id
		WHERE 1=1
	`

	args := []any{}

	if filter.Query != "" {
		query += " AND songs.title LIKE ? COLLATE NOCASE"
		args = append(args, "%"+filter.Query+"%")
	}

	if filter.Language != "" {
		query += " AND songs.language = ?"
		args = append(args, filter.Language)
	}

	if filter.Genre != "" {
		query += " AND songs.genre = ?"
		args = append(args, filter.Genre)
	}

	return r.collect(query, args...)
}

// Languages retrieves the distinct non-null song languages, in store order.
func (r *SongRepository) Languages() ([]string, error) {
	return r.distinct("language")
}

// Genres retrieves the distinct non-null song genres, in store order.
func (r *SongRepository) Genres() ([]string, error) {
	return r.distinct("genre")
}

func (r *SongRepository) distinct(column string) ([]string, error) {
	rows, err := r.db.Query(fmt.Sprintf("SELECT DISTINCT %s FROM songs WHERE %s IS NOT NULL", column, column))
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct song %s: %w", column, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", column, err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return values, nil
}

// collect runs a denormalized song query and scans all rows.
func (r *SongRepository) collect(query string, args ...any) ([]models.SongDetail, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
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

// scanSongDetail scans one denormalized song row. Album columns may be NULL
// when the row comes from an outer join.
func scanSongDetail(rows *sql.Rows) (models.SongDetail, error) {
	var (
		song       models.SongDetail
		albumID    sql.NullInt64
		albumTitle sql.NullString
		genre      sql.NullString
		language   sql.NullString
	)

	err := rows.Scan(&song.ID, &song.Title, &song.ArtistID, &song.ArtistName,
		&albumID, &albumTitle, &genre, &song.AudioURL, &language)
	if err != nil {
		return models.SongDetail{}, fmt.Errorf("failed to scan song: %w", err)
	}

	song.AlbumID = int(albumID.Int64)
	song.AlbumTitle = albumTitle.String
	song.Genre = genre.String
	song.Language = language.String

	return song, nil
}
