package repositories

import (
	"database/sql"
	"fmt"

	"github.com/xiaojl/musicbox/internal/models"
	"github.com/xiaojl/musicbox/internal/shared"
)

// ArtistRepository persists [models.Artist] rows.
//
// Artists carry explicit ids supplied by the caller; name uniqueness is
// enforced by the store's UNIQUE constraint rather than a pre-insert lookup.
type ArtistRepository struct {
	db *sql.DB
}

// NewArtistRepository creates a new ArtistRepository with the given database connection
func NewArtistRepository(db *sql.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// Create inserts a new artist. A duplicate name surfaces as
// [shared.ErrAlreadyExists].
func (r *ArtistRepository) Create(artist *models.Artist) error {
	if err := artist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO artists (artist_id, name, bio, country, gender)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		nullID(artist.ID),
		artist.Name,
		nullString(artist.Bio),
		nullString(artist.Country),
		nullString(artist.Gender),
	)
	if err != nil {
		return fmt.Errorf("failed to insert artist %q: %w", artist.Name, storeError(err))
	}

	return nil
}

// BioByName retrieves an artist's biography by exact name.
func (r *ArtistRepository) BioByName(name string) (string, error) {
	var bio sql.NullString

	err := r.db.QueryRow("SELECT bio FROM artists WHERE name = ?", name).Scan(&bio)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: %s", shared.ErrArtistNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query artist bio: %w", err)
	}

	return bio.String, nil
}

// Info retrieves the display name and biography for an artist by id.
func (r *ArtistRepository) Info(id int) (*models.ArtistInfo, error) {
	var (
		name string
		bio  sql.NullString
	)

	err := r.db.QueryRow("SELECT name, bio FROM artists WHERE artist_id = ?", id).Scan(&name, &bio)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: id %d", shared.ErrArtistNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query artist info: %w", err)
	}

	return &models.ArtistInfo{Name: name, Bio: bio.String}, nil
}

// All retrieves every artist in the catalog.
func (r *ArtistRepository) All() ([]models.Artist, error) {
	return r.SearchWithFilters(ArtistFilter{})
}

// Search retrieves artists whose name contains the query, case-insensitively.
func (r *ArtistRepository) Search(query string) ([]models.Artist, error) {
	return r.SearchWithFilters(ArtistFilter{Query: query})
}

// SearchWithFilters retrieves artists matching every non-empty filter field.
// An empty filter returns the whole catalog.
func (r *ArtistRepository) SearchWithFilters(filter ArtistFilter) ([]models.Artist, error) {
	query := `
		SELECT artist_id, name, bio, country, gender
		FROM artists
		WHERE 1=1
	`

	args := []any{}

	if filter.Query != "" {
		query += " AND name LIKE ? COLLATE NOCASE"
		args = append(args, "%"+filter.Query+"%")
	}

	if filter.Country != "" {
		query += " AND country = ?"
		args = append(args, filter.Country)
	}

	if filter.Gender != "" {
		query += " AND gender = ?"
		args = append(args, filter.Gender)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		var (
			artist  models.Artist
			bio     sql.NullString
			country sql.NullString
			gender  sql.NullString
		)

		if err := rows.Scan(&artist.ID, &artist.Name, &bio, &country, &gender); err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}

		artist.Bio = bio.String
		artist.Country = country.String
		artist.Gender = gender.String
		artists = append(artists, artist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return artists, nil
}

// Countries retrieves the distinct non-null artist countries, in store order.
func (r *ArtistRepository) Countries() ([]string, error) {
	return r.distinct("country")
}

// Genders retrieves the distinct non-null artist genders, in store order.
func (r *ArtistRepository) Genders() ([]string, error) {
	return r.distinct("gender")
}

func (r *ArtistRepository) distinct(column string) ([]string, error) {
	rows, err := r.db.Query(fmt.Sprintf("SELECT DISTINCT %s FROM artists WHERE %s IS NOT NULL", column, column))
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct artist %s: %w", column, err)
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

// nullID converts a zero id to NULL so the store assigns the next rowid.
func nullID(id int) any {
	if id == 0 {
		return nil
	}
	return id
}

// nullString converts an empty string to NULL for nullable text columns.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
