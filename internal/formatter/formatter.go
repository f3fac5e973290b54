// package formatter provides functions to export catalog and favorites data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xiaojl/musicbox/internal/models"
)

// FavoritesExport bundles a user's favorite songs for export.
type FavoritesExport struct {
	UserName string
	Songs    []models.SongDetail
}

// SongsToCSV converts song rows to CSV format with columns: ID, Title, Artist, Album, Genre, Language
func SongsToCSV(songs []models.SongDetail) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Album", "Genre", "Language"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range songs {
		record := []string{
			strconv.Itoa(song.ID),
			song.Title,
			song.ArtistName,
			song.AlbumTitle,
			song.Genre,
			song.Language,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// AlbumsToCSV converts album rows to CSV format with columns: ID, Title, Artist
func AlbumsToCSV(albums []models.AlbumSummary) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"ID", "Title", "Artist"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, album := range albums {
		record := []string{strconv.Itoa(album.ID), album.Title, album.ArtistName}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ArtistsToCSV converts artist rows to CSV format with columns: ID, Name, Country, Gender
func ArtistsToCSV(artists []models.Artist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"ID", "Name", "Country", "Gender"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, artist := range artists {
		record := []string{strconv.Itoa(artist.ID), artist.Name, artist.Country, artist.Gender}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// FavoritesToMarkdown converts a FavoritesExport to Markdown format
func FavoritesToMarkdown(export *FavoritesExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Favorites of %s\n\n", export.UserName))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(export.Songs)))

	buf.WriteString("## Songs\n\n")
	for i, song := range export.Songs {
		albumPart := ""
		if song.AlbumTitle != "" {
			albumPart = fmt.Sprintf(" (%s)", song.AlbumTitle)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s\n", i+1, song.ArtistName, song.Title, albumPart))
	}

	return buf.Bytes(), nil
}

// FavoritesToText converts a FavoritesExport to plain text format
func FavoritesToText(export *FavoritesExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("User: %s\n", export.UserName))
	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", len(export.Songs)))

	for i, song := range export.Songs {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, song.ArtistName, song.Title))
	}

	return buf.Bytes(), nil
}

// WriteFavoritesCSV exports a user's favorites to a CSV file.
//
// Defaults to the user name as the base filename & creates {base}_songs.csv
func WriteFavoritesCSV(export *FavoritesExport, baseFilepath string) (string, error) {
	if baseFilepath == "" {
		baseFilepath = export.UserName
	}

	csvData, err := SongsToCSV(export.Songs)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	songsFile := baseFilepath + "_songs.csv"
	if err := os.WriteFile(songsFile, csvData, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return songsFile, nil
}
