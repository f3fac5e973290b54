package formatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xiaojl/musicbox/internal/models"
)

func sampleExport() *FavoritesExport {
	return &FavoritesExport{
		UserName: "xiaojl",
		Songs: []models.SongDetail{
			{
				ID:         1,
				Title:      "Song One",
				ArtistName: "Artist One",
				AlbumTitle: "Album One",
				Genre:      "Pop",
				Language:   "English",
			},
			{
				ID:         2,
				Title:      "Song Two",
				ArtistName: "Artist Two",
				AlbumTitle: "",
				Genre:      "Rock",
				Language:   "Spanish",
			},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("SongsToCSV", func(t *testing.T) {
		export := sampleExport()

		data, err := SongsToCSV(export.Songs)
		if err != nil {
			t.Fatalf("SongsToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,Title,Artist,Album,Genre,Language") {
			t.Errorf("CSV missing headers, got: %s", output)
		}

		if !strings.Contains(output, "1,Song One,Artist One,Album One,Pop,English") {
			t.Errorf("CSV missing song1 row, got: %s", output)
		}
		if !strings.Contains(output, "2,Song Two,Artist Two,,Rock,Spanish") {
			t.Errorf("CSV missing song2 row (no album), got: %s", output)
		}
	})

	t.Run("AlbumsToCSV", func(t *testing.T) {
		albums := []models.AlbumSummary{
			{ID: 1, Title: "Album One", ArtistName: "Artist One"},
			{ID: 2, Title: "Album Two", ArtistName: "Artist Two"},
		}

		data, err := AlbumsToCSV(albums)
		if err != nil {
			t.Fatalf("AlbumsToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,Title,Artist") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "1,Album One,Artist One") {
			t.Errorf("CSV missing album1 row")
		}
	})

	t.Run("ArtistsToCSV", func(t *testing.T) {
		artists := []models.Artist{
			{ID: 1, Name: "Artist One", Country: "Canada", Gender: "male"},
		}

		data, err := ArtistsToCSV(artists)
		if err != nil {
			t.Fatalf("ArtistsToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,Name,Country,Gender") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "1,Artist One,Canada,male") {
			t.Errorf("CSV missing artist row, got: %s", output)
		}
	})

	t.Run("FavoritesToMarkdown", func(t *testing.T) {
		data, err := FavoritesToMarkdown(sampleExport())
		if err != nil {
			t.Fatalf("FavoritesToMarkdown failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "# Favorites of xiaojl") {
			t.Errorf("Markdown missing title")
		}
		if !strings.Contains(output, "**Songs**: 2") {
			t.Errorf("Markdown missing song count")
		}
		if !strings.Contains(output, "## Songs") {
			t.Errorf("Markdown missing songs section")
		}
		if !strings.Contains(output, "1. Artist One - Song One (Album One)") {
			t.Errorf("Markdown missing song1, got: %s", output)
		}
		if !strings.Contains(output, "2. Artist Two - Song Two\n") {
			t.Errorf("Markdown missing song2 (no album), got: %s", output)
		}
	})

	t.Run("FavoritesToText", func(t *testing.T) {
		data, err := FavoritesToText(sampleExport())
		if err != nil {
			t.Fatalf("FavoritesToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "User: xiaojl") {
			t.Errorf("Text missing user name")
		}
		if !strings.Contains(output, "Songs: 2") {
			t.Errorf("Text missing song count")
		}
		if !strings.Contains(output, "1. Artist One - Song One") {
			t.Errorf("Text missing song1")
		}
		if !strings.Contains(output, "2. Artist Two - Song Two") {
			t.Errorf("Text missing song2")
		}
	})

	t.Run("WriteFavoritesCSV", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "export")

		path, err := WriteFavoritesCSV(sampleExport(), base)
		if err != nil {
			t.Fatalf("WriteFavoritesCSV failed: %v", err)
		}

		if path != base+"_songs.csv" {
			t.Errorf("unexpected file path: %s", path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read exported file: %v", err)
		}
		if !strings.Contains(string(data), "Song One") {
			t.Errorf("exported file missing song row")
		}
	})
}
