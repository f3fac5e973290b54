package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/xiaojl/musicbox/internal/formatter"
	"github.com/xiaojl/musicbox/internal/models"
	"github.com/xiaojl/musicbox/internal/repositories"
	"github.com/xiaojl/musicbox/internal/shared"
)

func artistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "artists",
		Usage: "Browse and search artists",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all artists",
				Flags: []cli.Flag{
					jsonFlag(), prettyFlag(),
					&cli.StringFlag{Name: "csv", Usage: "Write the listing to a CSV file"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return r.ArtistsSearch(ctx, cmd, "")
				},
			},
			{
				Name:      "search",
				Usage:     "Search artists by name with optional filters",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "country", Usage: "Filter by country"},
					&cli.StringFlag{Name: "gender", Usage: "Filter by gender"},
					jsonFlag(), prettyFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return r.ArtistsSearch(ctx, cmd, cmd.Args().First())
				},
			},
			{
				Name:      "get",
				Usage:     "Show an artist's name and bio",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{jsonFlag(), prettyFlag()},
				Action:    r.ArtistsGet,
			},
			{
				Name:   "filters",
				Usage:  "List distinct countries and genders for filtering",
				Flags:  []cli.Flag{jsonFlag(), prettyFlag()},
				Action: r.ArtistsFilters,
			},
		},
	}
}

func albumsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "albums",
		Usage: "Browse and search albums",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all albums with their artists",
				Flags: []cli.Flag{
					jsonFlag(), prettyFlag(),
					&cli.StringFlag{Name: "csv", Usage: "Write the listing to a CSV file"},
				},
				Action: r.AlbumsList,
			},
			{
				Name:      "search",
				Usage:     "Search albums by title",
				ArgsUsage: "<query>",
				Flags:     []cli.Flag{jsonFlag(), prettyFlag()},
				Action:    r.AlbumsSearch,
			},
		},
	}
}

func songsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "songs",
		Usage: "Browse and search songs",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all songs with artist and album names",
				Flags: []cli.Flag{
					jsonFlag(), prettyFlag(),
					&cli.IntFlag{Name: "album", Usage: "Only songs from this album id"},
					&cli.IntFlag{Name: "artist", Usage: "Only songs by this artist id"},
					&cli.StringFlag{Name: "csv", Usage: "Write the listing to a CSV file"},
				},
				Action: r.SongsList,
			},
			{
				Name:      "search",
				Usage:     "Search songs by title with optional filters",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "language", Usage: "Filter by language"},
					&cli.StringFlag{Name: "genre", Usage: "Filter by genre"},
					jsonFlag(), prettyFlag(),
				},
				Action: r.SongsSearch,
			},
			{
				Name:      "get",
				Usage:     "Show a song with its artist and album",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{jsonFlag(), prettyFlag()},
				Action:    r.SongsGet,
			},
			{
				Name:   "filters",
				Usage:  "List distinct languages and genres for filtering",
				Flags:  []cli.Flag{jsonFlag(), prettyFlag()},
				Action: r.SongsFilters,
			},
		},
	}
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{Name: "json", Usage: "Output as JSON"}
}

func prettyFlag() cli.Flag {
	return &cli.BoolFlag{Name: "pretty", Usage: "Pretty-print JSON output"}
}

// ArtistsSearch lists artists matching the query and filter flags. An empty
// query with no filters lists the whole roster.
func (r *Runner) ArtistsSearch(ctx context.Context, cmd *cli.Command, query string) error {
	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	filter := repositories.ArtistFilter{
		Query:   query,
		Country: cmd.String("country"),
		Gender:  cmd.String("gender"),
	}

	artists, err := cat.artists.SearchWithFilters(filter)
	if err != nil {
		return fmt.Errorf("failed to search artists: %w", err)
	}

	if csvPath := cmd.String("csv"); csvPath != "" {
		data, err := formatter.ArtistsToCSV(artists)
		if err != nil {
			return fmt.Errorf("failed to format artists: %w", err)
		}
		if err := writeFile(csvPath, data); err != nil {
			return err
		}
		r.writePlain("✓ Artists written to %s\n", csvPath)
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(artists, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Artists (%d)", len(artists)))
	for _, artist := range artists {
		line := artist.Name
		if artist.Country != "" {
			line += " [" + artist.Country + "]"
		}
		r.writePlain("%d. %s\n", artist.ID, line)
	}
	return nil
}

// ArtistsGet shows a single artist's name and bio.
func (r *Runner) ArtistsGet(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd)
	if err != nil {
		return err
	}

	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	info, err := cat.artists.Info(id)
	if err != nil {
		return fmt.Errorf("failed to get artist %d: %w", id, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(info, cmd.Bool("pretty"))
	}

	r.writePlainHeader(info.Name)
	if info.Bio != "" {
		r.writePlain("%s\n", info.Bio)
	}
	return nil
}

// ArtistsFilters lists the distinct countries and genders present in the roster.
func (r *Runner) ArtistsFilters(ctx context.Context, cmd *cli.Command) error {
	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	countries, err := cat.artists.Countries()
	if err != nil {
		return fmt.Errorf("failed to list countries: %w", err)
	}
	genders, err := cat.artists.Genders()
	if err != nil {
		return fmt.Errorf("failed to list genders: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string][]string{
			"countries": countries,
			"genders":   genders,
		}, cmd.Bool("pretty"))
	}

	r.writePlain("Countries: %s\n", strings.Join(countries, ", "))
	r.writePlain("Genders: %s\n", strings.Join(genders, ", "))
	return nil
}

// AlbumsList lists every album together with its artist's name.
func (r *Runner) AlbumsList(ctx context.Context, cmd *cli.Command) error {
	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	albums, err := cat.albums.All()
	if err != nil {
		return fmt.Errorf("failed to list albums: %w", err)
	}

	if csvPath := cmd.String("csv"); csvPath != "" {
		data, err := formatter.AlbumsToCSV(albums)
		if err != nil {
			return fmt.Errorf("failed to format albums: %w", err)
		}
		if err := writeFile(csvPath, data); err != nil {
			return err
		}
		r.writePlain("✓ Albums written to %s\n", csvPath)
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(albums, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Albums (%d)", len(albums)))
	for _, album := range albums {
		r.writePlain("%d. %s - %s\n", album.ID, album.ArtistName, album.Title)
	}
	return nil
}

// AlbumsSearch searches albums by title.
func (r *Runner) AlbumsSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.Args().First()

	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	albums, err := cat.albums.Search(query)
	if err != nil {
		return fmt.Errorf("failed to search albums: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(albums, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Albums matching %q (%d)", query, len(albums)))
	for _, album := range albums {
		r.writePlain("%d. %s\n", album.ID, album.Title)
	}
	return nil
}

// SongsList lists songs, optionally narrowed to one album or one artist.
func (r *Runner) SongsList(ctx context.Context, cmd *cli.Command) error {
	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	var songs []models.SongDetail
	switch {
	case cmd.Int("album") > 0:
		songs, err = cat.songs.ByAlbum(cmd.Int("album"))
	case cmd.Int("artist") > 0:
		songs, err = cat.songs.ByArtist(cmd.Int("artist"))
	default:
		songs, err = cat.songs.All()
	}
	if err != nil {
		return fmt.Errorf("failed to list songs: %w", err)
	}

	if csvPath := cmd.String("csv"); csvPath != "" {
		data, err := formatter.SongsToCSV(songs)
		if err != nil {
			return fmt.Errorf("failed to format songs: %w", err)
		}
		if err := writeFile(csvPath, data); err != nil {
			return err
		}
		r.writePlain("✓ Songs written to %s\n", csvPath)
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(songs, cmd.Bool("pretty"))
	}

	r.writeSongList(fmt.Sprintf("Songs (%d)", len(songs)), songs)
	return nil
}

// SongsSearch searches songs by title with optional language and genre filters.
func (r *Runner) SongsSearch(ctx context.Context, cmd *cli.Command) error {
	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	filter := repositories.SongFilter{
		Query:    cmd.Args().First(),
		Language: cmd.String("language"),
		Genre:    cmd.String("genre"),
	}

	songs, err := cat.songs.SearchWithFilters(filter)
	if err != nil {
		return fmt.Errorf("failed to search songs: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(songs, cmd.Bool("pretty"))
	}

	r.writeSongList(fmt.Sprintf("Songs matching %q (%d)", filter.Query, len(songs)), songs)
	return nil
}

// SongsGet shows a single song joined with its artist and album.
func (r *Runner) SongsGet(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd)
	if err != nil {
		return err
	}

	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	song, err := cat.songs.Detail(id)
	if err != nil {
		return fmt.Errorf("failed to get song %d: %w", id, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(song, cmd.Bool("pretty"))
	}

	r.writePlainHeader(song.Title)
	r.writePlain("Artist: %s\n", song.ArtistName)
	if song.AlbumTitle != "" {
		r.writePlain("Album: %s\n", song.AlbumTitle)
	}
	if song.Genre != "" {
		r.writePlain("Genre: %s\n", song.Genre)
	}
	if song.Language != "" {
		r.writePlain("Language: %s\n", song.Language)
	}
	r.writePlain("Audio: %s\n", song.AudioURL)
	return nil
}

// SongsFilters lists the distinct languages and genres present in the catalog.
func (r *Runner) SongsFilters(ctx context.Context, cmd *cli.Command) error {
	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	languages, err := cat.songs.Languages()
	if err != nil {
		return fmt.Errorf("failed to list languages: %w", err)
	}
	genres, err := cat.songs.Genres()
	if err != nil {
		return fmt.Errorf("failed to list genres: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string][]string{
			"languages": languages,
			"genres":    genres,
		}, cmd.Bool("pretty"))
	}

	r.writePlain("Languages: %s\n", strings.Join(languages, ", "))
	r.writePlain("Genres: %s\n", strings.Join(genres, ", "))
	return nil
}

func (r *Runner) writeSongList(title string, songs []models.SongDetail) {
	r.writePlainHeader(title)
	for _, song := range songs {
		albumPart := ""
		if song.AlbumTitle != "" {
			albumPart = " (" + song.AlbumTitle + ")"
		}
		r.writePlain("%d. %s - %s%s\n", song.ID, song.ArtistName, song.Title, albumPart)
	}
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func parseIDArg(cmd *cli.Command) (int, error) {
	arg := cmd.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("%w: id argument required", shared.ErrMissingArgument)
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be a number, got %q", shared.ErrInvalidInput, arg)
	}
	return id, nil
}
