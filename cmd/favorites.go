package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/xiaojl/musicbox/internal/formatter"
	"github.com/xiaojl/musicbox/internal/shared"
)

func favoritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "favorites",
		Usage: "Manage a user's favorite songs",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Mark a song as a favorite",
				ArgsUsage: "<user> <song-title> <artist-name>",
				Action:    r.FavoritesAdd,
			},
			{
				Name:      "remove",
				Usage:     "Remove a song from a user's favorites",
				ArgsUsage: "<user> <song-title>",
				Action:    r.FavoritesRemove,
			},
			{
				Name:      "list",
				Usage:     "List a user's favorite songs",
				ArgsUsage: "<user>",
				Flags: []cli.Flag{
					jsonFlag(), prettyFlag(),
					&cli.StringFlag{Name: "export", Usage: "Write the favorites to {path}_songs.csv"},
				},
				Action: r.FavoritesList,
			},
		},
	}
}

// FavoritesAdd marks a song as a favorite. Adding the same favorite twice
// is a no-op.
func (r *Runner) FavoritesAdd(ctx context.Context, cmd *cli.Command) error {
	userName := cmd.Args().Get(0)
	songTitle := cmd.Args().Get(1)
	artistName := cmd.Args().Get(2)
	if userName == "" || songTitle == "" || artistName == "" {
		return fmt.Errorf("%w: user, song title and artist name arguments required", shared.ErrMissingArgument)
	}

	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := cat.favorites.Add(userName, songTitle, artistName); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	r.logger.Info("favorite added", "user", userName, "song", songTitle)
	r.writePlain("✓ Added %q to %s's favorites\n", songTitle, userName)
	return nil
}

// FavoritesRemove removes a song from a user's favorites and reports
// whether anything was actually removed.
func (r *Runner) FavoritesRemove(ctx context.Context, cmd *cli.Command) error {
	userName := cmd.Args().Get(0)
	songTitle := cmd.Args().Get(1)
	if userName == "" || songTitle == "" {
		return fmt.Errorf("%w: user and song title arguments required", shared.ErrMissingArgument)
	}

	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	removed, err := cat.favorites.Remove(userName, songTitle)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	if removed {
		r.logger.Info("favorite removed", "user", userName, "song", songTitle)
		r.writePlain("✓ Removed %q from %s's favorites\n", songTitle, userName)
	} else {
		r.writePlain("Nothing to remove: %q was not in %s's favorites\n", songTitle, userName)
	}
	return nil
}

// FavoritesList prints a user's favorite songs, optionally exporting them
// to CSV.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	userName := cmd.Args().First()
	if userName == "" {
		return fmt.Errorf("%w: user argument required", shared.ErrMissingArgument)
	}

	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	songs, err := cat.favorites.ListByUser(userName)
	if err != nil {
		return fmt.Errorf("failed to list favorites: %w", err)
	}

	if base := cmd.String("export"); base != "" {
		export := &formatter.FavoritesExport{UserName: userName, Songs: songs}
		path, err := formatter.WriteFavoritesCSV(export, base)
		if err != nil {
			return fmt.Errorf("failed to export favorites: %w", err)
		}
		r.writePlain("✓ Favorites written to %s\n", path)
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(songs, cmd.Bool("pretty"))
	}

	r.writeSongList(fmt.Sprintf("Favorites of %s (%d)", userName, len(songs)), songs)
	return nil
}
