package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/xiaojl/musicbox/internal/models"
	"github.com/xiaojl/musicbox/internal/shared"
)

func seedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Populate the catalog with sample data",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fresh",
				Usage: "Drop and recreate the schema before seeding",
			},
		},
		Action: r.SeedCatalog,
	}
}

var seedArtists = []models.Artist{
	{ID: 1, Name: "林俊杰", Bio: "著名歌手", Country: "新加坡", Gender: "男"},
	{ID: 2, Name: "The Weeknd", Bio: "加拿大歌手和音乐制作人", Country: "加拿大", Gender: "男"},
	{ID: 3, Name: "Kanye West", Bio: "美国著名说唱歌手和音乐制作人", Country: "美国", Gender: "男"},
	{ID: 4, Name: "Gareth.T", Bio: "香港R&B音乐人", Country: "中国香港", Gender: "男"},
	{ID: 5, Name: "卫兰", Bio: "英国籍华裔女歌手", Country: "中国香港", Gender: "女"},
	{ID: 6, Name: "陈奕迅", Bio: "华语流行乐男歌手, 演员, 作曲人", Country: "中国香港", Gender: "男"},
	{ID: 7, Name: "陶喆", Bio: "音乐创作人, 制作人, 歌手", Country: "中国台北", Gender: "男"},
	{ID: 8, Name: "法老", Bio: "中国内地说唱男歌手, 词曲作者", Country: "中国大陆", Gender: "男"},
}

var seedAlbums = []models.Album{
	{ID: 1, Title: "第二天堂", ArtistID: 1},
	{ID: 2, Title: "After Hours", ArtistID: 2},
	{ID: 3, Title: "Donda", ArtistID: 3},
	{ID: 4, Title: "紧急联络人", ArtistID: 4},
	{ID: 5, Title: "国际孤独等级", ArtistID: 4},
	{ID: 6, Title: "Imagine", ArtistID: 5},
	{ID: 7, Title: "L.O.V.E.", ArtistID: 6},
	{ID: 8, Title: "U 87", ArtistID: 6},
	{ID: 9, Title: "Im OK", ArtistID: 7},
	{ID: 10, Title: "Lift Continues", ArtistID: 6},
	{ID: 11, Title: "星空叙爱曲", ArtistID: 8},
	{ID: 12, Title: "健将mixtape(Explicit)", ArtistID: 8},
}

var seedSongs = []models.Song{
	{Title: "After Hours", ArtistID: 2, AlbumID: 2, Genre: "R&B", AudioURL: "After_Hours.mp3", Language: "English"},
	{Title: "Save Your Tears", ArtistID: 2, AlbumID: 2, Genre: "R&B", AudioURL: "Save_Your_Tears.mp3", Language: "English"},
	{Title: "江南", ArtistID: 1, AlbumID: 1, Genre: "Pop", AudioURL: "江南.mp3", Language: "国语"},
	{Title: "美人鱼", ArtistID: 1, AlbumID: 1, Genre: "Pop", AudioURL: "美人鱼.mp3", Language: "国语"},
	{Title: "24", ArtistID: 3, AlbumID: 3, Genre: "Hip-Hop", AudioURL: "24.mp3", Language: "English"},
	{Title: "紧急联络人", ArtistID: 4, AlbumID: 4, Genre: "R&B", AudioURL: "紧急联络人.mp3", Language: "粤语"},
	{Title: "国际孤独等级", ArtistID: 4, AlbumID: 5, Genre: "R&B", AudioURL: "国际孤独等级.mp3", Language: "粤语"},
	{Title: "街灯晚餐", ArtistID: 5, AlbumID: 6, Genre: "R&B", AudioURL: "街灯晚餐.mp3", Language: "粤语"},
	{Title: "我们万岁", ArtistID: 6, AlbumID: 7, Genre: "R&B", AudioURL: "我们万岁.mp3", Language: "粤语"},
	{Title: "葡萄成熟时", ArtistID: 6, AlbumID: 8, Genre: "R&B", AudioURL: "葡萄成熟时.mp3", Language: "粤语"},
	{Title: "普通朋友", ArtistID: 7, AlbumID: 9, Genre: "R&B", AudioURL: "普通朋友.mp3", Language: "国语"},
	{Title: "天天", ArtistID: 7, AlbumID: 9, Genre: "R&B", AudioURL: "天天.mp3", Language: "国语"},
	{Title: "找自己", ArtistID: 7, AlbumID: 9, Genre: "R&B", AudioURL: "找自己.mp3", Language: "国语"},
	{Title: "最佳损友", ArtistID: 6, AlbumID: 10, Genre: "R&B", AudioURL: "最佳损友.mp3", Language: "粤语"},
	{Title: "星空叙爱曲", ArtistID: 8, AlbumID: 11, Genre: "Rap", AudioURL: "星空叙爱曲.mp3", Language: "国语"},
	{Title: "会魔法的老人", ArtistID: 8, AlbumID: 12, Genre: "Rap", AudioURL: "会魔法的老人.mp3", Language: "国语"},
}

// SeedCatalog fills the database with the sample catalog.
//
// Seeding is tolerant of reruns: rows that already exist are skipped and
// counted rather than treated as failures.
func (r *Runner) SeedCatalog(ctx context.Context, cmd *cli.Command) error {
	batchID := shared.GenerateID()
	logger := r.logger.With("batch", batchID)

	db, cat, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if cmd.Bool("fresh") || r.config.Seed.Fresh {
		logger.Warn("dropping existing schema before seed")
		if err := shared.RollbackMigration(db); err != nil {
			return fmt.Errorf("failed to roll back schema: %w", err)
		}
	}

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var inserted, skipped int

	for _, artist := range seedArtists {
		a := artist
		if err := cat.artists.Create(&a); err != nil {
			if errors.Is(err, shared.ErrAlreadyExists) {
				logger.Debug("artist already present", "name", artist.Name)
				skipped++
				continue
			}
			return fmt.Errorf("failed to seed artist %q: %w", artist.Name, err)
		}
		inserted++
	}

	for _, album := range seedAlbums {
		a := album
		if err := cat.albums.Create(&a); err != nil {
			if errors.Is(err, shared.ErrAlreadyExists) {
				logger.Debug("album already present", "title", album.Title)
				skipped++
				continue
			}
			return fmt.Errorf("failed to seed album %q: %w", album.Title, err)
		}
		inserted++
	}

	for _, song := range seedSongs {
		s := song
		if err := cat.songs.Create(&s); err != nil {
			if errors.Is(err, shared.ErrAlreadyExists) {
				logger.Debug("song already present", "title", song.Title)
				skipped++
				continue
			}
			return fmt.Errorf("failed to seed song %q: %w", song.Title, err)
		}
		inserted++
	}

	logger.Info("seed complete", "inserted", inserted, "skipped", skipped)
	r.writePlain("✓ Seeded catalog: %d inserted, %d skipped\n", inserted, skipped)
	return nil
}
