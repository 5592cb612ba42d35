package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/btuckerc/jeopardy-sub004/internal/config"
	"github.com/btuckerc/jeopardy-sub004/internal/database"
	"github.com/btuckerc/jeopardy-sub004/internal/scraper"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

const usage = `usage: loader <command> [flags]

commands:
  seasons            list season ids from the archive
  season -id <id>    scrape every game of a season
  game -id <n>       scrape a single game

common flags:
  -out <dir>         write one JSON file per game (default "data")
  -db                also upsert questions into the database
  -delay <dur>       delay between requests (default 1.5s)
  -checkpoint <file> resumable checkpoint path (default "loader-checkpoint.json")
  -base-url <url>    archive base URL
`

type options struct {
	outDir     string
	useDB      bool
	delay      time.Duration
	checkpoint string
	baseURL    string
}

func addCommonFlags(fs *flag.FlagSet, opts *options) {
	fs.StringVar(&opts.outDir, "out", "data", "output directory for game JSON files")
	fs.BoolVar(&opts.useDB, "db", false, "upsert scraped questions into the database")
	fs.DurationVar(&opts.delay, "delay", 1500*time.Millisecond, "delay between requests")
	fs.StringVar(&opts.checkpoint, "checkpoint", "loader-checkpoint.json", "checkpoint file path")
	fs.StringVar(&opts.baseURL, "base-url", scraper.DefaultBaseURL, "archive base URL")
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var opts options
	var err error
	switch os.Args[1] {
	case "seasons":
		fs := flag.NewFlagSet("seasons", flag.ExitOnError)
		addCommonFlags(fs, &opts)
		fs.Parse(os.Args[2:])
		err = runSeasons(&opts)

	case "season":
		fs := flag.NewFlagSet("season", flag.ExitOnError)
		id := fs.String("id", "", "season id (required)")
		addCommonFlags(fs, &opts)
		fs.Parse(os.Args[2:])
		if *id == "" {
			fs.Usage()
			os.Exit(2)
		}
		err = runSeason(&opts, *id)

	case "game":
		fs := flag.NewFlagSet("game", flag.ExitOnError)
		id := fs.Int("id", 0, "game id (required)")
		addCommonFlags(fs, &opts)
		fs.Parse(os.Args[2:])
		if *id <= 0 {
			fs.Usage()
			os.Exit(2)
		}
		err = runGames(&opts, []int{*id})

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		slog.Error("loader failed", "err", err)
		os.Exit(1)
	}
}

func runSeasons(opts *options) error {
	client := scraper.NewClient(opts.baseURL, opts.delay)

	html, err := client.FetchSeasonList()
	if err != nil {
		return err
	}
	ids, err := scraper.ParseSeasonIDs(html)
	if err != nil {
		return err
	}

	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func runSeason(opts *options, seasonID string) error {
	client := scraper.NewClient(opts.baseURL, opts.delay)

	html, err := client.FetchSeason(seasonID)
	if err != nil {
		return err
	}
	ids, err := scraper.ParseSeasonGameIDs(html)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("season %s has no game links", seasonID)
	}

	slog.Info("season resolved", "season", seasonID, "games", len(ids))
	return scrapeGames(opts, client, ids)
}

func runGames(opts *options, ids []int) error {
	client := scraper.NewClient(opts.baseURL, opts.delay)
	return scrapeGames(opts, client, ids)
}

func scrapeGames(opts *options, client *scraper.Client, ids []int) error {
	checkpoint, err := scraper.LoadCheckpoint(opts.checkpoint)
	if err != nil {
		return fmt.Errorf("load checkpoint: %w", err)
	}

	var db *gorm.DB
	var loader *scraper.Loader
	if opts.useDB {
		db = database.Connect(config.Load())
		database.AutoMigrate(db)
		loader = scraper.NewLoader(db)
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}

	for _, id := range ids {
		if checkpoint.Done(id) {
			slog.Info("skipping completed game", "game", id)
			continue
		}

		html, err := client.FetchGame(id)
		if err != nil {
			return fmt.Errorf("game %d: %w", id, err)
		}

		game, err := scraper.ParseGame(html, id)
		if err != nil {
			slog.Warn("skipping unparseable game", "game", id, "err", err)
			if err := checkpoint.MarkDone(id); err != nil {
				return err
			}
			continue
		}

		if err := writeGameFile(opts.outDir, game); err != nil {
			return err
		}

		if loader != nil {
			count, err := loader.UpsertGame(game)
			if err != nil {
				return fmt.Errorf("upsert game %d: %w", id, err)
			}
			slog.Info("game loaded", "game", id, "clues", count)
		} else {
			slog.Info("game scraped", "game", id)
		}

		if err := checkpoint.MarkDone(id); err != nil {
			return fmt.Errorf("save checkpoint: %w", err)
		}
	}

	slog.Info("scrape finished", "completed_total", checkpoint.Len())
	return nil
}

func writeGameFile(dir string, game *scraper.ScrapedGame) error {
	raw, err := json.MarshalIndent(game, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("game_%d.json", game.GameID))
	return os.WriteFile(path, raw, 0o644)
}
