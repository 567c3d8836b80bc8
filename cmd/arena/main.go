package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"dropfour/internal/config"
	"dropfour/internal/repository/sqlite"
	"dropfour/internal/service/bot"
	"dropfour/internal/service/tournament"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	personalities := []bot.Personality{}
	for _, name := range cfg.Personalities {
		p, err := bot.ParsePersonality(name)
		if err != nil {
			log.Fatalf("Bad PERSONALITIES entry: %v", err)
		}
		personalities = append(personalities, p)
	}
	if len(personalities) == 0 {
		personalities = bot.AllPersonalities()
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open result store: %v", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := tournament.NewRunner(tournament.Options{
		Personalities:   personalities,
		GamesPerPairing: cfg.GamesPerPairing,
		Rows:            cfg.BoardRows,
		Cols:            cfg.BoardCols,
		WinLength:       cfg.WinLength,
		Seed:            cfg.Seed,
	}, store)

	log.Printf("Running round-robin: %d personalities, %d games per pairing, %dx%d board",
		len(personalities), cfg.GamesPerPairing, cfg.BoardRows, cfg.BoardCols)

	standings, err := runner.Run(ctx)
	if err != nil {
		log.Printf("Tournament stopped early: %v", err)
	}

	log.Println("Final standings:")
	for i, s := range standings {
		log.Printf("%d. %-16s elo=%d  W/L/D %d/%d/%d (%d games)",
			i+1, s.Personality, s.Elo, s.Wins, s.Losses, s.Draws, s.Games)
	}
}
