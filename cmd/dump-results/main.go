// dump-results prints the contents of an arena result database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"dropfour/internal/repository/sqlite"
)

func main() {
	dbPath := flag.String("db", "data/arena.db", "path to the result database")
	flag.Parse()

	store, err := sqlite.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *dbPath, err)
	}
	defer store.Close()

	ctx := context.Background()

	matches, err := store.ListMatches(ctx)
	if err != nil {
		log.Fatalf("Failed to list matches: %v", err)
	}

	for _, m := range matches {
		winner := m.Winner
		if winner == "" {
			winner = "draw"
		}
		fmt.Printf("%s  %s  %s vs %s  -> %s (%d moves, %s)\n",
			m.PlayedAt.Format("2006-01-02 15:04:05"), m.ID,
			m.PersonalityA, m.PersonalityB, winner, m.Moves, m.Duration)
	}

	counts, err := store.WinCounts(ctx)
	if err != nil {
		log.Fatalf("Failed to tally wins: %v", err)
	}

	fmt.Printf("\n%d matches total\n", len(matches))
	for name, n := range counts {
		fmt.Printf("%-16s %d wins\n", name, n)
	}
}
