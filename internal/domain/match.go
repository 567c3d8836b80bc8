package domain

import "time"

// MatchResult is one finished self-play game as recorded by the tournament
// runner. PersonalityA moved first.
type MatchResult struct {
	ID           string
	PlayedAt     time.Time
	PersonalityA string
	PersonalityB string
	Winner       string // winning personality name, empty on a draw
	Moves        int
	Duration     time.Duration
}
