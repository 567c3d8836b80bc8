// Package game is the boundary the engine exposes to its callers: UIs, hint
// layers and test harnesses construct a Session, commit moves against it and
// ask the bot for replies. Nothing outside this package and the domain
// package can mutate a running game.
package game

import (
	"dropfour/internal/domain"
	"dropfour/internal/service/bot"
	"dropfour/pkg/uid"
)

// Session owns one game and the engine answering for the bot side.
type Session struct {
	ID     string
	game   *domain.Game
	engine *bot.Engine
}

func NewSession(rows, cols, winLen int) *Session {
	return &Session{
		ID:     uid.NewSessionID(),
		game:   domain.NewGame(rows, cols, winLen),
		engine: bot.NewEngine(),
	}
}

func NewDefaultSession() *Session {
	return NewSession(domain.DefaultRows, domain.DefaultColumns, domain.DefaultWinLength)
}

// NewSeededSession pins the engine's random source; used by tournaments and
// tests that need reproducible Easy play.
func NewSeededSession(rows, cols, winLen int, seed int64) *Session {
	s := NewSession(rows, cols, winLen)
	s.engine = bot.NewEngineSeeded(seed)
	return s
}

// Commit plays a move for whoever's turn it is.
func (s *Session) Commit(col int) (domain.MoveOutcome, error) {
	return s.game.Commit(col)
}

func (s *Session) Undo() error {
	return s.game.Undo()
}

// BotMove asks the engine for the current player's move without committing
// it. ok is false on a finished game.
func (s *Session) BotMove(personality bot.Personality) (int, bool) {
	return s.engine.BestMove(s.game, personality)
}

// PlayBot picks and commits the bot's move in one step.
func (s *Session) PlayBot(personality bot.Personality) (domain.MoveOutcome, error) {
	col, ok := s.engine.BestMove(s.game, personality)
	if !ok {
		return domain.MoveOutcome{}, domain.ErrGameOver
	}
	return s.game.Commit(col)
}

func (s *Session) ValidMoves() []int {
	return s.game.ValidMoves()
}

// Board returns a snapshot the caller may freely inspect or mutate.
func (s *Session) Board() domain.Board {
	return s.game.BoardSnapshot()
}

func (s *Session) CurrentPlayer() domain.Cell {
	return s.game.CurrentPlayer()
}

func (s *Session) IsTerminal() bool {
	return s.game.IsTerminal()
}

func (s *Session) Winner() (domain.Cell, bool) {
	return s.game.Winner()
}

func (s *Session) WinningLine() []domain.Coord {
	return s.game.WinningLine()
}

func (s *Session) MoveCount() int {
	return s.game.MoveCount()
}

func (s *Session) History() []domain.MoveRecord {
	return s.game.History()
}
