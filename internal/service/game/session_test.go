package game

import (
	"errors"
	"testing"

	"dropfour/internal/domain"
	"dropfour/internal/service/bot"
)

func TestSessionCommitAndUndo(t *testing.T) {
	s := NewDefaultSession()
	if s.ID == "" {
		t.Fatal("session needs an id")
	}

	outcome, err := s.Commit(3)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if outcome.Player != domain.PlayerA || outcome.Row != 5 {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if s.CurrentPlayer() != domain.PlayerB {
		t.Fatalf("expected PlayerB on turn, got %v", s.CurrentPlayer())
	}

	if err := s.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if s.MoveCount() != 0 {
		t.Fatalf("expected empty history after undo, got %d", s.MoveCount())
	}
	if err := s.Undo(); !errors.Is(err, domain.ErrNoMovesToUndo) {
		t.Fatalf("expected ErrNoMovesToUndo, got %v", err)
	}
}

func TestPlayBotCommits(t *testing.T) {
	s := NewSeededSession(6, 7, 4, 11)

	outcome, err := s.PlayBot(bot.SmartRandom)
	if err != nil {
		t.Fatalf("play bot: %v", err)
	}
	if outcome.Col != 3 {
		t.Fatalf("expected opening in the center, got %+v", outcome)
	}
	if s.MoveCount() != 1 {
		t.Fatalf("expected one committed move, got %d", s.MoveCount())
	}
	if s.CurrentPlayer() != domain.PlayerB {
		t.Fatalf("expected turn to pass, got %v", s.CurrentPlayer())
	}
}

func TestBotMoveDoesNotCommit(t *testing.T) {
	s := NewSeededSession(6, 7, 4, 11)

	col, ok := s.BotMove(bot.EnhancedSmart)
	if !ok || col != 3 {
		t.Fatalf("expected center suggestion, got %d ok=%v", col, ok)
	}
	if s.MoveCount() != 0 {
		t.Fatal("BotMove must not mutate the game")
	}
}

func TestPlayBotOnFinishedGame(t *testing.T) {
	s := NewDefaultSession()
	for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
		if _, err := s.Commit(col); err != nil {
			t.Fatalf("commit %d: %v", col, err)
		}
	}
	if !s.IsTerminal() {
		t.Fatal("expected terminal session")
	}
	if _, err := s.PlayBot(bot.Easy); !errors.Is(err, domain.ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestHintsFlagWinAndBlock(t *testing.T) {
	s := NewDefaultSession()
	// first player has an open three on the bottom row, second player a
	// vertical three in column 0; second player to move
	for _, col := range []int{1, 0, 2, 0, 3, 0, 6} {
		if _, err := s.Commit(col); err != nil {
			t.Fatalf("commit %d: %v", col, err)
		}
	}

	hints := s.Hints()
	byColumn := map[int]Hint{}
	for _, h := range hints {
		byColumn[h.Column] = h
	}

	if h := byColumn[4]; !h.BlocksLoss {
		t.Fatalf("column 4 closes the open three, got %+v", h)
	}
	if h := byColumn[0]; !h.WinsNow {
		t.Fatalf("column 0 completes the vertical four, got %+v", h)
	}
	if h := byColumn[6]; !h.Unsafe {
		t.Fatalf("column 6 concedes next turn, got %+v", h)
	}
}

func TestHintsAreReadOnly(t *testing.T) {
	s := NewDefaultSession()
	for _, col := range []int{3, 2, 4} {
		if _, err := s.Commit(col); err != nil {
			t.Fatalf("commit %d: %v", col, err)
		}
	}

	board := s.Board().String()
	player := s.CurrentPlayer()
	moves := s.MoveCount()

	for i := 0; i < 100; i++ {
		s.Hints()
		s.ForkChances()
		s.ParityOutlook()
	}

	if s.Board().String() != board {
		t.Fatal("hints mutated the board")
	}
	if s.CurrentPlayer() != player || s.MoveCount() != moves {
		t.Fatal("hints mutated the session")
	}
}

func TestHintsOnTerminalGame(t *testing.T) {
	s := NewDefaultSession()
	for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
		if _, err := s.Commit(col); err != nil {
			t.Fatalf("commit %d: %v", col, err)
		}
	}
	if got := s.Hints(); len(got) != 0 {
		t.Fatalf("expected no hints on a finished game, got %v", got)
	}
}
