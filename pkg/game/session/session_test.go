package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"mazeraid/pkg/engine/clock"
	engineinput "mazeraid/pkg/engine/input"
	"mazeraid/pkg/engine/world"
	"mazeraid/pkg/game/config"
	"mazeraid/pkg/game/levels"
	"mazeraid/pkg/game/snapshot"
)

const testPack = `levels:
  - name: One
    enemies: 1
    map: |
      #####
      #E X#
      #####
  - name: Two
    enemies: 1
    map: |
      ######
      #E  X#
      ######
`

var t0 = time.Unix(1_700_000_000, 0)

func newSession(t *testing.T, endless bool) *Session {
	t.Helper()
	pack, err := levels.Parse([]byte(testPack))
	if err != nil {
		t.Fatalf("levels.Parse: %v", err)
	}
	rules := config.Default()
	rules.EnemyInterval = time.Hour // keep the enemy where it was placed

	s, err := New(Options{Rules: rules, Pack: pack, Endless: endless, Seed: 1}, t0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// walkToExit moves right until the level ends, returning the time reached
func walkToExit(t *testing.T, s *Session, now time.Time) time.Time {
	t.Helper()
	for i := 0; i < 10 && s.Phase() == PhasePlaying; i++ {
		now = now.Add(200 * time.Millisecond)
		if err := s.Press(engineinput.ActionMoveEast, now); err != nil {
			t.Fatalf("Press: %v", err)
		}
		if err := s.Step(now); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	return now
}

func TestSession_LevelCompleteThenPause(t *testing.T) {
	s := newSession(t, false)
	now := walkToExit(t, s, t0)

	if s.Phase() != PhaseLevelComplete {
		t.Fatalf("Phase() = %v, want level-complete", s.Phase())
	}
	if s.Snapshot().Phase != "level-complete" {
		t.Errorf("snapshot phase = %q", s.Snapshot().Phase)
	}

	// Still on the result screen before the pause ends
	if err := s.Step(now.Add(2 * time.Second)); err != nil {
		t.Fatal(err)
	}
	if s.Level() != 0 {
		t.Fatalf("advanced early to level %d", s.Level())
	}

	if err := s.Step(now.Add(3 * time.Second)); err != nil {
		t.Fatal(err)
	}
	if s.Level() != 1 || s.Phase() != PhasePlaying {
		t.Errorf("Level, Phase = %d, %v, want 1, playing", s.Level(), s.Phase())
	}
	if s.Game().Player.Pos != world.Pt(1, 1) || s.Game().Player.HP != 100 {
		t.Errorf("new level player = %+v", s.Game().Player)
	}
}

func TestSession_ConfirmAdvancesAndFinalFinishes(t *testing.T) {
	s := newSession(t, false)
	now := walkToExit(t, s, t0)

	if err := s.Press(engineinput.ActionConfirm, now); err != nil {
		t.Fatal(err)
	}
	if s.Level() != 1 {
		t.Fatalf("Level() = %d after confirm, want 1", s.Level())
	}

	now = walkToExit(t, s, now)
	if s.Phase() != PhaseFinished {
		t.Fatalf("Phase() = %v after final level, want finished", s.Phase())
	}

	// Nothing advances on its own from the finish screen
	s.Step(now.Add(time.Minute))
	if s.Phase() != PhaseFinished {
		t.Errorf("Phase() = %v, want finished to stay", s.Phase())
	}

	if err := s.Press(engineinput.ActionConfirm, now); err != nil {
		t.Fatal(err)
	}
	if s.Level() != 0 || s.Phase() != PhasePlaying {
		t.Errorf("after play again: Level, Phase = %d, %v", s.Level(), s.Phase())
	}
}

func TestSession_GameOverRestarts(t *testing.T) {
	s := newSession(t, false)
	g := s.Game()
	g.Player.HP = 10
	if len(g.Enemies) != 1 || g.Enemies[0].Pos != world.Pt(2, 1) {
		t.Fatalf("enemies = %+v, want one at (2,1)", g.Enemies)
	}

	now := t0
	for i := 0; i < 10; i++ {
		now = now.Add(100 * time.Millisecond)
		s.Step(now)
	}
	if s.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, want game-over", s.Phase())
	}
	if !s.Snapshot().GameOver {
		t.Error("snapshot does not report game over")
	}

	msgs := s.Snapshot().Messages
	if len(msgs) == 0 || msgs[len(msgs)-1] != "You lost" {
		t.Errorf("last message = %v, want \"You lost\"", msgs)
	}

	// Movement is ignored on the game-over screen
	s.Press(engineinput.ActionMoveEast, now)
	s.Step(now.Add(time.Second))
	if s.Game().Player.Pos != world.Pt(1, 1) {
		t.Errorf("player moved after game over")
	}

	if err := s.Press(engineinput.ActionConfirm, now); err != nil {
		t.Fatal(err)
	}
	if s.Phase() != PhasePlaying || s.Game().Player.HP != 100 || s.Level() != 0 {
		t.Errorf("after restart: phase %v hp %d level %d", s.Phase(), s.Game().Player.HP, s.Level())
	}
}

func TestSession_Quit(t *testing.T) {
	s := newSession(t, false)
	s.HandleInput(engineinput.RawInput{Code: "q"}, t0)
	if !s.Done() {
		t.Error("Done() = false after q")
	}
}

func TestSession_BombPlacedWhileAnotherExplodes(t *testing.T) {
	pack, err := levels.Parse([]byte(testPack))
	if err != nil {
		t.Fatalf("levels.Parse: %v", err)
	}
	rules := config.Default()
	rules.EnemyInterval = time.Hour
	rules.ThreatInterval = time.Hour
	rules.BombCountdown = 2
	rules.BlastRadius = 0
	s, err := New(Options{Rules: rules, Pack: pack, Seed: 1}, t0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.Press(engineinput.ActionPlaceBomb, t0)
	s.Step(t0.Add(100 * time.Millisecond))
	s.Step(t0.Add(time.Second))

	// The first bomb goes off on the same step the second one lands
	s.Press(engineinput.ActionPlaceBomb, t0.Add(2*time.Second))
	s.Step(t0.Add(2 * time.Second))

	g := s.Game()
	if g.BombsPlaced != 2 || len(g.Bombs) != 1 {
		t.Fatalf("placed %d, live %d, want 2 placed and 1 live", g.BombsPlaced, len(g.Bombs))
	}
	placed := 0
	for _, m := range s.Snapshot().Messages {
		if m == "Bomb placed: DANGER{2}" {
			placed++
		}
	}
	if placed != 2 {
		t.Errorf("bomb placed lines = %d, want 2 in %v", placed, s.Snapshot().Messages)
	}
}

func TestSession_BeginRestartsClock(t *testing.T) {
	s := newSession(t, false)
	g := s.Game()
	g.Player.HP = 10

	// A minute on the start menu must not count as play
	start := t0.Add(time.Minute)
	s.Begin(start)
	s.Step(start.Add(500 * time.Millisecond))
	if s.Phase() != PhasePlaying || g.Player.HP != 10 {
		t.Fatalf("phase %v hp %d half a second after Begin, want playing on 10", s.Phase(), g.Player.HP)
	}

	s.Step(start.Add(time.Second))
	if s.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v one second after Begin, want game-over from the adjacent enemy", s.Phase())
	}
}

func TestSession_Endless(t *testing.T) {
	s := newSession(t, true)
	now := walkToExit(t, s, t0)
	s.Press(engineinput.ActionConfirm, now)
	now = walkToExit(t, s, now)

	if s.Phase() != PhaseLevelComplete {
		t.Fatalf("Phase() = %v, want level-complete (endless never finishes)", s.Phase())
	}
	if err := s.Press(engineinput.ActionConfirm, now); err != nil {
		t.Fatalf("advance past the pack: %v", err)
	}
	if s.Level() != 2 {
		t.Errorf("Level() = %d, want 2", s.Level())
	}
	if !strings.HasPrefix(s.Game().LevelName, "Line Walker") {
		t.Errorf("LevelName = %q, want a generated level", s.Game().LevelName)
	}
	if got, want := len(s.Game().Enemies), 15; got != want {
		t.Errorf("enemies = %d, want %d", got, want)
	}
}

func TestSession_PastPackWithoutEndless(t *testing.T) {
	pack, _ := levels.Parse([]byte(testPack))
	_, err := New(Options{Rules: config.Default(), Pack: pack, StartLevel: 5}, t0)
	if err == nil {
		t.Error("New past the end of the pack returned nil error")
	}
}

func TestRun_QuitsOnKey(t *testing.T) {
	s := newSession(t, false)
	events := make(chan engineinput.RawInput, 1)
	events <- engineinput.RawInput{Code: "q"}

	frames := 0
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.Run(ctx, clock.Real{}, events, func(snapshot.Snapshot) { frames++ })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if frames == 0 {
		t.Error("render never called")
	}
	if !s.Done() {
		t.Error("session not done after quit")
	}
}
