// Package session runs a sequence of levels: it starts each level, reacts to
// its terminal signals and moves between playing and the result screens.
package session

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	engineinput "mazeraid/pkg/engine/input"
	"mazeraid/pkg/engine/world"
	"mazeraid/pkg/game/config"
	"mazeraid/pkg/game/gameplay"
	"mazeraid/pkg/game/generator"
	"mazeraid/pkg/game/i18n"
	"mazeraid/pkg/game/levels"
	"mazeraid/pkg/game/scheduler"
	"mazeraid/pkg/game/snapshot"
	"mazeraid/pkg/game/state"
)

// Phase is where the session is between levels
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLevelComplete
	PhaseGameOver
	PhaseFinished // Final level cleared
)

// String returns the phase name used in snapshots
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level-complete"
	case PhaseGameOver:
		return "game-over"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Options configures a session
type Options struct {
	Rules      config.Rules
	Pack       *levels.Pack
	Generator  generator.GridGenerator // Used past the end of the pack when Endless is set
	Endless    bool
	Seed       int64
	StartLevel int // 0-based
}

// Session owns the current level and its scheduler
type Session struct {
	opts Options
	rng  *rand.Rand

	phase Phase
	level int
	game  *state.Game
	sched *scheduler.Scheduler

	now        time.Time
	pauseUntil time.Time
	done       bool

	// Counters from the previous step, for message-log lines
	lastEnemies int
	lastHP      int
	lastPlaced  int
}

// New creates a session and starts its first level at now
func New(opts Options, now time.Time) (*Session, error) {
	if opts.Pack == nil {
		return nil, fmt.Errorf("session needs a level pack")
	}
	if opts.Endless && opts.Generator == nil {
		opts.Generator = generator.DefaultGenerator
	}

	s := &Session{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
		now:  now,
	}
	if err := s.startLevel(opts.StartLevel, now); err != nil {
		return nil, err
	}
	return s, nil
}

// startLevel builds level index and a fresh scheduler for it
func (s *Session) startLevel(index int, now time.Time) error {
	grid, name, err := s.levelGrid(index)
	if err != nil {
		return err
	}

	g, err := gameplay.BuildGame(grid, s.opts.Rules, s.rng, index, name, s.opts.Pack.EnemyCount(index, s.opts.Rules))
	if err != nil {
		return fmt.Errorf("start level %d: %w", index+1, err)
	}

	if index == s.opts.StartLevel {
		g.AddMessage(i18n.T("WELCOME"))
	}
	g.AddMessage(i18n.T("LEVEL_START", index+1, name))

	s.level = index
	s.game = g
	s.sched = scheduler.New(g, s, now)
	s.phase = PhasePlaying
	s.lastEnemies = len(g.Enemies)
	s.lastHP = g.Player.HP
	s.lastPlaced = 0
	return nil
}

// levelGrid returns the terrain for a level, from the pack or the generator
func (s *Session) levelGrid(index int) (*world.Grid, string, error) {
	if l, ok := s.opts.Pack.Level(index); ok {
		return l.Grid(), l.Name, nil
	}
	if !s.opts.Endless {
		return nil, "", fmt.Errorf("level %d is past the end of the pack (%d levels)", index+1, s.opts.Pack.Len())
	}

	grid, err := s.opts.Generator.Generate(index, s.rng)
	if err != nil {
		return nil, "", fmt.Errorf("generate level %d: %w", index+1, err)
	}
	return grid, fmt.Sprintf("%s %d", s.opts.Generator.Name(), index+1), nil
}

// isFinal reports whether clearing the current level ends the game
func (s *Session) isFinal() bool {
	return !s.opts.Endless && s.opts.Pack.IsFinal(s.level)
}

// LevelComplete is called by the scheduler when the player reaches the exit
func (s *Session) LevelComplete(level int) {
	log.Printf("level %d complete (session %s)", level+1, s.game.SessionID)
	if s.isFinal() {
		s.phase = PhaseFinished
		return
	}
	s.phase = PhaseLevelComplete
	s.pauseUntil = s.now.Add(s.opts.Rules.LevelPause)
}

// GameOver is called by the scheduler when the player dies
func (s *Session) GameOver(level int) {
	log.Printf("game over on level %d (session %s)", level+1, s.game.SessionID)
	s.phase = PhaseGameOver
}

// Step advances the session to now
func (s *Session) Step(now time.Time) error {
	s.now = now
	if s.done {
		return nil
	}

	switch s.phase {
	case PhasePlaying:
		s.sched.Step(now)
		s.logChanges()
		s.announce()
	case PhaseLevelComplete:
		if !now.Before(s.pauseUntil) {
			return s.advance(now)
		}
	}
	return nil
}

// logChanges turns what happened during a step into message-log lines
func (s *Session) logChanges() {
	g := s.game
	if n := len(g.Enemies); n < s.lastEnemies {
		for i := n; i < s.lastEnemies; i++ {
			g.AddMessage(i18n.T("ENEMY_DOWN"))
		}
	}
	if g.Player.HP < s.lastHP {
		g.AddMessage(i18n.T("HURT", s.lastHP-g.Player.HP))
	}
	for i := s.lastPlaced; i < g.BombsPlaced; i++ {
		g.AddMessage(i18n.T("BOMB_PLACED", g.Rules.BombCountdown))
	}
	s.lastEnemies = len(g.Enemies)
	s.lastHP = g.Player.HP
	s.lastPlaced = g.BombsPlaced
}

// announce logs the result of a level that ended this step
func (s *Session) announce() {
	switch s.phase {
	case PhaseLevelComplete:
		s.game.AddMessage(i18n.T("LEVEL_COMPLETE"))
	case PhaseFinished:
		s.game.AddMessage(i18n.T("GAME_COMPLETE"))
	case PhaseGameOver:
		s.game.AddMessage(i18n.T("GAME_OVER"))
	}
}

// advance moves on to the next level
func (s *Session) advance(now time.Time) error {
	next, ok := s.opts.Pack.Next(s.level)
	if !ok {
		next = s.level + 1
	}
	return s.startLevel(next, now)
}

// Begin restarts the level clock at now, so time spent before play (on
// the start menu) does not count against the first level
func (s *Session) Begin(now time.Time) {
	s.now = now
	if s.phase == PhasePlaying && !s.done {
		s.sched = scheduler.New(s.game, s, now)
	}
}

// Press handles a one-shot action
func (s *Session) Press(a engineinput.Action, now time.Time) error {
	s.now = now
	if s.done {
		return nil
	}
	if a == engineinput.ActionQuit {
		s.Quit()
		return nil
	}

	switch s.phase {
	case PhasePlaying:
		if a != engineinput.ActionConfirm {
			s.sched.Press(a)
		}
	case PhaseLevelComplete:
		if a == engineinput.ActionConfirm {
			return s.advance(now)
		}
	case PhaseGameOver, PhaseFinished:
		if a == engineinput.ActionConfirm {
			return s.startLevel(0, now)
		}
	}
	return nil
}

// HandleInput maps a raw device event and presses the resulting action
func (s *Session) HandleInput(raw engineinput.RawInput, now time.Time) error {
	ev := engineinput.NewDebouncedInput(raw)
	if ev.Released {
		return nil
	}
	intent := engineinput.MapToIntent(ev)
	if intent.Action == engineinput.ActionNone {
		return nil
	}
	return s.Press(intent.Action, now)
}

// Held returns the held-key state of the current level
func (s *Session) Held() *engineinput.HeldKeys {
	return s.sched.Held()
}

// Quit ends the session
func (s *Session) Quit() {
	if s.sched != nil {
		s.sched.Stop()
	}
	s.done = true
}

// Done reports whether the player has quit
func (s *Session) Done() bool {
	return s.done
}

// Phase returns the current phase
func (s *Session) Phase() Phase {
	return s.phase
}

// Level returns the 0-based index of the current level
func (s *Session) Level() int {
	return s.level
}

// Game returns the current level's state
func (s *Session) Game() *state.Game {
	return s.game
}

// Snapshot captures the current level for display
func (s *Session) Snapshot() snapshot.Snapshot {
	snap := snapshot.Capture(s.game)
	snap.Phase = s.phase.String()
	return snap
}
