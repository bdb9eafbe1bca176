// Package scheduler drives one level's subsystems on their own cadences
// from a single caller-owned loop.
package scheduler

import (
	"time"

	engineinput "mazeraid/pkg/engine/input"
	"mazeraid/pkg/game/gameplay"
	"mazeraid/pkg/game/state"
)

// Listener receives the terminal signals of a level
type Listener interface {
	LevelComplete(level int)
	GameOver(level int)
}

// Cadence names, in the order they run within one step
const (
	CadenceBullets = "bullets"
	CadenceEnemies = "enemies"
	CadenceThreat  = "threat"
	CadenceBombs   = "bombs"
)

// cadence is one fixed-interval update cycle
type cadence struct {
	name     string
	interval time.Duration
	next     time.Time // Next deadline for drift correction
	run      func(now time.Time)
	ticks    int
}

// Scheduler advances a level in discrete steps. Each Step sweeps expired
// markers, applies input, then runs every cadence tick whose deadline has passed.
// All work happens on the caller's goroutine.
type Scheduler struct {
	game     *state.Game
	listener Listener

	cadences []*cadence

	held     *engineinput.HeldKeys
	throttle *engineinput.MoveThrottle
	presses  []engineinput.Action

	stopped bool
}

// New creates a scheduler for g whose first deadlines fall one interval after start
func New(g *state.Game, listener Listener, start time.Time) *Scheduler {
	s := &Scheduler{
		game:     g,
		listener: listener,
		held:     engineinput.NewHeldKeys(),
		throttle: engineinput.NewMoveThrottle(g.Rules.MoveDelay),
	}

	s.cadences = []*cadence{
		{name: CadenceBullets, interval: g.Rules.BulletInterval, run: func(now time.Time) { gameplay.UpdateBullets(g, now) }},
		{name: CadenceEnemies, interval: g.Rules.EnemyInterval, run: func(time.Time) { gameplay.MoveEnemies(g) }},
		{name: CadenceThreat, interval: g.Rules.ThreatInterval, run: func(now time.Time) { gameplay.CheckThreat(g, now) }},
		{name: CadenceBombs, interval: g.Rules.BombInterval, run: func(now time.Time) { gameplay.TickBombs(g, now) }},
	}
	for _, c := range s.cadences {
		c.next = start.Add(c.interval)
	}

	return s
}

// Game returns the level being driven
func (s *Scheduler) Game() *state.Game {
	return s.game
}

// Held returns the held-key state sampled every step
func (s *Scheduler) Held() *engineinput.HeldKeys {
	return s.held
}

// Press queues a one-shot action for the next step
func (s *Scheduler) Press(a engineinput.Action) {
	if s.stopped {
		return
	}
	s.presses = append(s.presses, a)
}

// Stop suspends all cadences and input sampling for good
func (s *Scheduler) Stop() {
	s.stopped = true
	s.presses = nil
	s.held.Clear()
}

// Stopped reports whether the scheduler has been stopped
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Ticks returns how many times the named cadence has run
func (s *Scheduler) Ticks(name string) int {
	for _, c := range s.cadences {
		if c.name == name {
			return c.ticks
		}
	}
	return 0
}

// Step advances the level to now
func (s *Scheduler) Step(now time.Time) {
	if s.stopped {
		return
	}
	g := s.game

	gameplay.SweepMarkers(g, now)

	// One-shot presses
	presses := s.presses
	s.presses = nil
	for _, a := range presses {
		if _, isMove := a.Direction(); isMove && !s.throttle.Allow(now) {
			continue
		}
		gameplay.ProcessIntent(g, engineinput.Intent{Action: a})
	}

	// Held movement, throttled
	if dir, ok := s.held.Direction(); ok && s.throttle.Allow(now) {
		gameplay.MovePlayer(g, dir)
	}

	// Frames longer than an interval run the missed ticks; a cadence more
	// than two intervals behind resyncs instead of bursting.
	for _, c := range s.cadences {
		for !g.Over() && !now.Before(c.next) {
			c.run(now)
			c.ticks++

			c.next = c.next.Add(c.interval)
			maxBehind := c.interval * 2
			if now.Sub(c.next) > maxBehind {
				c.next = now.Add(c.interval)
			}
		}
	}

	s.dispatch()
}

// dispatch delivers queued signals and stops on the first terminal one
func (s *Scheduler) dispatch() {
	for _, ev := range s.game.DrainEvents() {
		switch ev {
		case state.EventLevelComplete:
			if s.listener != nil {
				s.listener.LevelComplete(s.game.Level)
			}
		case state.EventGameOver:
			if s.listener != nil {
				s.listener.GameOver(s.game.Level)
			}
		}
		s.Stop()
	}
}
