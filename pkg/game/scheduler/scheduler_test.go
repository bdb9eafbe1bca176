package scheduler

import (
	"testing"
	"time"

	"mazeraid/pkg/engine/clock"
	engineinput "mazeraid/pkg/engine/input"
	"mazeraid/pkg/engine/world"
	"mazeraid/pkg/game/config"
	"mazeraid/pkg/game/entities"
	"mazeraid/pkg/game/gameplay"
	"mazeraid/pkg/game/state"
)

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

type recorder struct {
	complete []int
	over     []int
}

func (r *recorder) LevelComplete(level int) { r.complete = append(r.complete, level) }
func (r *recorder) GameOver(level int)      { r.over = append(r.over, level) }

var start = time.Unix(1_700_000_000, 0)

func newScheduler(t *testing.T, rows ...string) (*Scheduler, *state.Game, *recorder, *clock.Manual) {
	t.Helper()
	grid, err := world.NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g, err := gameplay.BuildGame(grid, config.Default(), zeroRand{}, 0, "test", 0)
	if err != nil {
		t.Fatalf("BuildGame: %v", err)
	}
	rec := &recorder{}
	return New(g, rec, start), g, rec, clock.NewManual(start)
}

var corridor = []string{
	"############",
	"#E        X#",
	"############",
}

func TestStep_Cadences(t *testing.T) {
	s, _, _, clk := newScheduler(t, corridor...)

	for i := 0; i < 20; i++ {
		s.Step(clk.Advance(100 * time.Millisecond))
	}

	want := map[string]int{
		CadenceBullets: 20,
		CadenceEnemies: 4,
		CadenceThreat:  2,
		CadenceBombs:   2,
	}
	for name, n := range want {
		if got := s.Ticks(name); got != n {
			t.Errorf("Ticks(%s) = %d, want %d", name, got, n)
		}
	}
}

func TestStep_DriftResync(t *testing.T) {
	s, _, _, clk := newScheduler(t, corridor...)

	// A long stall runs each due cadence once, then resumes on the new schedule
	s.Step(clk.Advance(time.Second))
	if got := s.Ticks(CadenceBullets); got != 1 {
		t.Fatalf("bullet ticks after stall = %d, want 1", got)
	}
	s.Step(clk.Advance(50 * time.Millisecond))
	if got := s.Ticks(CadenceBullets); got != 1 {
		t.Errorf("bullet ticks 50ms after resync = %d, want 1", got)
	}
	s.Step(clk.Advance(50 * time.Millisecond))
	if got := s.Ticks(CadenceBullets); got != 2 {
		t.Errorf("bullet ticks 100ms after resync = %d, want 2", got)
	}
}

func TestStep_HeldMoveThrottled(t *testing.T) {
	s, g, _, clk := newScheduler(t, corridor...)
	s.Held().Press(engineinput.ActionMoveEast)

	// 19 frames at 16ms span 304ms: moves at 16ms and 176ms
	for i := 0; i < 19; i++ {
		s.Step(clk.Advance(16 * time.Millisecond))
	}
	if g.Player.Pos != world.Pt(3, 1) {
		t.Errorf("player at %v, want (3,1) after two throttled moves", g.Player.Pos)
	}
}

func TestStep_PressFireHitsWallAndSweeps(t *testing.T) {
	s, g, _, clk := newScheduler(t, corridor...)
	g.Player.Facing = world.West
	s.Press(engineinput.ActionFire)

	s.Step(clk.Advance(100 * time.Millisecond))
	if n := len(g.MarkersOf(entities.MarkerWallHit)); n != 1 {
		t.Fatalf("wall hits = %d, want 1", n)
	}

	s.Step(clk.Advance(299 * time.Millisecond))
	if n := len(g.MarkersOf(entities.MarkerWallHit)); n != 1 {
		t.Errorf("wall hit swept early")
	}
	s.Step(clk.Advance(time.Millisecond))
	if n := len(g.MarkersOf(entities.MarkerWallHit)); n != 0 {
		t.Errorf("wall hits after 300ms = %d, want 0", n)
	}
}

func TestStep_LevelCompleteStops(t *testing.T) {
	s, _, rec, clk := newScheduler(t,
		"####",
		"#EX#",
		"####",
	)
	s.Press(engineinput.ActionMoveEast)
	s.Step(clk.Advance(16 * time.Millisecond))

	if len(rec.complete) != 1 || rec.complete[0] != 0 {
		t.Fatalf("LevelComplete calls = %v, want [0]", rec.complete)
	}
	if !s.Stopped() {
		t.Error("scheduler still running after level complete")
	}

	ticks := s.Ticks(CadenceBullets)
	for i := 0; i < 10; i++ {
		s.Step(clk.Advance(100 * time.Millisecond))
	}
	if s.Ticks(CadenceBullets) != ticks || len(rec.complete) != 1 {
		t.Error("scheduler kept running after level complete")
	}
}

func TestStep_GameOverStops(t *testing.T) {
	s, g, rec, clk := newScheduler(t, corridor...)
	g.Player.HP = 10
	g.AddEnemy(world.Pt(2, 1)) // always rolls up into the wall

	for i := 0; i < 30; i++ {
		s.Step(clk.Advance(100 * time.Millisecond))
	}

	if len(rec.over) != 1 {
		t.Fatalf("GameOver calls = %d, want 1", len(rec.over))
	}
	if g.Player.HP != 0 {
		t.Errorf("hp = %d, want 0 after a single threat tick", g.Player.HP)
	}
	if got := s.Ticks(CadenceThreat); got != 1 {
		t.Errorf("threat ticks = %d, want 1 (stopped at game over)", got)
	}
	if !s.Stopped() {
		t.Error("scheduler still running after game over")
	}

	s.Press(engineinput.ActionFire)
	s.Step(clk.Advance(100 * time.Millisecond))
	if len(g.Bullets) != 0 {
		t.Error("press accepted after game over")
	}
}

func TestStep_SlowFramesKeepCadence(t *testing.T) {
	rules := config.Default()
	rules.FrameInterval = 250 * time.Millisecond
	if err := rules.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	s, _, _, clk := newScheduler(t, corridor...)

	// 40 frames of 250ms span 10s
	for i := 0; i < 40; i++ {
		s.Step(clk.Advance(rules.FrameInterval))
	}

	want := map[string]int{
		CadenceBullets: 100,
		CadenceEnemies: 20,
		CadenceThreat:  10,
		CadenceBombs:   10,
	}
	for name, n := range want {
		if got := s.Ticks(name); got != n {
			t.Errorf("Ticks(%s) = %d, want %d", name, got, n)
		}
	}
}
