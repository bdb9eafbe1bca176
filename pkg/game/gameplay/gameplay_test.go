package gameplay

import (
	"testing"
	"time"

	engineinput "mazeraid/pkg/engine/input"
	"mazeraid/pkg/engine/world"
	"mazeraid/pkg/game/config"
	"mazeraid/pkg/game/entities"
	"mazeraid/pkg/game/state"
)

var tenByTen = []string{
	"##########",
	"#E       #",
	"#        #",
	"#        #",
	"#        #",
	"#        #",
	"#        #",
	"#        #",
	"#       X#",
	"##########",
}

// scriptedRand replays a fixed sequence of choices, then repeats the last one
type scriptedRand struct {
	seq []int
	i   int
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.seq) == 0 {
		return 0
	}
	v := s.seq[s.i]
	if s.i < len(s.seq)-1 {
		s.i++
	}
	return v % n
}

var t0 = time.Unix(1_700_000_000, 0)

// newLevel builds a level from rows with no enemies placed
func newLevel(t *testing.T, rows ...string) *state.Game {
	t.Helper()
	grid, err := world.NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g, err := BuildGame(grid, config.Default(), &scriptedRand{}, 0, "test", 0)
	if err != nil {
		t.Fatalf("BuildGame: %v", err)
	}
	return g
}

func TestMovePlayer_WallOnlyTurns(t *testing.T) {
	g := newLevel(t, tenByTen...)

	for _, dir := range []world.Direction{world.North, world.West} {
		if MovePlayer(g, dir) {
			t.Errorf("MovePlayer(%v) into wall reported a move", dir)
		}
		if g.Player.Pos != world.Pt(1, 1) {
			t.Errorf("after MovePlayer(%v) into wall: pos = %v, want (1,1)", dir, g.Player.Pos)
		}
		if g.Player.Facing != dir {
			t.Errorf("after MovePlayer(%v) into wall: facing = %v, want %v", dir, g.Player.Facing, dir)
		}
	}

	if !MovePlayer(g, world.East) || g.Player.Pos != world.Pt(2, 1) {
		t.Errorf("MovePlayer(right) pos = %v, want (2,1)", g.Player.Pos)
	}
}

func TestMovePlayer_ExitSignalsOnce(t *testing.T) {
	g := newLevel(t, tenByTen...)

	path := []world.Direction{}
	for i := 0; i < 7; i++ {
		path = append(path, world.East)
	}
	for i := 0; i < 7; i++ {
		path = append(path, world.South)
	}

	for i, dir := range path {
		MovePlayer(g, dir)
		events := g.DrainEvents()
		last := i == len(path)-1
		if !last && len(events) != 0 {
			t.Fatalf("step %d at %v: got %v before reaching the exit", i, g.Player.Pos, events)
		}
		if last && (len(events) != 1 || events[0] != state.EventLevelComplete) {
			t.Fatalf("step onto exit: events = %v, want [level-complete]", events)
		}
	}

	if g.Player.Pos != world.Pt(8, 8) {
		t.Fatalf("player at %v, want exit (8,8)", g.Player.Pos)
	}

	// Nothing moves once the level is over, and the signal is not repeated
	MovePlayer(g, world.North)
	MovePlayer(g, world.South)
	if events := g.DrainEvents(); len(events) != 0 {
		t.Errorf("events after level complete = %v, want none", events)
	}
	if g.Player.Pos != world.Pt(8, 8) {
		t.Errorf("player moved after level complete to %v", g.Player.Pos)
	}
}

func TestMoveEnemies(t *testing.T) {
	g := newLevel(t,
		"#####",
		"#E X#",
		"#   #",
		"#####",
	)
	g.Rand = &scriptedRand{seq: []int{0, 3}} // up for the first enemy, right for the second
	g.AddEnemy(world.Pt(2, 2))
	g.AddEnemy(world.Pt(3, 2))

	MoveEnemies(g)

	if g.Enemies[0].Pos != world.Pt(2, 1) {
		t.Errorf("enemy 0 at %v, want (2,1) after moving up", g.Enemies[0].Pos)
	}
	if g.Enemies[1].Pos != world.Pt(3, 2) {
		t.Errorf("enemy 1 at %v, want (3,2) after bumping the wall", g.Enemies[1].Pos)
	}
}

func TestUpdateBullets_RangeAndWall(t *testing.T) {
	g := newLevel(t,
		"##############",
		"#E          X#",
		"##############",
	)
	Fire(g)
	if len(g.Bullets) != 1 || g.Bullets[0].Range != 10 {
		t.Fatalf("Bullets = %+v, want one bullet with range 10", g.Bullets)
	}

	prev := g.Bullets[0].Range
	for tick := 1; tick <= 10; tick++ {
		UpdateBullets(g, t0)
		if len(g.Bullets) == 0 {
			if tick != 10 {
				t.Fatalf("bullet gone after %d ticks, want 10", tick)
			}
			break
		}
		b := g.Bullets[0]
		if b.Range >= prev || b.Range <= 0 {
			t.Fatalf("tick %d: range = %d after %d", tick, b.Range, prev)
		}
		prev = b.Range
	}
	if len(g.Bullets) != 0 {
		t.Fatalf("bullet survived its range: %+v", g.Bullets)
	}
	if n := len(g.MarkersOf(entities.MarkerWallHit)); n != 0 {
		t.Errorf("wall hits = %d, want 0 for a bullet that ran out of range", n)
	}

	// Facing the wall: the first step sparks
	g.Player.Facing = world.West
	Fire(g)
	UpdateBullets(g, t0)
	hits := g.MarkersOf(entities.MarkerWallHit)
	if len(g.Bullets) != 0 || len(hits) != 1 || hits[0].Pos != world.Pt(0, 1) {
		t.Fatalf("bullets = %v, wall hits = %v, want none and one at (0,1)", g.Bullets, hits)
	}
	if hits[0].TTL != 300*time.Millisecond {
		t.Errorf("wall hit TTL = %v, want 300ms", hits[0].TTL)
	}
}

func TestUpdateBullets_EnemyRemovedOnce(t *testing.T) {
	g := newLevel(t, tenByTen...)
	id := g.AddEnemy(world.Pt(3, 1))

	// Two bullets converge on the enemy in the same tick
	g.Bullets = []entities.Bullet{
		entities.NewBullet(world.Pt(2, 1), world.East, 10),
		entities.NewBullet(world.Pt(3, 2), world.North, 10),
		entities.NewBullet(world.Pt(5, 5), world.South, 10),
	}
	UpdateBullets(g, t0)

	if len(g.Enemies) != 0 {
		t.Errorf("enemy %d survived: %+v", id, g.Enemies)
	}
	ghosts := g.MarkersOf(entities.MarkerGhost)
	if len(ghosts) != 1 || ghosts[0].Pos != world.Pt(3, 1) {
		t.Errorf("ghosts = %+v, want exactly one at (3,1)", ghosts)
	}
	if len(g.Bullets) != 1 || g.Bullets[0].Pos != world.Pt(5, 6) {
		t.Errorf("bullets = %+v, want only the stray bullet at (5,6)", g.Bullets)
	}

	UpdateBullets(g, t0)
	if n := len(g.MarkersOf(entities.MarkerGhost)); n != 1 {
		t.Errorf("ghosts after second tick = %d, want 1", n)
	}
}

func TestBlastZone(t *testing.T) {
	g := newLevel(t, tenByTen...)
	center := world.Pt(5, 5)
	zone := BlastZone(g.Grid, center, 5)

	in := make(map[world.Point]bool)
	for _, p := range zone {
		in[p] = true
		if center.Manhattan(p) > 5 {
			t.Errorf("zone holds %v at distance %d", p, center.Manhattan(p))
		}
		if !g.Grid.IsPassablePoint(p) {
			t.Errorf("zone holds impassable %v", p)
		}
	}
	g.Grid.ForEachTile(func(x, y int, tile world.Tile) {
		p := world.Pt(x, y)
		want := tile != world.TileWall && center.Manhattan(p) <= 5
		if in[p] != want {
			t.Errorf("zone contains %v = %v, want %v", p, in[p], want)
		}
	})
}

func TestPlaceBomb_PreviewMatchesDetonation(t *testing.T) {
	g := newLevel(t, tenByTen...)
	g.Player.Pos = world.Pt(5, 5)
	PlaceBomb(g)

	preview := DangerZone(g)
	want := BlastZone(g.Grid, world.Pt(5, 5), 5)
	if len(preview) != len(want) {
		t.Fatalf("danger zone has %d tiles, want %d", len(preview), len(want))
	}

	// The player leaves; the bomb stays where it was placed
	g.Player.Pos = world.Pt(1, 1)
	for i := 0; i < 5; i++ {
		TickBombs(g, t0)
	}

	explosions := g.MarkersOf(entities.MarkerExplosion)
	if len(explosions) != len(want) {
		t.Fatalf("explosion markers = %d, want %d", len(explosions), len(want))
	}
	for i, m := range explosions {
		if m.Pos != want[i] {
			t.Errorf("explosion %d at %v, want %v", i, m.Pos, want[i])
		}
	}
	if len(DangerZone(g)) != 0 {
		t.Error("danger zone still shown after detonation")
	}
}

func TestTickBombs_Scenario(t *testing.T) {
	g := newLevel(t, tenByTen...)
	g.Player.Pos = world.Pt(5, 5)
	PlaceBomb(g)
	g.Player.Pos = world.Pt(1, 1) // distance 8, out of the blast

	near := g.AddEnemy(world.Pt(1, 4))  // distance 5
	onTop := g.AddEnemy(world.Pt(5, 5)) // distance 0
	far := g.AddEnemy(world.Pt(1, 3))   // distance 6

	for tick := 1; tick <= 4; tick++ {
		TickBombs(g, t0)
		if len(g.Bombs) != 1 || g.Bombs[0].Countdown != 5-tick {
			t.Fatalf("tick %d: bombs = %+v, want one with countdown %d", tick, g.Bombs, 5-tick)
		}
		if len(g.Enemies) != 3 {
			t.Fatalf("tick %d: enemies removed before detonation", tick)
		}
	}

	TickBombs(g, t0)
	if len(g.Bombs) != 0 {
		t.Fatalf("bomb still live after 5 ticks: %+v", g.Bombs)
	}
	if len(g.Enemies) != 1 || g.Enemies[0].ID != far {
		t.Errorf("enemies = %+v, want only %d (distance 6); %d and %d should be gone", g.Enemies, far, near, onTop)
	}
	if g.Player.HP != 100 {
		t.Errorf("player hp = %d, want 100 outside the blast", g.Player.HP)
	}
}

func TestTickBombs_DamageStacks(t *testing.T) {
	g := newLevel(t, tenByTen...)
	g.Player.Pos = world.Pt(4, 4)
	PlaceBomb(g)
	PlaceBomb(g)

	for i := 0; i < 5; i++ {
		TickBombs(g, t0)
	}
	if g.Player.HP != 0 {
		t.Errorf("hp = %d, want 0 after two simultaneous blasts", g.Player.HP)
	}
	if !g.Player.Hurt {
		t.Error("player not marked hurt")
	}
	if events := g.DrainEvents(); len(events) != 1 || events[0] != state.EventGameOver {
		t.Errorf("events = %v, want one game-over", events)
	}
}

func TestCheckThreat(t *testing.T) {
	g := newLevel(t, tenByTen...)
	g.Player.Pos = world.Pt(5, 5)
	g.AddEnemy(world.Pt(4, 4))
	g.AddEnemy(world.Pt(5, 6))
	g.AddEnemy(world.Pt(6, 5))
	g.AddEnemy(world.Pt(7, 5)) // two tiles away

	CheckThreat(g, t0)
	if g.Player.HP != 70 {
		t.Errorf("hp = %d, want 70 after 3 adjacent enemies", g.Player.HP)
	}
	if !g.Player.Hurt {
		t.Error("player not marked hurt")
	}

	SweepMarkers(g, t0.Add(199*time.Millisecond))
	if !g.Player.Hurt {
		t.Error("hurt cleared before 200ms")
	}
	SweepMarkers(g, t0.Add(200*time.Millisecond))
	if g.Player.Hurt {
		t.Error("hurt still set after 200ms")
	}
}

func TestCheckThreat_NoEnemiesNoHurt(t *testing.T) {
	g := newLevel(t, tenByTen...)
	CheckThreat(g, t0)
	if g.Player.HP != 100 || g.Player.Hurt {
		t.Errorf("hp = %d hurt = %v, want 100 and false", g.Player.HP, g.Player.Hurt)
	}
}

func TestGameOver_FiresOnceAndFreezes(t *testing.T) {
	g := newLevel(t, tenByTen...)
	g.Player.Pos = world.Pt(5, 5)
	g.Player.HP = 10
	PlaceBomb(g)
	g.AddEnemy(world.Pt(5, 4))
	g.AddEnemy(world.Pt(1, 8))
	Fire(g)

	for i := 0; i < 5; i++ {
		TickBombs(g, t0)
	}
	if g.Player.HP > 0 || !g.GameOver {
		t.Fatalf("hp = %d gameOver = %v, want dead", g.Player.HP, g.GameOver)
	}
	if events := g.DrainEvents(); len(events) != 1 || events[0] != state.EventGameOver {
		t.Fatalf("events = %v, want one game-over", events)
	}

	hp := g.Player.HP
	enemies := append([]entities.Enemy(nil), g.Enemies...)
	bullets := append([]entities.Bullet(nil), g.Bullets...)

	CheckThreat(g, t0)
	MoveEnemies(g)
	UpdateBullets(g, t0)
	TickBombs(g, t0)
	Fire(g)
	PlaceBomb(g)
	MovePlayer(g, world.East)

	if g.Player.HP != hp || g.Player.Pos != world.Pt(5, 5) {
		t.Errorf("player changed after game over: hp %d pos %v", g.Player.HP, g.Player.Pos)
	}
	if len(g.Enemies) != len(enemies) || g.Enemies[0] != enemies[0] {
		t.Errorf("enemies changed after game over: %+v, was %+v", g.Enemies, enemies)
	}
	if len(g.Bullets) != len(bullets) || len(g.Bombs) != 0 {
		t.Errorf("bullets/bombs changed after game over: %+v %+v", g.Bullets, g.Bombs)
	}
	if events := g.DrainEvents(); len(events) != 0 {
		t.Errorf("events after game over = %v, want none", events)
	}
}

func TestProcessIntent(t *testing.T) {
	g := newLevel(t, tenByTen...)

	if !ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveSouth}) {
		t.Error("move not handled")
	}
	if g.Player.Pos != world.Pt(1, 2) {
		t.Errorf("pos = %v, want (1,2)", g.Player.Pos)
	}
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionFire})
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionPlaceBomb})
	if len(g.Bullets) != 1 || g.Bullets[0].Dir != world.South {
		t.Errorf("bullets = %+v, want one heading down", g.Bullets)
	}
	if len(g.Bombs) != 1 || g.Bombs[0].Pos != world.Pt(1, 2) {
		t.Errorf("bombs = %+v, want one at (1,2)", g.Bombs)
	}
	if ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionQuit}) {
		t.Error("quit handled by the simulation")
	}
}
