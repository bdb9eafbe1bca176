package entities

import (
	"testing"
	"time"

	"mazeraid/pkg/engine/world"
)

func TestPlayerDamage(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewPlayer(world.Pt(1, 1), 100)

	if died := p.Damage(30, now, 200*time.Millisecond); died {
		t.Error("Damage(30) on 100hp reported death")
	}
	if p.HP != 70 || !p.Hurt {
		t.Errorf("after Damage(30): hp=%d hurt=%v, want 70 true", p.HP, p.Hurt)
	}

	p.ClearHurt(now.Add(199 * time.Millisecond))
	if !p.Hurt {
		t.Error("hurt flag cleared before its window elapsed")
	}
	p.ClearHurt(now.Add(200 * time.Millisecond))
	if p.Hurt {
		t.Error("hurt flag still set after its window elapsed")
	}

	if died := p.Damage(70, now, time.Millisecond); !died {
		t.Error("Damage to exactly 0hp did not report death")
	}
	if died := p.Damage(10, now, time.Millisecond); died {
		t.Error("Damage on an already dead player reported death again")
	}
}

func TestBulletAdvance(t *testing.T) {
	b := NewBullet(world.Pt(2, 2), world.East, 2)
	b.Advance()
	if b.Pos != world.Pt(3, 2) || b.Range != 1 || b.Spent() {
		t.Errorf("after one Advance: %+v", b)
	}
	b.Advance()
	if !b.Spent() {
		t.Errorf("bullet with range %d not spent", b.Range)
	}
}

func TestBombReady(t *testing.T) {
	b := &Bomb{Countdown: 5}
	ticks := 0
	for !b.Ready() {
		b.Tick()
		ticks++
	}
	if ticks != 4 {
		t.Errorf("bomb became ready after %d decrements, want 4 (detonates on 5th tick)", ticks)
	}
}

func TestMarkerExpired(t *testing.T) {
	now := time.Unix(10, 0)
	m := NewMarker(MarkerGhost, world.Pt(0, 0), now, 800*time.Millisecond)
	if m.Expired(now.Add(799 * time.Millisecond)) {
		t.Error("marker expired early")
	}
	if !m.Expired(now.Add(800 * time.Millisecond)) {
		t.Error("marker not expired at its TTL")
	}
	if MarkerExplosion.String() != "explosion" {
		t.Errorf("MarkerExplosion.String() = %q", MarkerExplosion.String())
	}
}
