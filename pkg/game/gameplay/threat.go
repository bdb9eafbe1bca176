package gameplay

import (
	"time"

	"mazeraid/pkg/game/state"
)

// CheckThreat hurts the player for every enemy in the 8 tiles around them
// (or on their tile), all in one update.
func CheckThreat(g *state.Game, now time.Time) {
	if g.Over() {
		return
	}

	attackers := 0
	for _, e := range g.Enemies {
		if e.Pos.Chebyshev(g.Player.Pos) <= 1 {
			attackers++
		}
	}
	if attackers == 0 {
		return
	}

	damagePlayer(g, g.Rules.ContactDamage*attackers, now)
}

// damagePlayer applies damage and raises game over when it kills the player
func damagePlayer(g *state.Game, amount int, now time.Time) {
	if g.Player.Damage(amount, now, g.Rules.HurtDuration) && !g.GameOver {
		g.GameOver = true
		g.Emit(state.EventGameOver)
	}
}

// SweepMarkers evicts expired markers and clears a stale hurt flag
func SweepMarkers(g *state.Game, now time.Time) {
	live := g.Markers[:0]
	for _, m := range g.Markers {
		if !m.Expired(now) {
			live = append(live, m)
		}
	}
	g.Markers = live
	g.Player.ClearHurt(now)
}
