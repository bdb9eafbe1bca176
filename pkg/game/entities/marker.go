package entities

import (
	"time"

	"mazeraid/pkg/engine/world"
)

// MarkerType represents the kind of transient visual marker
type MarkerType int

const (
	MarkerGhost     MarkerType = iota // Enemy shot down
	MarkerWallHit                     // Bullet hit a wall
	MarkerExplosion                   // Tile inside a detonating blast
)

// MarkerInfo contains display information for each marker type
type MarkerInfo struct {
	Name string
	Icon string
}

// MarkerTypes maps marker types to their display information
var MarkerTypes = map[MarkerType]MarkerInfo{
	MarkerGhost:     {Name: "ghost", Icon: "G"},
	MarkerWallHit:   {Name: "wall-hit", Icon: "*"},
	MarkerExplosion: {Name: "explosion", Icon: "%"},
}

// Marker is a non-authoritative record of a recent event.
// It carries its own creation time and time-to-live and is swept once expired.
type Marker struct {
	Type      MarkerType
	Pos       world.Point
	CreatedAt time.Time
	TTL       time.Duration
}

// NewMarker creates a marker at pos that lives for ttl from now
func NewMarker(t MarkerType, pos world.Point, now time.Time, ttl time.Duration) Marker {
	return Marker{Type: t, Pos: pos, CreatedAt: now, TTL: ttl}
}

// Expired reports whether the marker's time-to-live has elapsed at now
func (m Marker) Expired(now time.Time) bool {
	return !now.Before(m.CreatedAt.Add(m.TTL))
}

// String returns the marker type name
func (t MarkerType) String() string {
	if info, ok := MarkerTypes[t]; ok {
		return info.Name
	}
	return "unknown"
}
