// Package config holds the tunable rules of the simulation.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Rules carries every gameplay constant and cadence.
// Durations are written as Go duration strings in YAML ("150ms", "1s").
type Rules struct {
	PlayerHP      int `yaml:"player_hp"`
	BulletRange   int `yaml:"bullet_range"`
	BombCountdown int `yaml:"bomb_countdown"`
	BlastRadius   int `yaml:"blast_radius"`
	BlastDamage   int `yaml:"blast_damage"`
	ContactDamage int `yaml:"contact_damage"`

	// Enemies on level i default to (i+1) * EnemiesPerLevel
	EnemiesPerLevel int `yaml:"enemies_per_level"`

	BulletInterval time.Duration `yaml:"bullet_interval"`
	EnemyInterval  time.Duration `yaml:"enemy_interval"`
	ThreatInterval time.Duration `yaml:"threat_interval"`
	BombInterval   time.Duration `yaml:"bomb_interval"`
	FrameInterval  time.Duration `yaml:"frame_interval"`
	MoveDelay      time.Duration `yaml:"move_delay"`

	HurtDuration time.Duration `yaml:"hurt_duration"`
	GhostTTL     time.Duration `yaml:"ghost_ttl"`
	WallHitTTL   time.Duration `yaml:"wall_hit_ttl"`
	ExplosionTTL time.Duration `yaml:"explosion_ttl"`

	// How long the level-complete screen stays up before the next level starts
	LevelPause time.Duration `yaml:"level_pause"`
}

// Default returns the stock rules
func Default() Rules {
	return Rules{
		PlayerHP:        100,
		BulletRange:     10,
		BombCountdown:   5,
		BlastRadius:     5,
		BlastDamage:     50,
		ContactDamage:   10,
		EnemiesPerLevel: 5,

		BulletInterval: 100 * time.Millisecond,
		EnemyInterval:  500 * time.Millisecond,
		ThreatInterval: time.Second,
		BombInterval:   time.Second,
		FrameInterval:  16 * time.Millisecond,
		MoveDelay:      150 * time.Millisecond,

		HurtDuration: 200 * time.Millisecond,
		GhostTTL:     800 * time.Millisecond,
		WallHitTTL:   300 * time.Millisecond,
		ExplosionTTL: 500 * time.Millisecond,

		LevelPause: 3 * time.Second,
	}
}

// Load reads a YAML rules file on top of the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (Rules, error) {
	rules := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read rules %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("parse rules %s: %w", path, err)
	}

	if err := rules.Validate(); err != nil {
		return rules, fmt.Errorf("rules %s: %w", path, err)
	}

	return rules, nil
}

// Validate rejects rules that would stall or break the simulation
func (r Rules) Validate() error {
	ints := []struct {
		name  string
		value int
	}{
		{"player_hp", r.PlayerHP},
		{"bullet_range", r.BulletRange},
		{"bomb_countdown", r.BombCountdown},
		{"blast_damage", r.BlastDamage},
		{"contact_damage", r.ContactDamage},
	}
	for _, v := range ints {
		if v.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", v.name, v.value)
		}
	}
	if r.BlastRadius < 0 {
		return fmt.Errorf("blast_radius must not be negative, got %d", r.BlastRadius)
	}
	if r.EnemiesPerLevel < 0 {
		return fmt.Errorf("enemies_per_level must not be negative, got %d", r.EnemiesPerLevel)
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"bullet_interval", r.BulletInterval},
		{"enemy_interval", r.EnemyInterval},
		{"threat_interval", r.ThreatInterval},
		{"bomb_interval", r.BombInterval},
		{"frame_interval", r.FrameInterval},
		{"move_delay", r.MoveDelay},
		{"hurt_duration", r.HurtDuration},
		{"ghost_ttl", r.GhostTTL},
		{"wall_hit_ttl", r.WallHitTTL},
		{"explosion_ttl", r.ExplosionTTL},
	}
	for _, v := range durations {
		if v.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", v.name, v.value)
		}
	}
	if r.LevelPause < 0 {
		return fmt.Errorf("level_pause must not be negative, got %v", r.LevelPause)
	}

	return nil
}
