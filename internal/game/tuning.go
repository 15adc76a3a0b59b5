package game

import "time"

// Gameplay tuning. Variables are overridable once at startup from the config
// layer; constants are structural and not meant to move.
var (
	// ScoreLimit is the team elimination count that ends a match.
	ScoreLimit = 50
	// KillScore is the individual score awarded per elimination.
	KillScore = 100
	// VictoryBonus is the one-time score granted to every member of the
	// winning team when the limit is reached.
	VictoryBonus = 500
	// RespawnDelay is how long an eliminated player stays down.
	RespawnDelay = 3 * time.Second
)

const (
	// MaxRoomPlayers caps room membership.
	MaxRoomPlayers = 8

	// minShotInterval is a blanket anti-spam floor applied to every shot
	// regardless of weapon kind, on top of the weapon's own client-enforced
	// cooldown.
	minShotInterval = 100 * time.Millisecond

	// bulletLifetime is the silent-expiry age for in-flight bullets.
	bulletLifetime = 3 * time.Second

	// hitRadius is the bullet-to-player distance below which a hit registers.
	hitRadius = 1.0

	// MaxHealth is full player health.
	MaxHealth = 100
)

// World bounds. A bullet displaced outside this box is removed silently.
const (
	worldBoundXZ   = 512.0
	worldFloorY    = -64.0
	worldCeilingY  = 512.0
)

// spawnPoints are the fixed respawn locations around the map. The default
// connect position is the first entry.
var spawnPoints = []Vec3{
	{X: 0, Y: 2, Z: 0},
	{X: 40, Y: 2, Z: 35},
	{X: -38, Y: 2, Z: 42},
	{X: 55, Y: 2, Z: -30},
	{X: -45, Y: 2, Z: -48},
	{X: 12, Y: 14, Z: 60},
	{X: -60, Y: 8, Z: 5},
	{X: 28, Y: 20, Z: -55},
}

// DefaultSpawn is the position given to a freshly connected player before it
// joins any room.
func DefaultSpawn() Vec3 {
	return spawnPoints[0]
}

func inWorldBounds(p Vec3) bool {
	if p.X < -worldBoundXZ || p.X > worldBoundXZ {
		return false
	}
	if p.Z < -worldBoundXZ || p.Z > worldBoundXZ {
		return false
	}
	if p.Y < worldFloorY || p.Y > worldCeilingY {
		return false
	}
	return true
}
