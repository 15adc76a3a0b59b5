package game

import "time"

// Bullet is a transient projectile advanced each tick until expiry, leaving
// the world bounds, or registering a hit. Direction is always unit length;
// HandleShot rejects anything shorter before a Bullet is constructed.
type Bullet struct {
	ID      string
	OwnerID string
	// OwnerTeam is captured at fire time so the friendly-fire exclusion
	// holds even after the owner disconnects.
	OwnerTeam Team
	Position  Vec3
	Direction Vec3
	Weapon    string
	Speed     float64
	Damage    int
	SpawnedAt time.Time
	UpdatedAt time.Time
}

// advance displaces the bullet by wall-clock delta and reports whether it is
// still live (not expired, still inside the world).
func (b *Bullet) advance(now time.Time) bool {
	dt := now.Sub(b.UpdatedAt).Seconds()
	if dt > 0 {
		b.Position = b.Position.Add(b.Direction.Scale(b.Speed * dt))
	}
	b.UpdatedAt = now
	if now.Sub(b.SpawnedAt) > bulletLifetime {
		return false
	}
	return inWorldBounds(b.Position)
}
