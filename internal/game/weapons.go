package game

import "time"

// WeaponProfile is static per-kind ballistics data. Profiles parameterize
// bullet creation and damage application; they are never mutated at runtime
// (tuning overrides are applied once at startup, before any room exists).
type WeaponProfile struct {
	Kind   string
	Damage int
	// Speed is projectile velocity in world units per second.
	Speed float64
	// FireInterval is the weapon's own cooldown. It is enforced client-side;
	// the server only applies the blanket minShotInterval floor on top.
	FireInterval time.Duration
}

const (
	WeaponPistol  = "pistol"
	WeaponRifle   = "rifle"
	WeaponShotgun = "shotgun"
	WeaponSniper  = "sniper"
)

var weaponTable = map[string]WeaponProfile{
	WeaponPistol:  {Kind: WeaponPistol, Damage: 25, Speed: 50, FireInterval: 400 * time.Millisecond},
	WeaponRifle:   {Kind: WeaponRifle, Damage: 35, Speed: 70, FireInterval: 150 * time.Millisecond},
	WeaponShotgun: {Kind: WeaponShotgun, Damage: 60, Speed: 40, FireInterval: 900 * time.Millisecond},
	WeaponSniper:  {Kind: WeaponSniper, Damage: 90, Speed: 120, FireInterval: 1500 * time.Millisecond},
}

// WeaponByKind resolves a profile. Unknown kinds fall back to the pistol so
// server and clients always agree on ballistics; there is no hidden per-kind
// state worth rejecting over.
func WeaponByKind(kind string) WeaponProfile {
	if w, ok := weaponTable[kind]; ok {
		return w
	}
	return weaponTable[WeaponPistol]
}

// OverrideWeapon replaces profile values at startup. Zero fields keep the
// built-in value. Calling this after rooms exist is a data race by contract.
func OverrideWeapon(kind string, damage int, speed float64, fireInterval time.Duration) {
	w, ok := weaponTable[kind]
	if !ok {
		return
	}
	if damage > 0 {
		w.Damage = damage
	}
	if speed > 0 {
		w.Speed = speed
	}
	if fireInterval > 0 {
		w.FireInterval = fireInterval
	}
	weaponTable[kind] = w
}
