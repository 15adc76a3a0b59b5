package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"crossfire/internal/game"
)

func TestApplyTuning(t *testing.T) {
	prevLimit, prevKill := game.ScoreLimit, game.KillScore
	prevBonus, prevDelay := game.VictoryBonus, game.RespawnDelay
	prevPistol := game.WeaponByKind("pistol")
	t.Cleanup(func() {
		game.ScoreLimit, game.KillScore = prevLimit, prevKill
		game.VictoryBonus, game.RespawnDelay = prevBonus, prevDelay
		game.OverrideWeapon("pistol", prevPistol.Damage, prevPistol.Speed, prevPistol.FireInterval)
	})

	path := filepath.Join(t.TempDir(), "tuning.toml")
	doc := `
score_limit = 10
respawn_delay_ms = 1500

[weapons.pistol]
damage = 30
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := applyTuning(path); err != nil {
		t.Fatalf("applyTuning: %v", err)
	}

	if game.ScoreLimit != 10 {
		t.Fatalf("ScoreLimit = %d", game.ScoreLimit)
	}
	if game.RespawnDelay != 1500*time.Millisecond {
		t.Fatalf("RespawnDelay = %v", game.RespawnDelay)
	}
	// Unset keys keep their defaults.
	if game.KillScore != prevKill || game.VictoryBonus != prevBonus {
		t.Fatalf("unset keys moved: kill=%d bonus=%d", game.KillScore, game.VictoryBonus)
	}
	if w := game.WeaponByKind("pistol"); w.Damage != 30 {
		t.Fatalf("pistol damage = %d, want 30", w.Damage)
	}
}

func TestApplyTuningErrors(t *testing.T) {
	if err := applyTuning(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("missing file accepted")
	}
	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("score_limit = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := applyTuning(bad); err == nil {
		t.Fatal("unparseable file accepted")
	}
}
