package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"crossfire/internal/game"
)

// Config is the process configuration. Env vars pick the listen address;
// an optional TOML file overrides gameplay tuning.
//
//	PORT / GAME_PORT    listen port (default 8081)
//	CROSSFIRE_TUNING    path to a tuning TOML file (optional)
type Config struct {
	Addr string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads .env (best-effort), resolves the listen address, and applies
// tuning overrides before any room exists.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("config: loaded .env")
	}

	p := os.Getenv("PORT")
	if p == "" {
		p = getenv("GAME_PORT", "8081")
	}
	cfg := Config{Addr: ":" + p}

	if path := os.Getenv("CROSSFIRE_TUNING"); path != "" {
		if err := applyTuning(path); err != nil {
			log.Fatalf("config: tuning %s: %v", path, err)
		}
		log.Printf("config: applied tuning from %s", path)
	}
	return cfg
}

type tuningFile struct {
	ScoreLimit     int                     `toml:"score_limit"`
	KillScore      int                     `toml:"kill_score"`
	VictoryBonus   int                     `toml:"victory_bonus"`
	RespawnDelayMS int                     `toml:"respawn_delay_ms"`
	Weapons        map[string]weaponTuning `toml:"weapons"`
}

type weaponTuning struct {
	Damage         int     `toml:"damage"`
	Speed          float64 `toml:"speed"`
	FireIntervalMS int     `toml:"fire_interval_ms"`
}

func applyTuning(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var t tuningFile
	if err := toml.Unmarshal(raw, &t); err != nil {
		return err
	}
	if t.ScoreLimit > 0 {
		game.ScoreLimit = t.ScoreLimit
	}
	if t.KillScore > 0 {
		game.KillScore = t.KillScore
	}
	if t.VictoryBonus > 0 {
		game.VictoryBonus = t.VictoryBonus
	}
	if t.RespawnDelayMS > 0 {
		game.RespawnDelay = time.Duration(t.RespawnDelayMS) * time.Millisecond
	}
	for kind, w := range t.Weapons {
		game.OverrideWeapon(kind, w.Damage, w.Speed, time.Duration(w.FireIntervalMS)*time.Millisecond)
	}
	return nil
}
