package game

import (
	"time"

	"crossfire/internal/protocol"
)

// Sender delivers one outbound message to a client, best-effort and
// non-blocking. The concrete implementation lives in the server package so
// game code never touches the websocket directly.
type Sender interface {
	Send(payload any) error
}

// Team is one of the two fixed factions.
type Team string

const (
	TeamBlue Team = "blue"
	TeamRed  Team = "red"
)

var teamColors = map[Team]string{
	TeamBlue: "#3b82f6",
	TeamRed:  "#ef4444",
}

// playerPalette supplies pre-join avatar colors, assigned round-robin at
// connect time.
var playerPalette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8",
	"#f58231", "#911eb4", "#46f0f0", "#f032e6",
}

// PaletteColor returns the i-th round-robin palette color.
func PaletteColor(i int) string {
	return playerPalette[i%len(playerPalette)]
}

// Player is the server-side avatar state, owned by at most one Room.
type Player struct {
	ID       string
	Name     string
	Conn     Sender
	Position Vec3
	Rotation Vec3
	Health   int
	Team     Team
	Color    string
	Score    int
	Alive    bool
	LastShot time.Time
}

// NewPlayer allocates an unassigned player with full health at the default
// spawn. Team and name are settled when it creates or joins a room.
func NewPlayer(id, color string, conn Sender) *Player {
	return &Player{
		ID:       id,
		Color:    color,
		Conn:     conn,
		Position: DefaultSpawn(),
		Health:   MaxHealth,
		Alive:    true,
	}
}

// State snapshots the player for roster messages.
func (p *Player) State() protocol.PlayerState {
	return protocol.PlayerState{
		ID:       p.ID,
		Name:     p.Name,
		Team:     string(p.Team),
		Color:    p.Color,
		Position: p.Position.Array(),
		Rotation: p.Rotation.Array(),
		Health:   p.Health,
		Score:    p.Score,
		Alive:    p.Alive,
	}
}
