package protocol

// Outbound messages carry their own type tag so they serialize as the same
// flat shape clients send. Construct them with the New* helpers; the zero
// values have an empty tag and must not go on the wire.

// PlayerState is the full per-player snapshot embedded in roster messages.
type PlayerState struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Team     string     `json:"team"`
	Color    string     `json:"color"`
	Position [3]float64 `json:"position"`
	Rotation [3]float64 `json:"rotation"`
	Health   int        `json:"health"`
	Score    int        `json:"score"`
	Alive    bool       `json:"alive"`
}

type TeamAssigned struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
	Team     string `json:"team"`
	Color    string `json:"color"`
}

func NewTeamAssigned(playerID, team, color string) TeamAssigned {
	return TeamAssigned{Type: MsgTeamAssigned, PlayerID: playerID, Team: team, Color: color}
}

type TeamScores struct {
	Type string `json:"type"`
	Blue int    `json:"blue"`
	Red  int    `json:"red"`
}

func NewTeamScores(blue, red int) TeamScores {
	return TeamScores{Type: MsgTeamScores, Blue: blue, Red: red}
}

type TeamVictory struct {
	Type   string `json:"type"`
	Winner string `json:"winner"`
	Blue   int    `json:"blue"`
	Red    int    `json:"red"`
	Bonus  int    `json:"bonus"`
}

func NewTeamVictory(winner string, blue, red, bonus int) TeamVictory {
	return TeamVictory{Type: MsgTeamVictory, Winner: winner, Blue: blue, Red: red, Bonus: bonus}
}

type PlayerJoined struct {
	Type   string      `json:"type"`
	Player PlayerState `json:"player"`
}

func NewPlayerJoined(p PlayerState) PlayerJoined {
	return PlayerJoined{Type: MsgPlayerJoined, Player: p}
}

type PlayerLeft struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
}

func NewPlayerLeft(playerID string) PlayerLeft {
	return PlayerLeft{Type: MsgPlayerLeft, PlayerID: playerID}
}

// PlayerUpdated rebroadcasts a movement update to the rest of the room.
type PlayerUpdated struct {
	Type     string     `json:"type"`
	PlayerID string     `json:"playerId"`
	Position [3]float64 `json:"position"`
	Rotation [3]float64 `json:"rotation"`
	Health   int        `json:"health"`
}

func NewPlayerUpdated(playerID string, position, rotation [3]float64, health int) PlayerUpdated {
	return PlayerUpdated{Type: MsgPlayerUpdate, PlayerID: playerID, Position: position, Rotation: rotation, Health: health}
}

// BulletSpawned is the outbound bullet_fired: the client's shot echoed with
// server-computed speed and damage so every client renders identical
// ballistics. Damage is not secret under the full-trust model.
type BulletSpawned struct {
	Type      string     `json:"type"`
	ID        string     `json:"id"`
	PlayerID  string     `json:"playerId"`
	Position  [3]float64 `json:"position"`
	Direction [3]float64 `json:"direction"`
	Weapon    string     `json:"weapon"`
	Speed     float64    `json:"speed"`
	Damage    int        `json:"damage"`
}

func NewBulletSpawned(id, playerID string, position, direction [3]float64, weapon string, speed float64, damage int) BulletSpawned {
	return BulletSpawned{
		Type:      MsgBulletFired,
		ID:        id,
		PlayerID:  playerID,
		Position:  position,
		Direction: direction,
		Weapon:    weapon,
		Speed:     speed,
		Damage:    damage,
	}
}

type PlayerHit struct {
	Type      string `json:"type"`
	PlayerID  string `json:"playerId"`
	ShooterID string `json:"shooterId"`
	Damage    int    `json:"damage"`
	Weapon    string `json:"weapon"`
	Health    int    `json:"health"`
}

func NewPlayerHit(playerID, shooterID string, damage int, weapon string, health int) PlayerHit {
	return PlayerHit{Type: MsgPlayerHit, PlayerID: playerID, ShooterID: shooterID, Damage: damage, Weapon: weapon, Health: health}
}

type PlayerEliminated struct {
	Type       string `json:"type"`
	PlayerID   string `json:"playerId"`
	KillerID   string `json:"killerId"`
	KillerName string `json:"killerName"`
}

func NewPlayerEliminated(playerID, killerID, killerName string) PlayerEliminated {
	return PlayerEliminated{Type: MsgPlayerEliminated, PlayerID: playerID, KillerID: killerID, KillerName: killerName}
}

type PlayerRespawned struct {
	Type     string     `json:"type"`
	PlayerID string     `json:"playerId"`
	Position [3]float64 `json:"position"`
	Health   int        `json:"health"`
}

func NewPlayerRespawned(playerID string, position [3]float64, health int) PlayerRespawned {
	return PlayerRespawned{Type: MsgPlayerRespawned, PlayerID: playerID, Position: position, Health: health}
}

type RoomCreated struct {
	Type     string `json:"type"`
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
}

func NewRoomCreated(code, playerID string) RoomCreated {
	return RoomCreated{Type: MsgRoomCreated, Code: code, PlayerID: playerID}
}

type RoomJoined struct {
	Type     string `json:"type"`
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
}

func NewRoomJoined(code, playerID string) RoomJoined {
	return RoomJoined{Type: MsgRoomJoined, Code: code, PlayerID: playerID}
}

type ErrorMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewError(message string) ErrorMsg {
	return ErrorMsg{Type: MsgError, Message: message}
}
