package game

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"crossfire/internal/protocol"
)

var (
	ErrRoomNotFound = errors.New("Room not found")
	ErrRoomFull     = errors.New("Room is full")
)

// pendingRespawn is one entry in the room's scheduled-event queue. The tick
// loop drains due entries; an entry whose player has left is skipped.
type pendingRespawn struct {
	playerID string
	due      time.Time
}

// Room is the authoritative simulation unit for one match: it owns its
// players, in-flight bullets, and team scores. All mutation happens from the
// sim loop's message handlers and Tick, never concurrently.
type Room struct {
	Code string

	// players keeps insertion order; the hit scan's first-qualifying-player
	// tie-break depends on it.
	players     []*Player
	playersByID map[string]*Player

	bullets []*Bullet
	// usedBulletIDs spans the room's whole lifetime so an id can never be
	// reused, even after its bullet is gone.
	usedBulletIDs map[string]struct{}

	scores     map[Team]int
	scoreLimit int
	ended      bool
	winner     Team

	respawns []pendingRespawn
}

// NewRoom allocates an active room with the given matchmaking code.
func NewRoom(code string) *Room {
	return &Room{
		Code:          code,
		playersByID:   make(map[string]*Player),
		usedBulletIDs: make(map[string]struct{}),
		scores:        map[Team]int{TeamBlue: 0, TeamRed: 0},
		scoreLimit:    ScoreLimit,
	}
}

func (r *Room) PlayerCount() int { return len(r.players) }

func (r *Room) BulletCount() int { return len(r.bullets) }

func (r *Room) Ended() bool { return r.ended }

func (r *Room) Scores() (blue, red int) {
	return r.scores[TeamBlue], r.scores[TeamRed]
}

// AddPlayer registers the player, assigns its team by population parity, and
// synchronizes both sides: the joiner gets its assignment, the live scores,
// the final victory message if the match already ended, and the existing
// roster; everyone else gets a player_joined.
func (r *Room) AddPlayer(p *Player) error {
	if len(r.players) >= MaxRoomPlayers {
		return ErrRoomFull
	}
	team := TeamBlue
	if len(r.players)%2 == 1 {
		team = TeamRed
	}
	p.Team = team
	p.Color = teamColors[team]

	r.sendTo(p, protocol.NewTeamAssigned(p.ID, string(team), p.Color))
	r.sendTo(p, protocol.NewTeamScores(r.scores[TeamBlue], r.scores[TeamRed]))
	if r.ended {
		r.sendTo(p, protocol.NewTeamVictory(string(r.winner), r.scores[TeamBlue], r.scores[TeamRed], VictoryBonus))
	}

	joined := protocol.NewPlayerJoined(p.State())
	for _, other := range r.players {
		r.sendTo(other, joined)
		r.sendTo(p, protocol.NewPlayerJoined(other.State()))
	}

	r.players = append(r.players, p)
	r.playersByID[p.ID] = p
	log.Printf("room %s: player %s (%s) joined team %s (%d/%d)", r.Code, p.ID, p.Name, team, len(r.players), MaxRoomPlayers)
	return nil
}

// RemovePlayer drops the player and tells the remaining members. Scores are
// untouched; any scheduled respawn for the player becomes a no-op when it
// comes due.
func (r *Room) RemovePlayer(id string) {
	p, ok := r.playersByID[id]
	if !ok {
		return
	}
	delete(r.playersByID, id)
	for i, q := range r.players {
		if q.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			break
		}
	}
	log.Printf("room %s: player %s (%s) left (%d remain)", r.Code, p.ID, p.Name, len(r.players))
	r.broadcast(protocol.NewPlayerLeft(id))
}

// HandleUpdate overwrites the submitter's state and rebroadcasts it to the
// rest of the room.
func (r *Room) HandleUpdate(p *Player, m protocol.PlayerUpdate) {
	p.Position = Vec(*m.Position)
	p.Rotation = Vec(*m.Rotation)
	h := *m.Health
	if h < 0 {
		h = 0
	}
	if h > MaxHealth {
		h = MaxHealth
	}
	p.Health = h
	out := protocol.NewPlayerUpdated(p.ID, p.Position.Array(), p.Rotation.Array(), p.Health)
	for _, other := range r.players {
		if other.ID == p.ID {
			continue
		}
		r.sendTo(other, out)
	}
}

// HandleShot validates a shot submission and converts it into a tracked
// bullet. Rate-limit violations, degenerate directions, and duplicate ids
// are dropped silently (log only): background simulation noise never earns
// an error reply.
func (r *Room) HandleShot(p *Player, m protocol.BulletFired, now time.Time) {
	if !p.LastShot.IsZero() && now.Sub(p.LastShot) < minShotInterval {
		log.Printf("room %s: shot from %s dropped (rate limit)", r.Code, p.ID)
		return
	}
	dir, ok := Vec(*m.Direction).Normalize()
	if !ok {
		log.Printf("room %s: shot from %s dropped (zero direction)", r.Code, p.ID)
		return
	}
	id := p.ID + ":" + m.ID
	if _, dup := r.usedBulletIDs[id]; dup {
		log.Printf("room %s: shot from %s dropped (duplicate id %q)", r.Code, p.ID, m.ID)
		return
	}
	p.LastShot = now

	w := WeaponByKind(m.Weapon)
	b := &Bullet{
		ID:        id,
		OwnerID:   p.ID,
		OwnerTeam: p.Team,
		Position:  Vec(*m.Position),
		Direction: dir,
		Weapon:    w.Kind,
		Speed:     w.Speed,
		Damage:    w.Damage,
		SpawnedAt: now,
		UpdatedAt: now,
	}
	r.usedBulletIDs[id] = struct{}{}
	r.bullets = append(r.bullets, b)
	r.broadcast(protocol.NewBulletSpawned(b.ID, b.OwnerID, b.Position.Array(), b.Direction.Array(), b.Weapon, b.Speed, b.Damage))
}

// Tick advances the room by one simulation step: due respawns fire, bullets
// displace by wall-clock delta, hits resolve, and removed bullets are
// compacted only after the scan so iteration stays stable within the tick.
func (r *Room) Tick(now time.Time) {
	r.drainRespawns(now)
	if len(r.bullets) == 0 {
		return
	}

	removed := make(map[string]bool)
	for _, b := range r.bullets {
		if !b.advance(now) {
			// Expired or out of bounds: silent removal, no hit check.
			removed[b.ID] = true
		}
	}

	for _, b := range r.bullets {
		if removed[b.ID] {
			continue
		}
		if victim := r.scanHit(b); victim != nil {
			r.resolveHit(b, victim, now)
			removed[b.ID] = true
		}
	}

	if len(removed) == 0 {
		return
	}
	live := r.bullets[:0]
	for _, b := range r.bullets {
		if !removed[b.ID] {
			live = append(live, b)
		}
	}
	for i := len(live); i < len(r.bullets); i++ {
		r.bullets[i] = nil
	}
	r.bullets = live
}

func (r *Room) drainRespawns(now time.Time) {
	if len(r.respawns) == 0 {
		return
	}
	keep := r.respawns[:0]
	for _, ev := range r.respawns {
		if ev.due.After(now) {
			keep = append(keep, ev)
			continue
		}
		p, ok := r.playersByID[ev.playerID]
		if !ok {
			// Player left before the respawn came due.
			continue
		}
		p.Health = MaxHealth
		p.Alive = true
		p.Position = spawnPoints[rand.Intn(len(spawnPoints))]
		r.broadcast(protocol.NewPlayerRespawned(p.ID, p.Position.Array(), p.Health))
	}
	r.respawns = keep
}

func (r *Room) broadcast(payload any) {
	for _, p := range r.players {
		r.sendTo(p, payload)
	}
}

// sendTo is per-recipient best-effort: one failed send never aborts a
// broadcast to the rest of the room.
func (r *Room) sendTo(p *Player, payload any) {
	if p.Conn == nil {
		return
	}
	if err := p.Conn.Send(payload); err != nil {
		log.Printf("room %s: send to %s: %v", r.Code, p.ID, err)
	}
}

// Info is the room snapshot exposed by the rooms endpoint.
type Info struct {
	Code    string `json:"code"`
	Players int    `json:"players"`
	Bullets int    `json:"bullets"`
	Blue    int    `json:"blue"`
	Red     int    `json:"red"`
	Ended   bool   `json:"ended"`
}

func (r *Room) Snapshot() Info {
	return Info{
		Code:    r.Code,
		Players: len(r.players),
		Bullets: len(r.bullets),
		Blue:    r.scores[TeamBlue],
		Red:     r.scores[TeamRed],
		Ended:   r.ended,
	}
}
