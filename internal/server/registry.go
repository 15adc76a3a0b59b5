package server

import (
	"crypto/rand"
	"log"
	"math/big"

	"github.com/segmentio/ksuid"

	"crossfire/internal/game"
)

// Registry owns the connection -> player mapping and the live room set. It
// is touched only from the sim goroutine, so it carries no locks; anything
// outside the loop goes through Sim commands.
type Registry struct {
	players     map[string]*game.Player // conn id -> player
	memberships map[string]*game.Room   // conn id -> joined room
	rooms       map[string]*game.Room   // code -> room
	colorIndex  int
}

func NewRegistry() *Registry {
	return &Registry{
		players:     make(map[string]*game.Player),
		memberships: make(map[string]*game.Room),
		rooms:       make(map[string]*game.Room),
	}
}

// Connect allocates a fresh player for the connection: generated id, palette
// color, default spawn, full health. No room is involved until the client
// asks for one.
func (r *Registry) Connect(connID string, conn game.Sender) *game.Player {
	p := game.NewPlayer(ksuid.New().String(), game.PaletteColor(r.colorIndex), conn)
	r.colorIndex++
	r.players[connID] = p
	log.Printf("registry: connect %s -> player %s", connID, p.ID)
	return p
}

// Disconnect removes the connection. If the player had joined a room it is
// removed there too, and a room whose population hits zero is destroyed.
func (r *Registry) Disconnect(connID string) {
	p, ok := r.players[connID]
	if !ok {
		return
	}
	if room := r.memberships[connID]; room != nil {
		room.RemovePlayer(p.ID)
		if room.PlayerCount() == 0 {
			r.DropRoom(room.Code)
		}
	}
	delete(r.memberships, connID)
	delete(r.players, connID)
	log.Printf("registry: disconnect %s (player %s)", connID, p.ID)
}

// Player returns the registered player for a connection, nil when unknown.
func (r *Registry) Player(connID string) *game.Player {
	return r.players[connID]
}

// RoomOf returns the room a connection has joined, nil when unassigned.
func (r *Registry) RoomOf(connID string) *game.Room {
	return r.memberships[connID]
}

// Room looks up a room by matchmaking code.
func (r *Registry) Room(code string) (*game.Room, error) {
	room, ok := r.rooms[code]
	if !ok {
		return nil, game.ErrRoomNotFound
	}
	return room, nil
}

// CreateRoom allocates a room under a fresh code.
func (r *Registry) CreateRoom() *game.Room {
	for {
		code := generateCode(roomCodeLength)
		if _, exists := r.rooms[code]; exists {
			continue
		}
		room := game.NewRoom(code)
		r.rooms[code] = room
		log.Printf("registry: room %s created", code)
		return room
	}
}

// DropRoom destroys an empty room. No-op for unknown codes. Callers are
// responsible for making sure nobody is left seated.
func (r *Registry) DropRoom(code string) {
	if _, ok := r.rooms[code]; !ok {
		return
	}
	delete(r.rooms, code)
	log.Printf("registry: room %s destroyed (empty)", code)
}

// BindRoom records the connection's room membership after a successful
// create or join.
func (r *Registry) BindRoom(connID string, room *game.Room) {
	r.memberships[connID] = room
}

// Counts reports process-wide connected players and live rooms for the
// liveness endpoint.
func (r *Registry) Counts() (players, rooms int) {
	return len(r.players), len(r.rooms)
}

// Snapshots lists every live room for the rooms endpoint.
func (r *Registry) Snapshots() []game.Info {
	out := make([]game.Info, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room.Snapshot())
	}
	return out
}

const roomCodeLength = 6

// codeChars drops ambiguous glyphs (0/O, 1/I) so codes survive being read
// aloud.
const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
