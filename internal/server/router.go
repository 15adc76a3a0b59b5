package server

import (
	"log"
	"time"

	"crossfire/internal/game"
	"crossfire/internal/protocol"
)

// Router decodes inbound messages and calls exactly one registry or room
// operation. It holds no game logic. Malformed payloads and unknown types
// are logged and dropped; the connection always stays open.
type Router struct {
	reg *Registry
}

func NewRouter(reg *Registry) *Router {
	return &Router{reg: reg}
}

// Dispatch handles one raw client message. A message from a connection with
// no registered player is silently ignored.
func (rt *Router) Dispatch(connID string, raw []byte, now time.Time) {
	p := rt.reg.Player(connID)
	if p == nil {
		return
	}
	msg, err := protocol.DecodeInbound(raw)
	if err != nil {
		log.Printf("router: drop message from %s: %v", connID, err)
		return
	}
	switch m := msg.(type) {
	case protocol.CreateRoom:
		rt.handleCreateRoom(connID, p, m)
	case protocol.JoinRoom:
		rt.handleJoinRoom(connID, p, m)
	case protocol.PlayerUpdate:
		rt.handlePlayerUpdate(connID, p, m)
	case protocol.BulletFired:
		rt.handleBulletFired(connID, p, m, now)
	}
}

func (rt *Router) handleCreateRoom(connID string, p *game.Player, m protocol.CreateRoom) {
	if rt.reg.RoomOf(connID) != nil {
		log.Printf("router: create_room from %s ignored (already in a room)", p.ID)
		return
	}
	p.Name = m.PlayerName
	room := rt.reg.CreateRoom()
	rt.sendTo(p, protocol.NewRoomCreated(room.Code, p.ID))
	if err := room.AddPlayer(p); err != nil {
		// Unreachable for a fresh room; guard anyway and reclaim the room
		// so a failed create never leaks an empty entry.
		rt.sendTo(p, protocol.NewError(err.Error()))
		rt.reg.DropRoom(room.Code)
		return
	}
	rt.reg.BindRoom(connID, room)
}

func (rt *Router) handleJoinRoom(connID string, p *game.Player, m protocol.JoinRoom) {
	if rt.reg.RoomOf(connID) != nil {
		log.Printf("router: join_room from %s ignored (already in a room)", p.ID)
		return
	}
	room, err := rt.reg.Room(m.Code)
	if err != nil {
		rt.sendTo(p, protocol.NewError(err.Error()))
		return
	}
	if room.PlayerCount() >= game.MaxRoomPlayers {
		rt.sendTo(p, protocol.NewError(game.ErrRoomFull.Error()))
		return
	}
	p.Name = m.PlayerName
	rt.sendTo(p, protocol.NewRoomJoined(room.Code, p.ID))
	if err := room.AddPlayer(p); err != nil {
		rt.sendTo(p, protocol.NewError(err.Error()))
		return
	}
	rt.reg.BindRoom(connID, room)
}

func (rt *Router) handlePlayerUpdate(connID string, p *game.Player, m protocol.PlayerUpdate) {
	room := rt.reg.RoomOf(connID)
	if room == nil {
		return
	}
	room.HandleUpdate(p, m)
}

func (rt *Router) handleBulletFired(connID string, p *game.Player, m protocol.BulletFired, now time.Time) {
	room := rt.reg.RoomOf(connID)
	if room == nil {
		return
	}
	room.HandleShot(p, m, now)
}

func (rt *Router) sendTo(p *game.Player, payload any) {
	if p.Conn == nil {
		return
	}
	if err := p.Conn.Send(payload); err != nil {
		log.Printf("router: send to %s: %v", p.ID, err)
	}
}
