package server

import (
	"time"

	"crossfire/internal/game"
)

// tickRate is the shared simulation cadence. Displacement is computed from
// wall-clock deltas, so the cadence governs resolution, not speed.
const tickRate = 60

// Sim is the single cooperative event loop: one goroutine owns the registry
// and every room, a shared ticker advances all rooms sequentially, and all
// message handling is serialized with tick processing. A shot submitted
// between two ticks is visible to the very next tick's hit scan.
type Sim struct {
	reg      *Registry
	router   *Router
	commands chan any
	quit     chan struct{}
}

type connectCmd struct {
	connID string
	conn   game.Sender
}

type disconnectCmd struct {
	connID string
}

type messageCmd struct {
	connID string
	raw    []byte
}

type countsReq struct {
	reply chan [2]int
}

type snapshotsReq struct {
	reply chan []game.Info
}

func NewSim(reg *Registry) *Sim {
	return &Sim{
		reg:      reg,
		router:   NewRouter(reg),
		commands: make(chan any, 1024),
		quit:     make(chan struct{}),
	}
}

// Run drives the loop until Stop. It is the only goroutine that mutates
// registry or room state.
func (s *Sim) Run() {
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()
	for {
		select {
		case <-s.quit:
			return
		case cmd := <-s.commands:
			s.apply(cmd)
		case now := <-ticker.C:
			for _, room := range s.reg.rooms {
				room.Tick(now)
			}
		}
	}
}

func (s *Sim) Stop() {
	close(s.quit)
}

func (s *Sim) apply(cmd any) {
	switch c := cmd.(type) {
	case connectCmd:
		s.reg.Connect(c.connID, c.conn)
	case disconnectCmd:
		s.reg.Disconnect(c.connID)
	case messageCmd:
		s.router.Dispatch(c.connID, c.raw, time.Now())
	case countsReq:
		players, rooms := s.reg.Counts()
		c.reply <- [2]int{players, rooms}
	case snapshotsReq:
		c.reply <- s.reg.Snapshots()
	}
}

// Connect registers a new connection with the loop.
func (s *Sim) Connect(connID string, conn game.Sender) {
	s.commands <- connectCmd{connID: connID, conn: conn}
}

// Disconnect retires a connection. Safe to call for unknown ids.
func (s *Sim) Disconnect(connID string) {
	s.commands <- disconnectCmd{connID: connID}
}

// Message hands one raw inbound frame to the loop.
func (s *Sim) Message(connID string, raw []byte) {
	s.commands <- messageCmd{connID: connID, raw: raw}
}

// Counts answers the liveness endpoint from inside the loop.
func (s *Sim) Counts() (players, rooms int) {
	reply := make(chan [2]int, 1)
	s.commands <- countsReq{reply: reply}
	c := <-reply
	return c[0], c[1]
}

// Snapshots lists the live rooms from inside the loop.
func (s *Sim) Snapshots() []game.Info {
	reply := make(chan []game.Info, 1)
	s.commands <- snapshotsReq{reply: reply}
	return <-reply
}
