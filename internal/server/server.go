// Package server wires the websocket transport and HTTP surface to the
// single-threaded room simulation.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"crossfire/internal/stats"
)

var upgrader = websocket.Upgrader{
	// Browser clients connect from arbitrary origins during development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Server struct {
	sim *Sim
}

func New(sim *Sim) *Server {
	return &Server{sim: sim}
}

// Handler builds the HTTP routing table.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/ws", s.handleWS)
	r.HandleFunc("/api/healthz", s.handleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/api/rooms", s.handleRooms).Methods(http.MethodGet)
	r.HandleFunc("/api/leaderboard", s.handleLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/api/leaderboard/daily", s.handleLeaderboardDaily).Methods(http.MethodGet)
	return r
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade from %s: %v", r.RemoteAddr, err)
		return
	}
	connID := uuid.NewString()
	client := newWSClient(connID, conn)
	log.Printf("ws: connect %s from %s", connID, r.RemoteAddr)
	s.sim.Connect(connID, client)
	go client.writeLoop()
	client.readLoop(s.sim)
}

// handleHealthz reports process-wide counts for liveness checks. It has no
// bearing on simulation correctness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	players, rooms := s.sim.Counts()
	writeJSON(w, map[string]int{"players": players, "rooms": rooms})
}

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.sim.Snapshots())
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, stats.Leaderboard())
}

func (s *Server) handleLeaderboardDaily(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, stats.Today())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("http: encode response: %v", err)
	}
}
