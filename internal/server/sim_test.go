package server

import (
	"testing"
)

// The sim loop serializes everything through its command channel, so the
// blocking Counts/Snapshots requests double as barriers: once they answer,
// every command sent before them has been applied.
func TestSimLifecycle(t *testing.T) {
	reg := NewRegistry()
	sim := NewSim(reg)
	go sim.Run()
	defer sim.Stop()

	sim.Connect("c1", &recConn{})
	sim.Connect("c2", &recConn{})
	if players, rooms := sim.Counts(); players != 2 || rooms != 0 {
		t.Fatalf("after connects: %d players, %d rooms", players, rooms)
	}

	sim.Message("c1", []byte(`{"type":"create_room","playerName":"alice"}`))
	if _, rooms := sim.Counts(); rooms != 1 {
		t.Fatalf("create_room did not register a room")
	}
	snaps := sim.Snapshots()
	if len(snaps) != 1 || snaps[0].Players != 1 {
		t.Fatalf("snapshots = %+v", snaps)
	}

	sim.Disconnect("c1")
	players, rooms := sim.Counts()
	if players != 1 || rooms != 0 {
		t.Fatalf("after disconnect: %d players, %d rooms", players, rooms)
	}
}
