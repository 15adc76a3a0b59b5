// Package protocol defines the wire messages exchanged with clients: a
// closed, tagged union with one variant per message kind, validated at the
// boundary. Every message is a flat JSON object carrying a "type"
// discriminator; anything that does not match a known shape is rejected.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Inbound message kinds (client -> server).
const (
	MsgCreateRoom   = "create_room"
	MsgJoinRoom     = "join_room"
	MsgPlayerUpdate = "player_update"
	MsgBulletFired  = "bullet_fired"
)

// Outbound message kinds (server -> client). MsgPlayerUpdate and
// MsgBulletFired are reused in the outbound direction with server-computed
// fields added.
const (
	MsgTeamAssigned     = "team_assigned"
	MsgTeamScores       = "team_scores_update"
	MsgTeamVictory      = "team_victory"
	MsgPlayerJoined     = "player_joined"
	MsgPlayerLeft       = "player_left"
	MsgPlayerHit        = "player_hit"
	MsgPlayerEliminated = "player_eliminated"
	MsgPlayerRespawned  = "player_respawned"
	MsgRoomCreated      = "room_created"
	MsgRoomJoined       = "room_joined"
	MsgError            = "error"
)

var (
	ErrUnknownType = errors.New("unknown message type")
	ErrMalformed   = errors.New("malformed message")
)

type typeProbe struct {
	Type string `json:"type"`
}

// Inbound is the closed union of client messages. DecodeInbound is the only
// constructor, so a value of this type has always passed validation.
type Inbound interface {
	inbound()
}

// DecodeInbound parses and validates one client message. It returns
// ErrUnknownType for unrecognized discriminators and ErrMalformed (wrapped
// with detail) for undecodable or incomplete payloads.
func DecodeInbound(data []byte) (Inbound, error) {
	var probe typeProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	switch probe.Type {
	case MsgCreateRoom:
		return decodeAs[CreateRoom](data)
	case MsgJoinRoom:
		return decodeAs[JoinRoom](data)
	case MsgPlayerUpdate:
		return decodeAs[PlayerUpdate](data)
	case MsgBulletFired:
		return decodeAs[BulletFired](data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, probe.Type)
	}
}

type validated interface {
	Inbound
	validate() error
}

func decodeAs[T validated](data []byte) (Inbound, error) {
	var m T
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return m, nil
}
