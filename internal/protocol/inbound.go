package protocol

import "errors"

// CreateRoom allocates a new room with the submitter as its first player.
type CreateRoom struct {
	PlayerName string `json:"playerName"`
}

func (CreateRoom) inbound() {}

func (m CreateRoom) validate() error {
	if m.PlayerName == "" {
		return errors.New("create_room: missing playerName")
	}
	return nil
}

// JoinRoom joins an existing room by code.
type JoinRoom struct {
	Code       string `json:"code"`
	PlayerName string `json:"playerName"`
}

func (JoinRoom) inbound() {}

func (m JoinRoom) validate() error {
	if m.Code == "" {
		return errors.New("join_room: missing code")
	}
	if m.PlayerName == "" {
		return errors.New("join_room: missing playerName")
	}
	return nil
}

// PlayerUpdate overwrites the submitter's server-side state. Fields are
// pointers so a missing field is distinguishable from a zero value.
type PlayerUpdate struct {
	Position *[3]float64 `json:"position"`
	Rotation *[3]float64 `json:"rotation"`
	Health   *int        `json:"health"`
}

func (PlayerUpdate) inbound() {}

func (m PlayerUpdate) validate() error {
	if m.Position == nil {
		return errors.New("player_update: missing position")
	}
	if m.Rotation == nil {
		return errors.New("player_update: missing rotation")
	}
	if m.Health == nil {
		return errors.New("player_update: missing health")
	}
	return nil
}

// BulletFired reports a shot. The id is a client-generated unique string;
// the server namespaces it by shooter before storing.
type BulletFired struct {
	ID        string      `json:"id"`
	Position  *[3]float64 `json:"position"`
	Direction *[3]float64 `json:"direction"`
	Weapon    string      `json:"weapon"`
}

func (BulletFired) inbound() {}

func (m BulletFired) validate() error {
	if m.ID == "" {
		return errors.New("bullet_fired: missing id")
	}
	if m.Position == nil {
		return errors.New("bullet_fired: missing position")
	}
	if m.Direction == nil {
		return errors.New("bullet_fired: missing direction")
	}
	if m.Weapon == "" {
		return errors.New("bullet_fired: missing weapon")
	}
	return nil
}
