package protocol

import (
	"errors"
	"testing"
)

func TestDecodeInboundKinds(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want any
	}{
		{
			name: "create_room",
			raw:  `{"type":"create_room","playerName":"alice"}`,
			want: CreateRoom{PlayerName: "alice"},
		},
		{
			name: "join_room",
			raw:  `{"type":"join_room","code":"AB23CD","playerName":"bob"}`,
			want: JoinRoom{Code: "AB23CD", PlayerName: "bob"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeInbound([]byte(tc.raw))
			if err != nil {
				t.Fatalf("DecodeInbound: %v", err)
			}
			if got != tc.want {
				t.Fatalf("decoded %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestDecodePlayerUpdate(t *testing.T) {
	raw := `{"type":"player_update","position":[1,2,3],"rotation":[0,1.5,0],"health":80}`
	got, err := DecodeInbound([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeInbound: %v", err)
	}
	m, ok := got.(PlayerUpdate)
	if !ok {
		t.Fatalf("decoded %T, want PlayerUpdate", got)
	}
	if *m.Position != [3]float64{1, 2, 3} || *m.Rotation != [3]float64{0, 1.5, 0} || *m.Health != 80 {
		t.Fatalf("decoded fields %v %v %v", *m.Position, *m.Rotation, *m.Health)
	}
}

func TestDecodePlayerUpdateZeroHealth(t *testing.T) {
	// health:0 is present, not missing; the pointer field must keep them
	// apart.
	raw := `{"type":"player_update","position":[0,0,0],"rotation":[0,0,0],"health":0}`
	got, err := DecodeInbound([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeInbound: %v", err)
	}
	m := got.(PlayerUpdate)
	if m.Health == nil || *m.Health != 0 {
		t.Fatalf("health pointer = %v", m.Health)
	}
}

func TestDecodeBulletFired(t *testing.T) {
	raw := `{"type":"bullet_fired","id":"42","position":[1,2,3],"direction":[0,0,1],"weapon":"rifle"}`
	got, err := DecodeInbound([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeInbound: %v", err)
	}
	m, ok := got.(BulletFired)
	if !ok {
		t.Fatalf("decoded %T, want BulletFired", got)
	}
	if m.ID != "42" || m.Weapon != "rifle" || *m.Direction != [3]float64{0, 0, 1} {
		t.Fatalf("decoded %#v", m)
	}
}

func TestDecodeUnknownType(t *testing.T) {
	_, err := DecodeInbound([]byte(`{"type":"teleport"}`))
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `{"type":`},
		{"wrong field type", `{"type":"create_room","playerName":7}`},
		{"create missing name", `{"type":"create_room"}`},
		{"join missing code", `{"type":"join_room","playerName":"bob"}`},
		{"update missing rotation", `{"type":"player_update","position":[0,0,0],"health":100}`},
		{"bullet missing direction", `{"type":"bullet_fired","id":"1","position":[0,0,0],"weapon":"pistol"}`},
		{"bullet missing id", `{"type":"bullet_fired","position":[0,0,0],"direction":[0,0,1],"weapon":"pistol"}`},
		{"vector not an array", `{"type":"bullet_fired","id":"1","position":"origin","direction":[0,0,1],"weapon":"pistol"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeInbound([]byte(tc.raw))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("err = %v, want ErrMalformed", err)
			}
		})
	}
}
