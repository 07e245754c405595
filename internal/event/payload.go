// internal/event/payload.go
package event

import (
	"tank-arena/internal/defs"
	"tank-arena/internal/types"
	"tank-arena/internal/utils"
)

// FirePayload accompanies BulletFired.
type FirePayload struct {
	Tank      types.EntityID `json:"tank"`
	Player    int            `json:"player"`
	Bullets   int            `json:"bullets"`
	Spread    bool           `json:"spread"`
	Explosive bool           `json:"explosive"`
}

// HitPayload accompanies TankHit and TankDamaged.
type HitPayload struct {
	Bullet    types.EntityID `json:"bullet"`
	Shooter   int            `json:"shooter"`
	Target    types.EntityID `json:"target"`
	Victim    int            `json:"victim"`
	Explosive bool           `json:"explosive"`
}

// ShieldPayload accompanies the shield events.
type ShieldPayload struct {
	Tank   types.EntityID `json:"tank"`
	Player int            `json:"player"`
}

// BulletPayload accompanies BulletDestroyed.
type BulletPayload struct {
	Bullet types.EntityID `json:"bullet"`
	Owner  int            `json:"owner"`
	Cause  string         `json:"cause"`
}

// ExplosionPayload accompanies ExplosionDetonated.
type ExplosionPayload struct {
	Center  utils.Vec2       `json:"center"`
	Radius  float64          `json:"radius"`
	Owner   int              `json:"owner"`
	Targets []types.EntityID `json:"targets"`
}

// PowerUpPayload accompanies the power-up events.
type PowerUpPayload struct {
	PowerUp types.EntityID   `json:"powerUp"`
	Kind    defs.PowerUpKind `json:"kind"`
	Pos     utils.Vec2       `json:"pos"`
	Player  int              `json:"player,omitempty"`
}

// ScorePayload accompanies ScoreChanged.
type ScorePayload struct {
	Player int `json:"player"`
	Score  int `json:"score"`
}

// MatchPayload accompanies MatchWon and MatchReset.
type MatchPayload struct {
	Match  string      `json:"match,omitempty"`
	Winner int         `json:"winner,omitempty"`
	Scores map[int]int `json:"scores,omitempty"`
}
