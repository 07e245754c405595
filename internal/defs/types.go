// internal/defs/types.go
package defs

// PowerUpKind identifies a power-up effect.
type PowerUpKind string

const (
	PowerUpSpreadShot    PowerUpKind = "SPREAD_SHOT"
	PowerUpShield        PowerUpKind = "SHIELD"
	PowerUpExplosiveBomb PowerUpKind = "EXPLOSIVE_BOMB"
	PowerUpSpeedBoost    PowerUpKind = "SPEED_BOOST"
	PowerUpRapidFire     PowerUpKind = "RAPID_FIRE"
)

// Known reports whether k is one of the supported kinds.
func (k PowerUpKind) Known() bool {
	switch k {
	case PowerUpSpreadShot, PowerUpShield, PowerUpExplosiveBomb, PowerUpSpeedBoost, PowerUpRapidFire:
		return true
	}
	return false
}
