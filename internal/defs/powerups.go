// internal/defs/powerups.go
package defs

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrUnknownKind is returned for definitions with an unsupported kind.
var ErrUnknownKind = errors.New("unknown power-up kind")

// PowerUpDefinition holds the static parameters of one power-up kind.
//
// Strength is kind specific: bullet count for SPREAD_SHOT, explosion radius
// for EXPLOSIVE_BOMB, speed or fire-rate multiplier for the timed buffs.
// Duration is only used by timed effects (SHIELD, SPEED_BOOST, RAPID_FIRE).
type PowerUpDefinition struct {
	Kind     PowerUpKind `json:"kind"`
	Duration float64     `json:"duration"`
	Strength float64     `json:"strength"`
	Weight   int         `json:"weight"` // Вес при случайном выборе спавнером
	Visuals  Visuals     `json:"visuals"`
}

// Visuals contains parameters for rendering a pickup.
type Visuals struct {
	Color color.RGBA `json:"color"`
}

// Catalog maps power-up kinds to their definitions.
type Catalog struct {
	defs  map[PowerUpKind]PowerUpDefinition
	order []PowerUpKind
}

// NewCatalog validates definitions and builds a catalog. Later duplicates
// replace earlier ones but keep the first position.
func NewCatalog(list []PowerUpDefinition) (*Catalog, error) {
	c := &Catalog{defs: make(map[PowerUpKind]PowerUpDefinition, len(list))}
	for _, def := range list {
		if !def.Kind.Known() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, def.Kind)
		}
		if def.Weight < 0 {
			return nil, fmt.Errorf("power-up %s: negative weight %d", def.Kind, def.Weight)
		}
		if _, exists := c.defs[def.Kind]; !exists {
			c.order = append(c.order, def.Kind)
		}
		c.defs[def.Kind] = def
	}
	return c, nil
}

// DefaultCatalog returns the built-in power-up set.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultPowerUps())
	if err != nil {
		panic(err) // встроенные определения всегда валидны
	}
	return c
}

// DefaultPowerUps returns the built-in definitions.
func DefaultPowerUps() []PowerUpDefinition {
	return []PowerUpDefinition{
		{Kind: PowerUpSpreadShot, Strength: 5, Weight: 40, Visuals: Visuals{Color: color.RGBA{255, 215, 0, 255}}},
		{Kind: PowerUpShield, Duration: 8, Weight: 30, Visuals: Visuals{Color: color.RGBA{80, 170, 255, 255}}},
		{Kind: PowerUpExplosiveBomb, Strength: 3, Weight: 30, Visuals: Visuals{Color: color.RGBA{255, 90, 40, 255}}},
		{Kind: PowerUpSpeedBoost, Duration: 5, Strength: 2, Weight: 10, Visuals: Visuals{Color: color.RGBA{90, 230, 120, 255}}},
		{Kind: PowerUpRapidFire, Duration: 5, Strength: 2, Weight: 10, Visuals: Visuals{Color: color.RGBA{220, 90, 230, 255}}},
	}
}

// Get looks up a definition by kind.
func (c *Catalog) Get(kind PowerUpKind) (PowerUpDefinition, bool) {
	def, ok := c.defs[kind]
	return def, ok
}

// All returns the definitions in load order.
func (c *Catalog) All() []PowerUpDefinition {
	out := make([]PowerUpDefinition, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.defs[k])
	}
	return out
}
