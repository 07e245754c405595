// internal/app/presenter.go
package app

import (
	"image/color"

	"tank-arena/internal/component"
	"tank-arena/internal/config"
	"tank-arena/internal/defs"
	"tank-arena/internal/entity"
	"tank-arena/internal/interfaces"
	"tank-arena/internal/types"
	"tank-arena/internal/utils"
)

// SoundPlayer воспроизводит короткий звук; pan от -1 (слева) до 1 (справа).
type SoundPlayer interface {
	Play(sound string, pan float64)
}

// ScenePresenter turns presentation requests of the rules engine into
// short-lived scene entities and HUD state read by the ui package.
type ScenePresenter struct {
	ecs     *entity.ECS
	sound   SoundPlayer
	scores  map[int]int
	icons   map[types.EntityID]defs.PowerUpKind
	shields map[types.EntityID]bool
	winner  int
}

func NewScenePresenter(ecs *entity.ECS, sound SoundPlayer) *ScenePresenter {
	p := &ScenePresenter{ecs: ecs, sound: sound}
	p.Reset()
	return p
}

// Reset очищает HUD перед новым матчем.
func (p *ScenePresenter) Reset() {
	p.scores = make(map[int]int)
	p.icons = make(map[types.EntityID]defs.PowerUpKind)
	p.shields = make(map[types.EntityID]bool)
	p.winner = 0
}

func (p *ScenePresenter) SpawnEffect(req interfaces.EffectRequest) {
	if req.Lifetime <= 0 {
		return
	}
	now := p.ecs.GameTime
	id := p.ecs.NewEntity()
	p.ecs.Transforms[id] = &component.Transform{Pos: req.Pos}
	p.ecs.Renderables[id] = &component.Renderable{Color: effectColor(req.Kind)}
	p.ecs.Visuals[id] = &component.Visual{
		Kind:      req.Kind,
		Scale:     req.Scale,
		StartedAt: now,
		ExpiresAt: now + req.Lifetime,
	}
}

func effectColor(kind string) color.RGBA {
	switch kind {
	case interfaces.EffectPickup:
		return config.TextLightColor
	case interfaces.EffectShieldPop:
		return config.ShieldColor
	default:
		return config.ExplosionColor
	}
}

func (p *ScenePresenter) PlaySound(sound string, pos utils.Vec2) {
	if p.sound == nil {
		return
	}
	p.sound.Play(sound, utils.Clamp(pos.X/config.ArenaHalfWidth, -1, 1))
}

func (p *ScenePresenter) ShowScore(playerNumber, score int) {
	p.scores[playerNumber] = score
}

func (p *ScenePresenter) AttachShield(tank types.EntityID) {
	p.shields[tank] = true
}

func (p *ScenePresenter) DetachShield(tank types.EntityID) {
	delete(p.shields, tank)
}

func (p *ScenePresenter) SetIcon(tank types.EntityID, kind defs.PowerUpKind) {
	if kind == "" {
		delete(p.icons, tank)
		return
	}
	p.icons[tank] = kind
}

func (p *ScenePresenter) MatchOver(winner int) {
	p.winner = winner
}

// Score returns the last score shown for a player.
func (p *ScenePresenter) Score(playerNumber int) int {
	return p.scores[playerNumber]
}

// Icon returns the power-up glyph currently shown over a tank.
func (p *ScenePresenter) Icon(tank types.EntityID) (defs.PowerUpKind, bool) {
	kind, ok := p.icons[tank]
	return kind, ok
}

func (p *ScenePresenter) Shielded(tank types.EntityID) bool {
	return p.shields[tank]
}

// Winner returns the announced winner, 0 while the match is running.
func (p *ScenePresenter) Winner() int {
	return p.winner
}

var _ interfaces.Presenter = (*ScenePresenter)(nil)
