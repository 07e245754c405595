package system

import (
	"fmt"
	"testing"

	"tank-arena/internal/component"
	"tank-arena/internal/config"
	"tank-arena/internal/defs"
	"tank-arena/internal/entity"
	"tank-arena/internal/event"
	"tank-arena/internal/interfaces"
	"tank-arena/internal/types"
	"tank-arena/internal/utils"

	"github.com/rs/zerolog"
)

const frame = 1.0 / 60

// fakePresenter records every request in call order.
type fakePresenter struct {
	calls    []string
	effects  []interfaces.EffectRequest
	sounds   []string
	scores   map[int]int
	attached []types.EntityID
	detached []types.EntityID
	icons    map[types.EntityID]defs.PowerUpKind
	iconSets int
	winners  []int
}

func newFakePresenter() *fakePresenter {
	return &fakePresenter{
		scores: make(map[int]int),
		icons:  make(map[types.EntityID]defs.PowerUpKind),
	}
}

func (p *fakePresenter) SpawnEffect(req interfaces.EffectRequest) {
	p.calls = append(p.calls, "effect:"+req.Kind)
	p.effects = append(p.effects, req)
}

func (p *fakePresenter) PlaySound(sound string, _ utils.Vec2) {
	p.calls = append(p.calls, "sound:"+sound)
	p.sounds = append(p.sounds, sound)
}

func (p *fakePresenter) ShowScore(player, score int) {
	p.calls = append(p.calls, fmt.Sprintf("score:%d=%d", player, score))
	p.scores[player] = score
}

func (p *fakePresenter) AttachShield(tank types.EntityID) {
	p.calls = append(p.calls, "attach")
	p.attached = append(p.attached, tank)
}

func (p *fakePresenter) DetachShield(tank types.EntityID) {
	p.calls = append(p.calls, "detach")
	p.detached = append(p.detached, tank)
}

func (p *fakePresenter) SetIcon(tank types.EntityID, kind defs.PowerUpKind) {
	p.calls = append(p.calls, "icon:"+string(kind))
	p.icons[tank] = kind
	p.iconSets++
}

func (p *fakePresenter) MatchOver(winner int) {
	p.calls = append(p.calls, fmt.Sprintf("over:%d", winner))
	p.winners = append(p.winners, winner)
}

func (p *fakePresenter) count(sound string) int {
	n := 0
	for _, s := range p.sounds {
		if s == sound {
			n++
		}
	}
	return n
}

// world is a small arena with the full rule set wired.
type world struct {
	t     *testing.T
	ecs   *entity.ECS
	ctx   *Context
	rules *Rules
	out   *fakePresenter
	log   []event.Event
}

func newWorld(t *testing.T, tweaks ...func(*config.Tuning)) *world {
	t.Helper()
	tuning := config.Default()
	tuning.Spawner.Enabled = false
	for _, tweak := range tweaks {
		tweak(tuning)
	}
	return newWorldWith(t, tuning, newFakePresenter())
}

func newWorldWith(t *testing.T, tuning *config.Tuning, out *fakePresenter) *world {
	return newWorldLogged(t, tuning, out, zerolog.Nop())
}

func newWorldLogged(t *testing.T, tuning *config.Tuning, out *fakePresenter, log zerolog.Logger) *world {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	var presenter interfaces.Presenter = interfaces.NopPresenter{}
	if out != nil {
		presenter = out
	}
	ctx := NewContext(ecs, dispatcher, presenter, tuning, defs.DefaultCatalog(), log)
	w := &world{t: t, ecs: ecs, ctx: ctx, out: out}
	dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		w.log = append(w.log, e)
	}))
	w.rules = NewRules(ctx, utils.NewPRNGService(7))
	return w
}

func (w *world) step(dt float64) {
	w.ecs.GameTime += dt
	w.rules.Step(dt)
}

// run advances the world frame by frame for the given seconds.
func (w *world) run(seconds float64) {
	for elapsed := 0.0; elapsed < seconds; elapsed += frame {
		w.step(frame)
	}
}

func (w *world) tank(player int, x, y, rotation float64) types.EntityID {
	return w.rules.Tanks.Register(player, utils.Vec2{X: x, Y: y}, rotation)
}

func (w *world) wall(x, y, halfX, halfY float64) types.EntityID {
	return w.solid(component.CategoryWall, x, y, halfX, halfY)
}

func (w *world) solid(category component.Category, x, y, halfX, halfY float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Transforms[id] = &component.Transform{Pos: utils.Vec2{X: x, Y: y}}
	w.ecs.Colliders[id] = &component.Collider{Category: category, HalfExtents: utils.Vec2{X: halfX, Y: halfY}}
	return id
}

func (w *world) events(eventType event.EventType) []event.Event {
	var out []event.Event
	for _, e := range w.log {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

func (w *world) destroyedCauses() []string {
	var out []string
	for _, e := range w.events(event.BulletDestroyed) {
		out = append(out, e.Data.(event.BulletPayload).Cause)
	}
	return out
}

func testTuning() *config.Tuning {
	tuning := config.Default()
	tuning.Spawner.Enabled = false
	return tuning
}
