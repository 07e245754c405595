// internal/system/rules.go
package system

import "tank-arena/internal/utils"

// Rules — набор систем правил игры, связанных между собой.
type Rules struct {
	Shields    *ShieldSystem
	Effects    *PowerUpEffectSystem
	Explosions *ExplosionResolver
	Bullets    *BulletSystem
	Tanks      *TankSystem
	Scorer     *MatchScorer
	Pickups    *PickupSystem
	Spawner    *PowerUpSpawner
	Movement   *MovementSystem
	Collisions *CollisionSystem
	Visuals    *VisualEffectSystem
}

// NewRules builds every gameplay system over ctx and wires their references.
func NewRules(ctx *Context, rng *utils.PRNGService) *Rules {
	r := &Rules{}
	r.Shields = NewShieldSystem(ctx)
	r.Effects = NewPowerUpEffectSystem(ctx, r.Shields)
	r.Explosions = NewExplosionResolver(ctx)
	r.Bullets = NewBulletSystem(ctx, r.Effects, r.Shields, r.Explosions)
	r.Tanks = NewTankSystem(ctx, r.Bullets, r.Effects)
	r.Bullets.SetTanks(r.Tanks)
	r.Explosions.SetTanks(r.Tanks)
	r.Scorer = NewMatchScorer(ctx)
	r.Pickups = NewPickupSystem(ctx, r.Effects)
	r.Spawner = NewPowerUpSpawner(ctx, rng)
	r.Movement = NewMovementSystem(ctx.ECS)
	r.Collisions = NewCollisionSystem(ctx, r.Bullets, r.Tanks, r.Pickups)
	r.Visuals = NewVisualEffectSystem(ctx.ECS)
	return r
}

// Step advances the simulation by one frame after input has been applied.
// The clock must already be advanced by the caller.
func (r *Rules) Step(deltaTime float64) {
	r.Movement.Update(deltaTime)
	r.Shields.Update(deltaTime)
	r.Collisions.Update(deltaTime)
	r.Bullets.Update(deltaTime)
	r.Tanks.Update(deltaTime)
	r.Effects.Update(deltaTime)
	r.Pickups.Update(deltaTime)
	r.Spawner.Update(deltaTime)
	r.Visuals.Update(deltaTime)
}
