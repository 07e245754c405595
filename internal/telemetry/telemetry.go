// internal/telemetry/telemetry.go
package telemetry

import (
	"context"
	"fmt"

	"tank-arena/internal/event"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "tank-arena/internal/telemetry"

// Recorder переводит игровые события в счётчики OpenTelemetry.
type Recorder struct {
	shots      metric.Int64Counter
	hits       metric.Int64Counter
	absorbs    metric.Int64Counter
	explosions metric.Int64Counter
	pickups    metric.Int64Counter
	destroyed  metric.Int64Counter
	wins       metric.Int64Counter
}

func NewRecorder(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}
	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&r.shots, "tank_arena.bullets.fired", "Bullets fired"},
		{&r.hits, "tank_arena.tanks.damaged", "Hits that stunned a tank"},
		{&r.absorbs, "tank_arena.shield.absorbed", "Hits absorbed by a shield"},
		{&r.explosions, "tank_arena.explosions", "Explosive bullet detonations"},
		{&r.pickups, "tank_arena.powerups.collected", "Power-ups collected"},
		{&r.destroyed, "tank_arena.bullets.destroyed", "Bullets removed, by cause"},
		{&r.wins, "tank_arena.matches.won", "Matches won"},
	}
	for _, c := range counters {
		counter, err := m.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("creating %s counter: %w", c.name, err)
		}
		*c.dst = counter
	}
	return r, nil
}

func (r *Recorder) OnEvent(e event.Event) {
	ctx := context.Background()
	switch e.Type {
	case event.BulletFired:
		p, _ := e.Data.(event.FirePayload)
		r.shots.Add(ctx, int64(p.Bullets), metric.WithAttributes(
			attribute.Int("player", p.Player),
			attribute.Bool("spread", p.Spread),
		))
	case event.TankDamaged:
		p, _ := e.Data.(event.HitPayload)
		r.hits.Add(ctx, 1, metric.WithAttributes(
			attribute.Int("shooter", p.Shooter),
			attribute.Bool("explosive", p.Explosive),
		))
	case event.ShieldAbsorbed:
		r.absorbs.Add(ctx, 1)
	case event.ExplosionDetonated:
		r.explosions.Add(ctx, 1)
	case event.PowerUpCollected:
		p, _ := e.Data.(event.PowerUpPayload)
		r.pickups.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(p.Kind))))
	case event.BulletDestroyed:
		p, _ := e.Data.(event.BulletPayload)
		r.destroyed.Add(ctx, 1, metric.WithAttributes(attribute.String("cause", p.Cause)))
	case event.MatchWon:
		p, _ := e.Data.(event.MatchPayload)
		r.wins.Add(ctx, 1, metric.WithAttributes(attribute.Int("winner", p.Winner)))
	}
}
