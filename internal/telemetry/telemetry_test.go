package telemetry

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"tank-arena/internal/defs"
	"tank-arena/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type fakeCounter struct {
	noop.Int64Counter
	total int64
	attrs []attribute.Set
}

func (c *fakeCounter) Add(_ context.Context, incr int64, opts ...metric.AddOption) {
	c.total += incr
	c.attrs = append(c.attrs, metric.NewAddConfig(opts).Attributes())
}

type fakeMeter struct {
	noop.Meter
	counters map[string]*fakeCounter
	fail     string
}

func (m *fakeMeter) Int64Counter(name string, _ ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	if name == m.fail {
		return nil, errors.New("boom")
	}
	c := &fakeCounter{}
	m.counters[name] = c
	return c, nil
}

func newFakeMeter() *fakeMeter {
	return &fakeMeter{counters: map[string]*fakeCounter{}}
}

func TestRecorder_CountsEvents(t *testing.T) {
	m := newFakeMeter()
	r, err := NewRecorder(m)
	require.NoError(t, err)

	r.OnEvent(event.Event{Type: event.BulletFired, Data: event.FirePayload{Player: 1, Bullets: 5, Spread: true}})
	r.OnEvent(event.Event{Type: event.BulletFired, Data: event.FirePayload{Player: 2, Bullets: 1}})
	r.OnEvent(event.Event{Type: event.TankDamaged, Data: event.HitPayload{Shooter: 1, Victim: 2, Explosive: true}})
	r.OnEvent(event.Event{Type: event.ShieldAbsorbed, Data: event.ShieldPayload{Player: 2}})
	r.OnEvent(event.Event{Type: event.ExplosionDetonated, Data: event.ExplosionPayload{Radius: 3}})
	r.OnEvent(event.Event{Type: event.PowerUpCollected, Data: event.PowerUpPayload{Kind: defs.PowerUpShield}})
	r.OnEvent(event.Event{Type: event.BulletDestroyed, Data: event.BulletPayload{Cause: "wall"}})
	r.OnEvent(event.Event{Type: event.MatchWon, Data: event.MatchPayload{Winner: 1}})
	r.OnEvent(event.Event{Type: event.ScoreChanged, Data: event.ScorePayload{Player: 1, Score: 1}})

	assert.EqualValues(t, 6, m.counters["tank_arena.bullets.fired"].total)
	assert.EqualValues(t, 1, m.counters["tank_arena.tanks.damaged"].total)
	assert.EqualValues(t, 1, m.counters["tank_arena.shield.absorbed"].total)
	assert.EqualValues(t, 1, m.counters["tank_arena.explosions"].total)
	assert.EqualValues(t, 1, m.counters["tank_arena.powerups.collected"].total)
	assert.EqualValues(t, 1, m.counters["tank_arena.bullets.destroyed"].total)
	assert.EqualValues(t, 1, m.counters["tank_arena.matches.won"].total)

	spread, ok := m.counters["tank_arena.bullets.fired"].attrs[0].Value("spread")
	require.True(t, ok)
	assert.True(t, spread.AsBool())
	cause, _ := m.counters["tank_arena.bullets.destroyed"].attrs[0].Value("cause")
	assert.Equal(t, "wall", cause.AsString())
}

func TestNewRecorder_PropagatesErrors(t *testing.T) {
	m := newFakeMeter()
	m.fail = "tank_arena.explosions"
	_, err := NewRecorder(m)
	assert.ErrorContains(t, err, "tank_arena.explosions")
}

func TestRecorder_ExportsThroughSDK(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	r, err := NewRecorder(mp.Meter(instrumentationName))
	require.NoError(t, err)
	r.OnEvent(event.Event{Type: event.BulletFired, Data: event.FirePayload{Player: 1, Bullets: 5, Spread: true}})
	r.OnEvent(event.Event{Type: event.BulletFired, Data: event.FirePayload{Player: 1, Bullets: 1}})

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "tank_arena.bullets.fired" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	assert.EqualValues(t, 6, total)
}

func TestProvider_FlushesOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewProvider(Config{Enabled: true, Interval: time.Hour, Writer: &buf})
	require.NoError(t, err)
	require.True(t, p.Enabled())

	r, err := NewRecorder(p.Meter())
	require.NoError(t, err)
	r.OnEvent(event.Event{Type: event.MatchWon, Data: event.MatchPayload{Winner: 2}})

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "tank_arena.matches.won")
}

func TestProvider_Disabled(t *testing.T) {
	p, err := NewProvider(Config{})
	require.NoError(t, err)
	assert.False(t, p.Enabled())

	r, err := NewRecorder(p.Meter())
	require.NoError(t, err)
	r.OnEvent(event.Event{Type: event.MatchWon, Data: event.MatchPayload{Winner: 1}})
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestProvider_RequiresWriter(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true})
	assert.Error(t, err)
}
