// internal/history/recorder.go
package history

import (
	"context"
	"time"

	"tank-arena/internal/event"
	"tank-arena/internal/logging"

	"github.com/rs/zerolog"
)

const queueSize = 256

type op func(s *Store) error

// Recorder слушает события матча и пишет их в Store из отдельной горутины,
// чтобы игровой кадр не ждал диска.
type Recorder struct {
	store *Store
	queue chan op
	match string
	now   func() time.Time
	log   zerolog.Logger
}

func NewRecorder(store *Store, log zerolog.Logger) *Recorder {
	return &Recorder{
		store: store,
		queue: make(chan op, queueSize),
		now:   time.Now,
		log:   logging.For(log, "history"),
	}
}

// OnEvent runs on the game loop and never blocks: a full queue drops the record.
func (r *Recorder) OnEvent(e event.Event) {
	switch e.Type {
	case event.MatchReset:
		p, _ := e.Data.(event.MatchPayload)
		if p.Match == "" {
			return
		}
		prev, at := r.match, r.now()
		r.match = p.Match
		r.enqueue(func(s *Store) error {
			if prev != "" {
				if err := s.FinishMatch(prev, 0, at); err != nil {
					return err
				}
			}
			return s.StartMatch(p.Match, at)
		})
	case event.MatchWon:
		p, _ := e.Data.(event.MatchPayload)
		id, at := r.match, r.now()
		r.enqueue(func(s *Store) error { return s.FinishMatch(id, p.Winner, at) })
	case event.BulletFired:
		p, _ := e.Data.(event.FirePayload)
		id := r.match
		r.enqueue(func(s *Store) error { return s.AddShots(id, p.Bullets) })
	case event.TankDamaged:
		p, _ := e.Data.(event.HitPayload)
		hit := &Hit{MatchID: r.match, GameTime: e.Time, Shooter: p.Shooter, Victim: p.Victim, Explosive: p.Explosive}
		r.enqueue(func(s *Store) error { return s.RecordHit(hit) })
	case event.ShieldAbsorbed:
		p, _ := e.Data.(event.ShieldPayload)
		hit := &Hit{MatchID: r.match, GameTime: e.Time, Victim: p.Player, Absorbed: true}
		r.enqueue(func(s *Store) error { return s.RecordHit(hit) })
	case event.PowerUpCollected:
		p, _ := e.Data.(event.PowerUpPayload)
		pickup := &Pickup{MatchID: r.match, GameTime: e.Time, Player: p.Player, Kind: string(p.Kind)}
		r.enqueue(func(s *Store) error { return s.RecordPickup(pickup) })
	}
}

func (r *Recorder) enqueue(o op) {
	if r.match == "" {
		return
	}
	select {
	case r.queue <- o:
	default:
		r.log.Warn().Msg("history queue full, record dropped")
	}
}

// Run пишет записи до отмены ctx, затем дописывает остаток очереди.
func (r *Recorder) Run(ctx context.Context) error {
	for {
		select {
		case o := <-r.queue:
			r.apply(o)
		case <-ctx.Done():
			for {
				select {
				case o := <-r.queue:
					r.apply(o)
				default:
					return nil
				}
			}
		}
	}
}

func (r *Recorder) apply(o op) {
	if err := o(r.store); err != nil {
		r.log.Error().Err(err).Msg("history write failed")
	}
}
