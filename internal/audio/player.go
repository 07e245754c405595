// internal/audio/player.go
package audio

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"

	"tank-arena/internal/interfaces"
	"tank-arena/internal/logging"

	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog"
)

// formatFloat32LE — формат сэмплов oto: 32-bit float little endian.
const formatFloat32LE = 0

// maxExplosions ограничивает одновременные взрывы, иначе звук клиппирует.
const maxExplosions = 2

// Player plays procedural effects on an oto context. Play never blocks.
type Player struct {
	ctx        *oto.Context
	ready      chan struct{}
	volume     float64
	explosions atomic.Int32
	log        zerolog.Logger
}

// NewPlayer opens the audio device. Only one oto context may exist per process.
func NewPlayer(volume float64, log zerolog.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, formatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	return &Player{
		ctx:    ctx,
		ready:  ready,
		volume: clamp(volume, 0, 1),
		log:    logging.For(log, "audio"),
	}, nil
}

// Play запускает клип в отдельной горутине.
func (p *Player) Play(sound string, pan float64) {
	select {
	case <-p.ready:
	default:
		return
	}
	explosion := sound == interfaces.SoundExplosion
	if explosion {
		if p.explosions.Add(1) > maxExplosions {
			p.explosions.Add(-1)
			return
		}
	}
	clip := Render(sound, pan)
	if len(clip) == 0 {
		if explosion {
			p.explosions.Add(-1)
		}
		p.log.Debug().Str("sound", sound).Msg("no clip")
		return
	}

	go func() {
		if explosion {
			defer p.explosions.Add(-1)
		}
		player := p.ctx.NewPlayer(bytes.NewReader(clip))
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.log.Warn().Err(err).Msg("close player")
		}
	}()
}
