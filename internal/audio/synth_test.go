package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"tank-arena/internal/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(buf []byte, i int) (left, right float32) {
	l := binary.LittleEndian.Uint32(buf[i*frameBytes:])
	r := binary.LittleEndian.Uint32(buf[i*frameBytes+4:])
	return math.Float32frombits(l), math.Float32frombits(r)
}

func TestRender_EverySoundHasAClip(t *testing.T) {
	for _, sound := range []string{
		interfaces.SoundFire,
		interfaces.SoundExplosion,
		interfaces.SoundHit,
		interfaces.SoundShieldBreak,
		interfaces.SoundPickup,
	} {
		clip := Render(sound, 0)
		require.NotEmpty(t, clip, sound)
		assert.Zero(t, len(clip)%frameBytes, sound)
		assert.Less(t, len(clip)/frameBytes, SampleRate, "%s longer than a second", sound)
	}
	assert.Nil(t, Render("unknown", 0))
}

func TestRender_SamplesStayInRange(t *testing.T) {
	clip := Render(interfaces.SoundExplosion, 0)
	for i := 0; i < len(clip)/frameBytes; i++ {
		l, r := frame(clip, i)
		require.LessOrEqual(t, math.Abs(float64(l)), 1.0)
		require.LessOrEqual(t, math.Abs(float64(r)), 1.0)
	}
}

func TestRender_Pan(t *testing.T) {
	energy := func(clip []byte) (l, r float64) {
		for i := 0; i < len(clip)/frameBytes; i++ {
			fl, fr := frame(clip, i)
			l += float64(fl) * float64(fl)
			r += float64(fr) * float64(fr)
		}
		return l, r
	}

	l, r := energy(Render(interfaces.SoundHit, -1))
	assert.Greater(t, l, 0.0)
	assert.InDelta(t, 0, r, 1e-9)

	l, r = energy(Render(interfaces.SoundHit, 1))
	assert.InDelta(t, 0, l, 1e-9)
	assert.Greater(t, r, 0.0)

	l, r = energy(Render(interfaces.SoundHit, 0))
	assert.InDelta(t, l, r, l*1e-6)

	// вне диапазона — как крайнее значение
	assert.Equal(t, Render(interfaces.SoundFire, 1), Render(interfaces.SoundFire, 5))
}

func TestRender_Deterministic(t *testing.T) {
	assert.Equal(t, Render(interfaces.SoundExplosion, 0.3), Render(interfaces.SoundExplosion, 0.3))
}
