// internal/audio/synth.go
package audio

import (
	"math"

	"tank-arena/internal/interfaces"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8 // стерео float32
)

// Render synthesizes the clip of a sound id panned to pan in [-1, 1].
// Unknown ids render nothing.
func Render(sound string, pan float64) []byte {
	var mono []float64
	switch sound {
	case interfaces.SoundFire:
		mono = genFire()
	case interfaces.SoundExplosion:
		mono = genExplosion()
	case interfaces.SoundHit:
		mono = genHit()
	case interfaces.SoundShieldBreak:
		mono = genShieldBreak()
	case interfaces.SoundPickup:
		mono = genPickup()
	default:
		return nil
	}
	return stereo(mono, pan)
}

// stereo раскладывает моно-сигнал по каналам с равной мощностью.
func stereo(mono []float64, pan float64) []byte {
	pan = clamp(pan, -1, 1)
	angle := (pan + 1) * math.Pi / 4
	left, right := math.Cos(angle), math.Sin(angle)

	buf := make([]byte, len(mono)*frameBytes)
	for i, s := range mono {
		s = softSat(s)
		putF32(buf[i*frameBytes:], s*left)
		putF32(buf[i*frameBytes+4:], s*right)
	}
	return buf
}

func putF32(buf []byte, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
}

func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// adsr — огибающая в долях длительности.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// noise — детерминированный шум, чтобы клипы были воспроизводимыми.
func noise(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func samples(seconds float64) int {
	return int(seconds * SampleRate)
}

// genFire: короткий хлопок ствола.
func genFire() []float64 {
	n := samples(0.12)
	out := make([]float64, n)
	seed := uint64(1771)
	for i := range out {
		p := float64(i) / float64(n)
		t := float64(i) / SampleRate
		crack := noise(&seed) * math.Exp(-p*25) * 0.6
		body := math.Sin(2*math.Pi*(220-120*p)*t) * math.Exp(-p*9) * 0.5
		out[i] = crack + body
	}
	return out
}

// genExplosion: низкий удар и шумовой хвост.
func genExplosion() []float64 {
	n := samples(0.5)
	out := make([]float64, n)
	seed := uint64(90210)
	lp1, lp2, phase := 0.0, 0.0, 0.0
	for i := range out {
		p := float64(i) / float64(n)
		freq := 140 * math.Pow(30.0/140.0, p*1.8)
		phase += 2 * math.Pi * freq / SampleRate
		sub := math.Sin(phase) * math.Exp(-p*6) * 0.55

		raw := noise(&seed)
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*5) * 0.4
		out[i] = (sub + body) * 0.9
	}
	return out
}

// genHit: металлический звон попадания.
func genHit() []float64 {
	n := samples(0.25)
	out := make([]float64, n)
	for i := range out {
		p := float64(i) / float64(n)
		t := float64(i) / SampleRate
		env := adsr(p, 0.01, 0.4, 0.2, 0.4)
		out[i] = fm(t, 330, 3.5, 4*env) * env * 0.5
	}
	return out
}

// genShieldBreak: нисходящий «стеклянный» перелив.
func genShieldBreak() []float64 {
	n := samples(0.35)
	out := make([]float64, n)
	seed := uint64(4242)
	for i := range out {
		p := float64(i) / float64(n)
		t := float64(i) / SampleRate
		env := math.Exp(-p * 5)
		freq := 1400 - 900*p
		out[i] = (fm(t, freq, 2.7, 3*env)*0.4 + noise(&seed)*0.15*math.Exp(-p*20)) * env
	}
	return out
}

// genPickup: восходящее арпеджио.
func genPickup() []float64 {
	freqs := []float64{523.25, 659.25, 783.99}
	note := samples(0.07)
	tail := samples(0.12)
	out := make([]float64, len(freqs)*note+tail)
	for fi, freq := range freqs {
		start := fi * note
		dur := len(out) - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			env := adsr(float64(j)/float64(dur), 0.004, 0.55, 0.05, 0.35)
			out[start+j] += fm(t, freq, 2.756, 5*env) * env * 0.35
		}
	}
	return out
}
