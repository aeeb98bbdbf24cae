package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// SampleRate is the PCM sample rate used for synthesised tones.
const SampleRate = 44100

// Envelope is a one-shot ADSR amplitude envelope. The sustain stage has no
// duration: the level decays to Sustain*Peak and is immediately released.
type Envelope struct {
	Attack  time.Duration
	Decay   time.Duration
	Sustain float64
	Release time.Duration
	Peak    float64
}

// DefaultEnvelope is a short click: 1ms attack, 50ms decay to silence.
func DefaultEnvelope() Envelope {
	return Envelope{
		Attack:  time.Millisecond,
		Decay:   50 * time.Millisecond,
		Sustain: 0,
		Release: 50 * time.Millisecond,
		Peak:    0.5,
	}
}

// Duration is the total length of the tone.
func (e Envelope) Duration() time.Duration {
	return e.Attack + e.Decay + e.Release
}

// Level returns the amplitude at time t since note on.
func (e Envelope) Level(t time.Duration) float64 {
	sustain := e.Sustain * e.Peak
	switch {
	case t < 0:
		return 0
	case t < e.Attack:
		return e.Peak * float64(t) / float64(e.Attack)
	case t < e.Attack+e.Decay:
		frac := float64(t-e.Attack) / float64(e.Decay)
		return e.Peak + (sustain-e.Peak)*frac
	case t < e.Duration():
		frac := float64(t-e.Attack-e.Decay) / float64(e.Release)
		return sustain * (1 - frac)
	default:
		return 0
	}
}

// Synth renders a sine tone shaped by the envelope as 16-bit little-endian
// stereo PCM at SampleRate.
func (e Envelope) Synth(freq float64) []byte {
	n := int(e.Duration() * SampleRate / time.Second)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := time.Duration(i) * time.Second / SampleRate
		v := e.Level(t) * math.Sin(2*math.Pi*freq*float64(i)/SampleRate)
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}
