package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lifebox/pkg/life"
)

type recorder struct{ tones []float64 }

func (r *recorder) Play(freq float64) { r.tones = append(r.tones, freq) }

func TestStepTones(t *testing.T) {
	both := life.StepResult{Births: []life.Point{{X: 1, Y: 1}}, Deaths: []life.Point{{X: 2, Y: 2}}}
	assert.Equal(t, []float64{ToneBirth, ToneDeath}, StepTones(both))
	assert.Equal(t, []float64{ToneDeath}, StepTones(life.StepResult{Deaths: []life.Point{{X: 0, Y: 0}}}))
	assert.Empty(t, StepTones(life.StepResult{}))
}

func TestPressTone(t *testing.T) {
	assert.Equal(t, ToneGlider, PressTone(life.PressResult{Mode: life.ModePattern, Pattern: life.PatternGlider}))
	assert.Equal(t, ToneEdit, PressTone(life.PressResult{Mode: life.ModePattern, Pattern: life.PatternPulsar}))
	assert.Equal(t, ToneEdit, PressTone(life.PressResult{Mode: life.ModeSingle}))
	assert.Equal(t, ToneEdit, PressTone(life.PressResult{Mode: life.ModeToggle}))
}

func TestFeedbackDisabledByDefault(t *testing.T) {
	rec := &recorder{}
	fb := NewFeedback(rec)
	fb.Step(life.StepResult{Births: []life.Point{{X: 0, Y: 0}}})
	fb.Press(life.PressResult{})
	assert.Empty(t, rec.tones)

	assert.True(t, fb.Toggle())
	fb.Step(life.StepResult{Births: []life.Point{{X: 0, Y: 0}}})
	fb.Press(life.PressResult{Mode: life.ModeSingle})
	assert.Equal(t, []float64{ToneBirth, ToneEdit}, rec.tones)

	fb.SetEnabled(false)
	fb.Press(life.PressResult{})
	assert.Len(t, rec.tones, 2)
}

func TestEnvelopeLevels(t *testing.T) {
	env := DefaultEnvelope()
	assert.Equal(t, 101*time.Millisecond, env.Duration())
	assert.Zero(t, env.Level(0))
	assert.InDelta(t, 0.25, env.Level(500*time.Microsecond), 1e-9)
	assert.InDelta(t, 0.5, env.Level(time.Millisecond), 1e-9)
	assert.InDelta(t, 0.25, env.Level(26*time.Millisecond), 1e-9)
	assert.Zero(t, env.Level(60*time.Millisecond))
	assert.Zero(t, env.Level(time.Second))
}

func TestSynthLayout(t *testing.T) {
	env := DefaultEnvelope()
	pcm := env.Synth(ToneEdit)
	frames := int(env.Duration() * SampleRate / time.Second)
	assert.Len(t, pcm, frames*4)

	peak := 0
	for i := 0; i < frames; i++ {
		l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
		assert.Equal(t, l, r, "frame %d channels differ", i)
		peak = max(peak, int(l), -int(l))
	}
	assert.Positive(t, peak)
	assert.LessOrEqual(t, peak, 16384)
}
