// Package audio turns engine events into short tones.
package audio

import "lifebox/pkg/life"

// Tone frequencies in Hz.
const (
	ToneBirth  = 900.0
	ToneDeath  = 300.0
	ToneEdit   = 600.0
	ToneGlider = 900.0
)

// Sink plays a single tone at the given frequency.
type Sink interface {
	Play(freq float64)
}

// Feedback forwards step and edit events to a Sink while sound is enabled.
// Sound starts disabled.
type Feedback struct {
	sink    Sink
	enabled bool
}

// NewFeedback returns a disabled Feedback writing to sink.
func NewFeedback(sink Sink) *Feedback {
	return &Feedback{sink: sink}
}

// Enabled reports whether tones are played.
func (f *Feedback) Enabled() bool { return f.enabled }

// SetEnabled turns sound on or off.
func (f *Feedback) SetEnabled(on bool) { f.enabled = on }

// Toggle flips sound and returns the new setting.
func (f *Feedback) Toggle() bool {
	f.enabled = !f.enabled
	return f.enabled
}

// Step plays a high tone if any cell was born and a low tone if any died.
func (f *Feedback) Step(res life.StepResult) {
	for _, freq := range StepTones(res) {
		f.play(freq)
	}
}

// Press plays the tone for a manual edit.
func (f *Feedback) Press(res life.PressResult) {
	f.play(PressTone(res))
}

func (f *Feedback) play(freq float64) {
	if !f.enabled || f.sink == nil {
		return
	}
	f.sink.Play(freq)
}

// StepTones lists the tones a generation produces, births first.
func StepTones(res life.StepResult) []float64 {
	var tones []float64
	if res.AnyBirths() {
		tones = append(tones, ToneBirth)
	}
	if res.AnyDeaths() {
		tones = append(tones, ToneDeath)
	}
	return tones
}

// PressTone returns the tone for a manual edit. Gliders get the high tone.
func PressTone(res life.PressResult) float64 {
	if res.Mode == life.ModePattern && res.Pattern == life.PatternGlider {
		return ToneGlider
	}
	return ToneEdit
}
