//go:build ebiten

package audio

import (
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Player plays synthesised tones through ebiten's audio context.
type Player struct {
	ctx   *ebaudio.Context
	env   Envelope
	cache map[float64][]byte
}

// NewPlayer creates the process-wide audio context. It must be called at most once.
func NewPlayer(env Envelope) *Player {
	return &Player{ctx: ebaudio.NewContext(SampleRate), env: env, cache: map[float64][]byte{}}
}

// Play starts a tone. Overlapping tones are mixed by the context.
func (p *Player) Play(freq float64) {
	pcm, ok := p.cache[freq]
	if !ok {
		pcm = p.env.Synth(freq)
		p.cache[freq] = pcm
	}
	p.ctx.NewPlayerFromBytes(pcm).Play()
}
