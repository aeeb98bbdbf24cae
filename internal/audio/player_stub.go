//go:build !ebiten

package audio

// Player is a silent placeholder for headless builds.
type Player struct{}

// NewPlayer returns a Player that discards tones.
func NewPlayer(Envelope) *Player { return &Player{} }

// Play is a no-op in headless builds.
func (p *Player) Play(float64) {}
