package anim

// Blend is a linear cross-fade between an outgoing and an incoming clip.
// Start is the outgoing clip's weight when the fade began (1 unless a previous
// fade was interrupted).
type Blend struct {
	Duration float32
	Elapsed  float32
	Start    float32
}

// NewBlend returns a blend that runs for duration seconds.
func NewBlend(duration, start float32) Blend {
	return Blend{Duration: duration, Start: start}
}

// Advance moves the blend forward by dt seconds.
func (b Blend) Advance(dt float32) Blend {
	b.Elapsed += dt
	if b.Elapsed > b.Duration {
		b.Elapsed = b.Duration
	}
	return b
}

// Progress is 0 at the start of the fade and 1 once it completes.
func (b Blend) Progress() float32 {
	if b.Duration <= 0 {
		return 1
	}
	p := b.Elapsed / b.Duration
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// Weights returns the influence of the outgoing and incoming clip.
func (b Blend) Weights() (from, to float32) {
	p := b.Progress()
	return b.Start * (1 - p), p
}

// Done reports whether the outgoing clip has fully faded out.
func (b Blend) Done() bool {
	return b.Elapsed >= b.Duration
}
