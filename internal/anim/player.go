package anim

import "github.com/chewxy/math32"

// Track is a clip plus its playback position.
type Track struct {
	Clip Clip
	Time float32
}

// advance moves the playback position forward and wraps it (repeat looping).
func (t Track) advance(dt float32) Track {
	t.Time += dt
	if t.Clip.Duration > 0 {
		t.Time = math32.Mod(t.Time, t.Clip.Duration)
	}
	return t
}

// Layer is one clip that contributes to the visible pose this frame.
type Layer struct {
	Clip   Clip
	Time   float32
	Weight float32
}

// Frame returns the sampled frame index for the layer's playback time.
func (l Layer) Frame() int {
	return l.Clip.Frame(l.Time)
}

// fadeOut is a clip on its way out. It keeps playing and ramps from the weight it had
// when it was replaced down to zero.
type fadeOut struct {
	track Track
	blend Blend
}

func (f fadeOut) weight() float32 {
	w, _ := f.blend.Weights()
	return w
}

// Player plays one current clip and every clip still fading out behind it.
// Each clip ramps on its own, so interrupting a fade never drops a visible layer.
// It is a value type: every method returns the updated player.
type Player struct {
	current Track
	in      Blend
	fading  []fadeOut
}

// NewPlayer starts playing initial from time 0 at full weight.
func NewPlayer(initial Clip) Player {
	return Player{current: Track{Clip: initial}}
}

// Current is the clip the player switched to most recently.
func (p Player) Current() Clip {
	return p.current.Clip
}

// Blend returns the fade-in of the current clip and whether any clip is still fading out.
func (p Player) Blend() (Blend, bool) {
	return p.in, len(p.fading) > 0
}

// CrossFade restarts to from time 0 and fades it in over duration seconds. The clip
// that was current fades out over the same time from the weight it had; clips already
// fading out keep their own ramps. Current switches to to immediately. Fading to the
// clip that is already current is a no-op. A zero duration switches without a fade.
func (p Player) CrossFade(to Clip, duration float32) Player {
	if to == p.current.Clip {
		return p
	}
	if duration <= 0 {
		return Player{current: Track{Clip: to}}
	}
	fading := make([]fadeOut, 0, len(p.fading)+1)
	fading = append(fading, p.fading...)
	if _, w := p.in.Weights(); w > 0 {
		fading = append(fading, fadeOut{track: p.current, blend: NewBlend(duration, w)})
	}
	return Player{
		current: Track{Clip: to},
		in:      NewBlend(duration, 0),
		fading:  fading,
	}
}

// Advance moves every playing clip and every fade forward by dt seconds. Clips that
// have faded out completely are dropped.
func (p Player) Advance(dt float32) Player {
	p.current = p.current.advance(dt)
	p.in = p.in.Advance(dt)
	if len(p.fading) == 0 {
		return p
	}
	fading := make([]fadeOut, 0, len(p.fading))
	for _, f := range p.fading {
		f.track = f.track.advance(dt)
		f.blend = f.blend.Advance(dt)
		if !f.blend.Done() {
			fading = append(fading, f)
		}
	}
	if len(fading) == 0 {
		fading = nil
	}
	p.fading = fading
	return p
}

// Layers lists the clips to draw, oldest outgoing clip first and the current clip last.
func (p Player) Layers() []Layer {
	layers := make([]Layer, 0, len(p.fading)+1)
	for _, f := range p.fading {
		if w := f.weight(); w > 0 {
			layers = append(layers, Layer{Clip: f.track.Clip, Time: f.track.Time, Weight: w})
		}
	}
	_, in := p.in.Weights()
	return append(layers, Layer{Clip: p.current.Clip, Time: p.current.Time, Weight: in})
}
