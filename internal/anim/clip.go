package anim

import (
	"errors"
	"fmt"
	"sort"
)

// Symbolic clip names the motion controller asks for.
const (
	Idle = "idle"
	Walk = "walk"
	Run  = "run"
)

// ErrClipMissing is returned by Resolve when the asset has no clip with a required name.
var ErrClipMissing = errors.New("animation clip missing")

// DefaultNames maps symbolic names to the clip names baked into the fox asset.
func DefaultNames() map[string]string {
	return map[string]string{
		Idle: "Idle",
		Walk: "Walk",
		Run:  "Gallop",
	}
}

// Clip is one named animation inside a loaded asset.
// Index is the clip's position in the asset's animation list; Frames is the sampled
// frame count and stays 0 until the GPU animation data is known.
type Clip struct {
	Name     string
	Index    int
	Duration float32
	Frames   int
}

// Frame maps a playback time in seconds to a sampled frame index.
func (c Clip) Frame(t float32) int {
	if c.Frames <= 0 || c.Duration <= 0 {
		return 0
	}
	f := int(t / c.Duration * float32(c.Frames))
	if f < 0 {
		return 0
	}
	if f >= c.Frames {
		return c.Frames - 1
	}
	return f
}

// ClipSet maps symbolic names (Idle, Walk, Run) to clips.
type ClipSet map[string]Clip

// Clip returns the clip registered under a symbolic name.
func (s ClipSet) Clip(name string) (Clip, bool) {
	c, ok := s[name]
	return c, ok
}

// Resolve picks clips out of available by exact name. names maps symbolic name -> asset name.
// Every missing name is reported; the returned error wraps ErrClipMissing.
func Resolve(available []Clip, names map[string]string) (ClipSet, error) {
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	set := make(ClipSet, len(names))
	var errs []error
	for _, key := range keys {
		want := names[key]
		found := false
		for _, c := range available {
			if c.Name == want {
				set[key] = c
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, fmt.Errorf("%w: %q (%s)", ErrClipMissing, want, key))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return set, nil
}

// Sampled is what the renderer reports for one loaded animation.
type Sampled struct {
	Name   string
	Frames int
}

// sampleRate is the rate the renderer's glTF importer bakes keyframes at.
const sampleRate = 60

// Bind matches a resolved set against the renderer's animations by name, fills in
// frame counts and repoints Index at the renderer's slot. Clips without a duration get
// one from their frame count.
func Bind(set ClipSet, sampled []Sampled) (ClipSet, error) {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(ClipSet, len(set))
	var errs []error
	for _, key := range keys {
		c := set[key]
		slot := -1
		if c.Index >= 0 && c.Index < len(sampled) && sampled[c.Index].Name == c.Name {
			slot = c.Index
		} else {
			for i, s := range sampled {
				if s.Name == c.Name {
					slot = i
					break
				}
			}
		}
		if slot < 0 {
			errs = append(errs, fmt.Errorf("%w: %q (%s) not loaded by renderer", ErrClipMissing, c.Name, key))
			continue
		}
		c.Index = slot
		c.Frames = sampled[slot].Frames
		if c.Duration <= 0 && c.Frames > 0 {
			c.Duration = float32(c.Frames) / sampleRate
		}
		out[key] = c
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}
