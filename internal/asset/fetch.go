package asset

import (
	"context"
	"fmt"

	"github.com/JuniorAww/junioraww.github.io/internal/anim"
)

// Result is the outcome of one Fetch: the file's clips resolved to symbolic names, or Err.
type Result struct {
	Info  Info
	Clips anim.ClipSet
	Err   error
}

// Pending is a single-shot future for a Fetch. It is polled from the frame loop.
type Pending struct {
	ch     chan Result
	result Result
	done   bool
}

// Fetch reads and inspects path in a new goroutine and resolves names (symbolic -> clip name).
// There is no retry; cancelling ctx turns an unfinished fetch into ctx's error.
func Fetch(ctx context.Context, path string, names map[string]string) *Pending {
	p := &Pending{ch: make(chan Result, 1)}
	go func() {
		p.ch <- load(ctx, path, names)
	}()
	return p
}

func load(ctx context.Context, path string, names map[string]string) Result {
	info, err := Read(path)
	if err != nil {
		return Result{Err: err}
	}
	if err := ctx.Err(); err != nil {
		return Result{Info: info, Err: fmt.Errorf("asset: %s: %w", path, err)}
	}
	set, err := anim.Resolve(info.Clips, names)
	if err != nil {
		return Result{Info: info, Err: fmt.Errorf("asset: %s: %w", path, err)}
	}
	return Result{Info: info, Clips: set}
}

// Poll returns the result once it is available. It never blocks; after the first
// successful poll it keeps returning the same result.
func (p *Pending) Poll() (Result, bool) {
	if p.done {
		return p.result, true
	}
	select {
	case r := <-p.ch:
		p.result, p.done = r, true
		return r, true
	default:
		return Result{}, false
	}
}

// Wait blocks until the result is ready or ctx ends.
func (p *Pending) Wait(ctx context.Context) (Result, error) {
	if p.done {
		return p.result, nil
	}
	select {
	case r := <-p.ch:
		p.result, p.done = r, true
		return r, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
