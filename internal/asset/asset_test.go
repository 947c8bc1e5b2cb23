package asset

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JuniorAww/junioraww.github.io/internal/anim"
)

const foxJSON = `{
  "asset": {"version": "2.0"},
  "accessors": [
    {"count": 10, "type": "SCALAR", "max": [2.5]},
    {"count": 10, "type": "SCALAR", "max": [1.0]},
    {"count": 10, "type": "SCALAR", "max": [0.75]},
    {"count": 10, "type": "SCALAR", "max": [1.25]}
  ],
  "animations": [
    {"name": "Idle", "samplers": [{"input": 0}]},
    {"name": "Walk", "samplers": [{"input": 1}, {"input": 3}]},
    {"name": "Gallop", "samplers": [{"input": 2}]}
  ]
}`

func glb(json string) []byte {
	body := []byte(json)
	for len(body)%4 != 0 {
		body = append(body, ' ')
	}
	le := binary.LittleEndian
	out := make([]byte, 20, 20+len(body))
	le.PutUint32(out[0:4], glbMagic)
	le.PutUint32(out[4:8], 2)
	le.PutUint32(out[8:12], uint32(20+len(body)))
	le.PutUint32(out[12:16], uint32(len(body)))
	le.PutUint32(out[16:20], glbJSONChunk)
	return append(out, body...)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInspectGLB(t *testing.T) {
	clips, err := Inspect(glb(foxJSON))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	want := []anim.Clip{
		{Name: "Idle", Index: 0, Duration: 2.5},
		{Name: "Walk", Index: 1, Duration: 1.25},
		{Name: "Gallop", Index: 2, Duration: 0.75},
	}
	if len(clips) != len(want) {
		t.Fatalf("clips = %+v", clips)
	}
	for i := range want {
		if clips[i] != want[i] {
			t.Fatalf("clip %d = %+v; want %+v", i, clips[i], want[i])
		}
	}
}

func TestInspectPlainGLTF(t *testing.T) {
	clips, err := Inspect([]byte(foxJSON))
	if err != nil || len(clips) != 3 {
		t.Fatalf("Inspect = %+v, %v", clips, err)
	}
}

func TestInspectRejectsBadInput(t *testing.T) {
	truncated := glb(foxJSON)
	truncated = truncated[:len(truncated)-8]
	badVersion := glb(foxJSON)
	binary.LittleEndian.PutUint32(badVersion[4:8], 1)
	overrun := glb(foxJSON)
	binary.LittleEndian.PutUint32(overrun[12:16], 0xFFFFFFF0)
	tcs := map[string][]byte{
		"chunk overrun": overrun,
		"empty":         nil,
		"bad magic":     []byte("notaglbfileatallreally"),
		"version":       badVersion,
		"truncated":     truncated,
		"broken json":   []byte(`{"animations": [`),
	}
	for name, data := range tcs {
		if _, err := Inspect(data); !errors.Is(err, ErrFormat) {
			t.Fatalf("%s: err = %v; want ErrFormat", name, err)
		}
	}
}

func TestFetchResolvesClips(t *testing.T) {
	path := writeFile(t, "fox.glb", glb(foxJSON))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p := Fetch(ctx, path, anim.DefaultNames())
	r, err := p.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if r.Err != nil {
		t.Fatalf("fetch error: %v", r.Err)
	}
	if run, _ := r.Clips.Clip(anim.Run); run.Name != "Gallop" || run.Index != 2 {
		t.Fatalf("run clip = %+v", run)
	}
	again, ok := p.Poll()
	if !ok || again.Info.Path != path {
		t.Fatalf("Poll after Wait = %+v, %v", again, ok)
	}
}

func TestFetchMissingClipFailsAtLoad(t *testing.T) {
	path := writeFile(t, "fox.glb", glb(`{"animations":[{"name":"Idle"},{"name":"Walk"},{"name":"Run"}]}`))
	r, err := Fetch(context.Background(), path, anim.DefaultNames()).Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(r.Err, anim.ErrClipMissing) {
		t.Fatalf("err = %v; want ErrClipMissing", r.Err)
	}
	if len(r.Info.Clips) != 3 {
		t.Fatalf("info should still list the file's clips: %+v", r.Info)
	}
}

func TestFetchMissingFile(t *testing.T) {
	r, err := Fetch(context.Background(), filepath.Join(t.TempDir(), "fox.glb"), anim.DefaultNames()).Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(r.Err, os.ErrNotExist) {
		t.Fatalf("err = %v; want not-exist", r.Err)
	}
}

func TestPollDoesNotBlock(t *testing.T) {
	p := &Pending{ch: make(chan Result, 1)}
	if _, ok := p.Poll(); ok {
		t.Fatal("Poll reported a result before one was sent")
	}
	p.ch <- Result{Info: Info{Path: "x"}}
	if r, ok := p.Poll(); !ok || r.Info.Path != "x" {
		t.Fatalf("Poll = %+v, %v", r, ok)
	}
}
