// Package asset reads animated model files off the main thread: it lists the clips a
// glTF/GLB file carries so missing animations fail before any GPU work happens.
package asset

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/JuniorAww/junioraww.github.io/internal/anim"
)

const (
	glbMagic     = 0x46546C67 // "glTF"
	glbJSONChunk = 0x4E4F534A // "JSON"
	glbHeaderLen = 12
	glbChunkLen  = 8
)

// ErrFormat is returned for files that are neither GLB nor glTF JSON.
var ErrFormat = errors.New("unsupported model format")

// Info describes a model file.
type Info struct {
	Path  string
	Clips []anim.Clip
}

// Names returns the clip names in file order.
func (i Info) Names() []string {
	out := make([]string, len(i.Clips))
	for k, c := range i.Clips {
		out[k] = c.Name
	}
	return out
}

// Read loads path and inspects it.
func Read(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("asset: %w", err)
	}
	clips, err := Inspect(data)
	if err != nil {
		return Info{}, fmt.Errorf("asset: %s: %w", path, err)
	}
	return Info{Path: path, Clips: clips}, nil
}

// Inspect lists the animations in a GLB container or a glTF JSON document.
// Duration is the largest keyframe time among a clip's samplers; Frames stays 0.
func Inspect(data []byte) ([]anim.Clip, error) {
	doc, err := gltfJSON(data)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("%w: malformed glTF JSON", ErrFormat)
	}
	var clips []anim.Clip
	gjson.GetBytes(doc, "animations").ForEach(func(key, a gjson.Result) bool {
		c := anim.Clip{Name: a.Get("name").String(), Index: int(key.Int())}
		a.Get("samplers.#.input").ForEach(func(_, input gjson.Result) bool {
			end := gjson.GetBytes(doc, "accessors."+strconv.FormatInt(input.Int(), 10)+".max.0").Float()
			if float32(end) > c.Duration {
				c.Duration = float32(end)
			}
			return true
		})
		clips = append(clips, c)
		return true
	})
	return clips, nil
}

// gltfJSON returns the JSON chunk of a GLB file, or data itself when it already is JSON.
func gltfJSON(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return trimmed, nil
	}
	if len(data) < glbHeaderLen+glbChunkLen {
		return nil, fmt.Errorf("%w: file too short", ErrFormat)
	}
	le := binary.LittleEndian
	if le.Uint32(data[0:4]) != glbMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrFormat)
	}
	if v := le.Uint32(data[4:8]); v != 2 {
		return nil, fmt.Errorf("%w: GLB version %d", ErrFormat, v)
	}
	if total := le.Uint32(data[8:12]); uint64(total) > uint64(len(data)) {
		return nil, fmt.Errorf("%w: truncated (%d of %d bytes)", ErrFormat, len(data), total)
	}
	chunkLen := uint64(le.Uint32(data[12:16]))
	if le.Uint32(data[16:20]) != glbJSONChunk {
		return nil, fmt.Errorf("%w: first chunk is not JSON", ErrFormat)
	}
	const start = glbHeaderLen + glbChunkLen
	if start+chunkLen > uint64(len(data)) {
		return nil, fmt.Errorf("%w: JSON chunk overruns file", ErrFormat)
	}
	return data[start : start+chunkLen], nil
}
