package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
}

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "portfolio.txt")
	l := NewAt(path)
	l.now = fixedClock
	l.Log("available animations: Idle, Walk, Gallop")
	l.Errorf("load %s: %v", "fox.glb", os.ErrNotExist)

	lines := l.Lines()
	want := []string{
		"[2026-10-19 08:30:00] available animations: Idle, Walk, Gallop",
		"[2026-10-19 08:30:00] error: load fox.glb: file does not exist",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q; want %q", i, lines[i], want[i])
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if string(data) != strings.Join(want, "\n")+"\n" {
		t.Fatalf("file = %q", data)
	}
}

func TestLinesAreCapped(t *testing.T) {
	l := NewAt("")
	for i := 0; i < maxLines+20; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	if len(lines) != maxLines {
		t.Fatalf("len = %d; want %d", len(lines), maxLines)
	}
	if !strings.HasSuffix(lines[0], "line 20") {
		t.Fatalf("oldest kept line = %q", lines[0])
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	l := NewAt("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	if got := l.Lines()[0]; strings.HasSuffix(got, "changed") {
		t.Fatalf("Lines exposed internal slice: %q", got)
	}
}
