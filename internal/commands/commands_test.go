package commands

import (
	"errors"
	"flag"
	"strconv"
	"testing"
)

func TestParse(t *testing.T) {
	tcs := []struct {
		line string
		args []string
		ok   bool
	}{
		{"cmd grid -on=false", []string{"grid", "-on=false"}, true},
		{"cmd   motion  -run 8 ", []string{"motion", "-run", "8"}, true},
		{"cmd ", nil, true},
		{"cmdgrid", nil, false},
		{"hello fox", nil, false},
	}
	for _, tc := range tcs {
		args, ok := Parse(tc.line)
		if ok != tc.ok || len(args) != len(tc.args) {
			t.Fatalf("Parse(%q) = %v, %v; want %v, %v", tc.line, args, ok, tc.args, tc.ok)
		}
		for i := range args {
			if args[i] != tc.args[i] {
				t.Fatalf("Parse(%q)[%d] = %q; want %q", tc.line, i, args[i], tc.args[i])
			}
		}
	}
}

func TestExecuteParsesFlags(t *testing.T) {
	r := NewRegistry()
	var run float64
	var rest []string
	r.RegisterFlags("motion", "tune motion", func(fs *flag.FlagSet) func([]string) error {
		fs.Float64Var(&run, "run", 6, "run threshold")
		return func(args []string) error {
			rest = args
			return nil
		}
	})
	if err := r.Execute([]string{"motion", "-run", "8.5", "extra"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if run != 8.5 || len(rest) != 1 || rest[0] != "extra" {
		t.Fatalf("run = %v rest = %v", run, rest)
	}
	if err := r.Execute([]string{"motion", "-run", "fast"}); err == nil {
		t.Fatal("expected flag parse error")
	}
	if err := r.Execute([]string{"motion"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if run != 6 {
		t.Fatalf("run = %v; want default 6 on a fresh invocation", run)
	}
}

func TestFailedParseDoesNotLeakIntoNextRun(t *testing.T) {
	r := NewRegistry()
	var applied map[string]string
	r.RegisterFlags("motion", "tune motion", func(fs *flag.FlagSet) func([]string) error {
		edits := map[string]string{}
		for _, name := range []string{"walk", "run", "fade"} {
			fs.Func(name, name, func(s string) error {
				if _, err := strconv.ParseFloat(s, 32); err != nil {
					return err
				}
				edits[name] = s
				return nil
			})
		}
		return func([]string) error {
			applied = edits
			return nil
		}
	})

	if err := r.Execute([]string{"motion", "-walk", "2", "-run", "x"}); err == nil {
		t.Fatal("expected parse error for -run x")
	}
	if applied != nil {
		t.Fatalf("run executed after a parse error: %v", applied)
	}
	if err := r.Execute([]string{"motion", "-fade", "0.3"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(applied) != 1 || applied["fade"] != "0.3" {
		t.Fatalf("applied = %v; want only fade", applied)
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("fail", "always fails", func([]string) error { return boom })
	if err := r.Execute(nil); err == nil {
		t.Fatal("expected error for missing subcommand")
	}
	if err := r.Execute([]string{"nope"}); !errors.Is(err, ErrUnknown) {
		t.Fatalf("err = %v; want ErrUnknown", err)
	}
	if err := r.Execute([]string{"fail"}); !errors.Is(err, boom) {
		t.Fatalf("err = %v; want boom", err)
	}
}

func TestHelpIsSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("save", "write config", func([]string) error { return nil })
	r.Register("grid", "toggle grid", func([]string) error { return nil })
	help := r.Help()
	if len(help) != 2 || help[0] != "grid - toggle grid" || help[1] != "save - write config" {
		t.Fatalf("help = %q", help)
	}
}

func TestToggle(t *testing.T) {
	tcs := []struct {
		args []string
		cur  bool
		want bool
		ok   bool
	}{
		{nil, false, true, true},
		{nil, true, false, true},
		{[]string{"on"}, true, true, true},
		{[]string{"OFF"}, true, false, true},
		{[]string{"maybe"}, true, true, false},
	}
	for _, tc := range tcs {
		got, err := Toggle(tc.args, tc.cur)
		if got != tc.want || (err == nil) != tc.ok {
			t.Fatalf("Toggle(%v, %v) = %v, %v", tc.args, tc.cur, got, err)
		}
	}
}
