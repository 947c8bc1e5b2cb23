package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

// ErrUnknown is returned by Execute for a name nobody registered.
var ErrUnknown = errors.New("unknown command")

// Builder defines a command's flags on a fresh FlagSet and returns the function that
// runs once they parse. It is called on every Execute, so flag values never carry over
// from an earlier invocation, including one whose flags failed to parse.
type Builder func(fs *flag.FlagSet) (run func(args []string) error)

// Command is a subcommand with its own flags. Run receives the remaining positional
// arguments after the flags parse.
type Command struct {
	Name    string
	Summary string
	Build   Builder
}

// Registry holds subcommands by name.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand without flags.
func (r *Registry) Register(name, summary string, run func(args []string) error) {
	r.RegisterFlags(name, summary, func(*flag.FlagSet) func([]string) error { return run })
}

// RegisterFlags adds a subcommand whose flags build defines. Parse errors are returned
// from Execute instead of printed.
func (r *Registry) RegisterFlags(name, summary string, build Builder) {
	r.cmds[name] = &Command{Name: name, Summary: summary, Build: build}
}

// Names returns registered command names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Help returns one "name - summary" line per command.
func (r *Registry) Help() []string {
	names := r.Names()
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = name + " - " + r.cmds[name].Summary
	}
	return out
}

// Parse interprets a terminal line. Lines starting with "cmd " are split on spaces and
// returned with ok true; anything else is not a command.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	return strings.Fields(line[len(prefix):]), true
}

// Execute runs args[0] with args[1:] as its flags and positional arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand (try: cmd help)")
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, args[0])
	}
	fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := cmd.Build(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return run(fs.Args())
}

// Toggle reads an optional on/off argument. With no argument it flips cur.
func Toggle(args []string, cur bool) (bool, error) {
	if len(args) == 0 {
		return !cur, nil
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	}
	return cur, fmt.Errorf("want on or off, got %q", args[0])
}
