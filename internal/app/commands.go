package app

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/JuniorAww/junioraww.github.io/internal/character"
	"github.com/JuniorAww/junioraww.github.io/internal/commands"
	"github.com/JuniorAww/junioraww.github.io/internal/config"
)

// registerCommands installs the terminal commands. Every edit works on a clone of the
// live prefs and only lands if the clone validates.
func (a *App) registerCommands(reg *commands.Registry) {
	reg.Register("help", "list commands", func([]string) error {
		for _, line := range reg.Help() {
			a.log.Log(line)
		}
		return nil
	})

	reg.Register("grid", "show or hide the ground grid [on|off]", a.toggle(func(p *config.Prefs) *bool {
		return &p.Render.GridVisible
	}))
	reg.Register("target", "show or hide the target marker [on|off]", a.toggle(func(p *config.Prefs) *bool {
		return &p.Render.ShowTarget
	}))
	reg.Register("fps", "show or hide FPS and status [on|off]", a.toggle(func(p *config.Prefs) *bool {
		return &p.Render.ShowFPS
	}))
	reg.Register("mem", "show or hide heap usage [on|off]", a.toggle(func(p *config.Prefs) *bool {
		return &p.Render.ShowMemAlloc
	}))

	reg.RegisterFlags("motion", "tune thresholds, speeds, turn and fade", func(fs *flag.FlagSet) func([]string) error {
		edits := map[string]float32{}
		for _, name := range []string{"walk", "run", "walkspeed", "runspeed", "turn", "fade"} {
			fs.Func(name, "motion."+name, func(s string) error {
				v, err := strconv.ParseFloat(s, 32)
				if err != nil {
					return err
				}
				edits[name] = float32(v)
				return nil
			})
		}
		return func([]string) error {
			return a.editMotion(edits)
		}
	})

	reg.Register("shading", "set the character material (flat|lit)", func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("shading: want flat or lit")
		}
		next, err := a.prefs.Clone()
		if err != nil {
			return err
		}
		next.Render.Shading = args[0]
		return a.apply(next)
	})

	reg.Register("state", "print the character state", func([]string) error {
		t := a.tracker.Target()
		a.log.Logf("%s target=(%.2f, %.2f, %.2f)", a.actor.Status(), t.X(), t.Y(), t.Z())
		return nil
	})

	reg.Register("save", "write the current settings to the config file", func([]string) error {
		if err := config.Save(a.cfgPath, a.prefs); err != nil {
			return err
		}
		a.log.Logf("saved %s", a.cfgPath)
		return nil
	})

	reg.Register("reload", "unload the character and load the asset again", func([]string) error {
		a.actor.Unload()
		a.actor = character.Absent{}
		a.fetch()
		return nil
	})
}

// editMotion applies flag edits to a clone of the motion prefs.
func (a *App) editMotion(edits map[string]float32) error {
	next, err := a.prefs.Clone()
	if err != nil {
		return err
	}
	m := &next.Motion
	for name, v := range edits {
		switch name {
		case "walk":
			m.WalkThreshold = v
		case "run":
			m.RunThreshold = v
		case "walkspeed":
			m.WalkSpeed = v
		case "runspeed":
			m.RunSpeed = v
		case "turn":
			m.TurnFactor = v
		case "fade":
			m.Fade = v
		}
	}
	if err := a.apply(next); err != nil {
		return err
	}
	a.log.Logf("motion: walk>%.2f run>%.2f speeds %.2f/%.2f turn %.2f fade %.2fs",
		m.WalkThreshold, m.RunThreshold, m.WalkSpeed, m.RunSpeed, m.TurnFactor, m.Fade)
	return nil
}

// toggle builds a command that flips (or sets) one boolean pref.
func (a *App) toggle(field func(*config.Prefs) *bool) func([]string) error {
	return func(args []string) error {
		next, err := a.prefs.Clone()
		if err != nil {
			return err
		}
		v := field(&next)
		if *v, err = commands.Toggle(args, *v); err != nil {
			return err
		}
		return a.apply(next)
	}
}
