// Package commands parses console lines of the form "cmd <name> [-flag value ...]" and
// dispatches them to registered handlers.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"
)

const prefix = "cmd "

var (
	ErrNoCommand      = errors.New("missing subcommand")
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is a subcommand. Run reads its flag values after FlagSet has parsed the
// arguments.
type Command struct {
	Name    string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry maps subcommand names to commands.
type Registry struct {
	cmds map[string]*Command
}

func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds or replaces the subcommand name.
func (r *Registry) Register(name string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = &Command{Name: name, FlagSet: fs, Run: run}
}

// Parse splits a console line into arguments. ok is false unless the line starts with
// "cmd "; a bare "cmd " gives ok with no arguments.
func Parse(line string) (args []string, ok bool) {
	rest, found := strings.CutPrefix(line, prefix)
	if !found {
		return nil, false
	}
	if args = strings.Fields(rest); len(args) == 0 {
		return nil, true
	}
	return args, true
}

// Execute runs args[0] with the remaining arguments as its flags.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return cmd.Run()
}

// Names returns the registered subcommands in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Usage describes the flags of one subcommand on a single line, e.g.
// "speed -name string (slow, medium or fast)".
func (r *Registry) Usage(name string) (string, error) {
	cmd, ok := r.cmds[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	parts := []string{name}
	cmd.FlagSet.VisitAll(func(f *flag.Flag) {
		kind, usage := flag.UnquoteUsage(f)
		if kind == "" {
			parts = append(parts, fmt.Sprintf("-%s (%s)", f.Name, usage))
			return
		}
		parts = append(parts, fmt.Sprintf("-%s %s (%s)", f.Name, kind, usage))
	})
	return strings.Join(parts, " "), nil
}
