// Package command maps verb strings to todo document mutations.
//
// Both the CLI and the dashboard go through Dispatcher.Run, so a verb typed
// on the command line and a key pressed in the dashboard perform the same
// store operation.
package command

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/pydo/internal/todo"
)

// AllToken selects every completed task for remove.
const AllToken = "all"

// ArgKind describes the argument a verb expects.
type ArgKind int

const (
	ArgNone ArgKind = iota
	ArgIndex
	ArgIndexOrAll
	ArgText
)

// Placeholder returns the usage placeholder for the argument kind.
func (k ArgKind) Placeholder() string {
	switch k {
	case ArgIndex:
		return "<index>"
	case ArgIndexOrAll:
		return "<index|all>"
	case ArgText:
		return "<text...>"
	default:
		return ""
	}
}

// Verb is one entry of the verb table.
type Verb struct {
	Name  string
	Alias string
	Short string
	Arg   ArgKind
	apply func(d *todo.Document, args []string) bool
}

// Usage returns "name <arg>".
func (v Verb) Usage() string {
	if p := v.Arg.Placeholder(); p != "" {
		return v.Name + " " + p
	}
	return v.Name
}

var verbs = []Verb{
	{
		Name: "add", Alias: "a", Arg: ArgText,
		Short: "Add a task",
		apply: func(d *todo.Document, args []string) bool {
			text, ok := joinText(args)
			return ok && d.Add(text)
		},
	},
	{
		Name: "remove", Alias: "rm", Arg: ArgIndexOrAll,
		Short: "Remove the task at index, or every completed task with \"all\"",
		apply: func(d *todo.Document, args []string) bool {
			if len(args) > 0 && args[0] == AllToken {
				return d.RemoveCompleted()
			}
			i, ok := parseIndex(args)
			return ok && d.Remove(i)
		},
	},
	{
		Name: "complete", Alias: "c", Arg: ArgIndex,
		Short: "Toggle completion of the task at index",
		apply: func(d *todo.Document, args []string) bool {
			i, ok := parseIndex(args)
			return ok && d.Complete(i)
		},
	},
	{
		Name: "remember", Alias: "rem", Arg: ArgText,
		Short: "Add a remember item",
		apply: func(d *todo.Document, args []string) bool {
			text, ok := joinText(args)
			return ok && d.Remember(text)
		},
	},
	{
		Name: "remove-remember", Alias: "rr", Arg: ArgIndex,
		Short: "Remove the remember item at index",
		apply: func(d *todo.Document, args []string) bool {
			i, ok := parseIndex(args)
			return ok && d.RemoveRemember(i)
		},
	},
	{
		Name: "reset", Alias: "rs", Arg: ArgNone,
		Short: "Replace the todo file with the empty template",
		apply: func(d *todo.Document, _ []string) bool {
			return d.Reset()
		},
	},
}

// Verbs returns the verb table in display order.
func Verbs() []Verb {
	out := make([]Verb, len(verbs))
	copy(out, verbs)
	return out
}

// Lookup finds a verb by name or alias.
func Lookup(name string) (Verb, bool) {
	for _, v := range verbs {
		if v.Name == name || v.Alias == name {
			return v, true
		}
	}
	return Verb{}, false
}

// Dispatcher runs verbs against a store.
type Dispatcher struct {
	store  *todo.Store
	logger *log.Logger
}

// New returns a dispatcher. A nil logger discards log output.
func New(store *todo.Store, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{store: store, logger: logger}
}

// Store returns the underlying store.
func (d *Dispatcher) Store() *todo.Store {
	return d.store
}

// Run applies verb with args. The todo file is created first when missing,
// so an empty verb is the ensure-exists check. Unknown verbs and bad
// arguments are ignored. Only I/O and parse failures are returned.
func (d *Dispatcher) Run(verb string, args ...string) error {
	if _, err := d.store.EnsureExists(); err != nil {
		return err
	}
	if verb == "" {
		return nil
	}

	v, ok := Lookup(verb)
	if !ok {
		d.logger.Debug("ignoring unknown verb", "verb", verb)
		return nil
	}

	written, err := d.store.Update(func(doc *todo.Document) bool {
		return v.apply(doc, args)
	})
	if err != nil {
		return err
	}
	if !written {
		d.logger.Debug("verb had no effect", "verb", v.Name, "args", args)
		return nil
	}
	d.logger.Debug("applied verb", "verb", v.Name, "args", args, "path", d.store.Path)
	return nil
}

// Add is shorthand for Run("add", text).
func (d *Dispatcher) Add(text string) error {
	return d.Run("add", text)
}

// Remember is shorthand for Run("remember", text).
func (d *Dispatcher) Remember(text string) error {
	return d.Run("remember", text)
}

// Complete is shorthand for Run("complete", i).
func (d *Dispatcher) Complete(i int) error {
	return d.Run("complete", strconv.Itoa(i))
}

// Remove is shorthand for Run("remove", i).
func (d *Dispatcher) Remove(i int) error {
	return d.Run("remove", strconv.Itoa(i))
}

// RemoveCompleted is shorthand for Run("remove", "all").
func (d *Dispatcher) RemoveCompleted() error {
	return d.Run("remove", AllToken)
}

// RemoveRemember is shorthand for Run("remove-remember", i).
func (d *Dispatcher) RemoveRemember(i int) error {
	return d.Run("remove-remember", strconv.Itoa(i))
}

func parseIndex(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, false
	}
	return i, true
}

func joinText(args []string) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	return strings.Join(args, " "), true
}
