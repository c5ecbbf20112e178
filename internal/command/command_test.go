package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nibzard/pydo/internal/todo"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	store := todo.NewStore(filepath.Join(t.TempDir(), "pydo.td"), nil)
	return New(store, nil)
}

func load(t *testing.T, d *Dispatcher) *todo.Document {
	t.Helper()
	doc, err := d.Store().Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return doc
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"add", "add"},
		{"a", "add"},
		{"rm", "remove"},
		{"c", "complete"},
		{"rem", "remember"},
		{"rr", "remove-remember"},
		{"rs", "reset"},
		{"reset", "reset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.name)
			}
			if v.Name != tt.want {
				t.Errorf("Lookup(%q): got %q, want %q", tt.name, v.Name, tt.want)
			}
		})
	}

	if _, ok := Lookup("frobnicate"); ok {
		t.Error("unknown verb should not be found")
	}
}

func TestVerbsCopy(t *testing.T) {
	vs := Verbs()
	if len(vs) != 6 {
		t.Fatalf("Verbs: got %d, want 6", len(vs))
	}
	vs[0].Name = "changed"
	if v, _ := Lookup("a"); v.Name != "add" {
		t.Error("Verbs should return a copy")
	}
}

func TestUsage(t *testing.T) {
	tests := map[string]string{
		"add":             "add <text...>",
		"remove":          "remove <index|all>",
		"complete":        "complete <index>",
		"remove-remember": "remove-remember <index>",
		"reset":           "reset",
	}
	for name, want := range tests {
		v, _ := Lookup(name)
		if got := v.Usage(); got != want {
			t.Errorf("%s Usage: got %q, want %q", name, got, want)
		}
	}
}

func TestRunEnsureExists(t *testing.T) {
	d := newTestDispatcher(t)

	if err := d.Run(""); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(d.Store().Path); err != nil {
		t.Fatalf("todo file not created: %v", err)
	}

	before, _ := os.ReadFile(d.Store().Path)
	if err := d.Run(""); err != nil {
		t.Fatal(err)
	}
	after, _ := os.ReadFile(d.Store().Path)
	if !bytes.Equal(before, after) {
		t.Error("second ensure changed the file")
	}
}

func TestRunAddJoinsArgs(t *testing.T) {
	d := newTestDispatcher(t)

	if err := d.Run("a", "buy", "oat", "milk"); err != nil {
		t.Fatal(err)
	}
	doc := load(t, d)
	task, ok := doc.Task(0)
	if !ok || task.Task != "buy oat milk" {
		t.Errorf("Task(0): got %+v, want buy oat milk", task)
	}
	if doc.UnfinishedTasks != 1 {
		t.Errorf("UnfinishedTasks: got %d, want 1", doc.UnfinishedTasks)
	}
}

func TestRunScenario(t *testing.T) {
	d := newTestDispatcher(t)

	steps := [][]string{
		{"add", "buy milk"},
		{"add", "walk dog"},
		{"complete", "0"},
		{"remember", "dentist", "friday"},
		{"add", "file taxes"},
		{"c", "2"},
		{"rm", "all"},
	}
	for _, step := range steps {
		if err := d.Run(step[0], step[1:]...); err != nil {
			t.Fatalf("Run(%v): %v", step, err)
		}
	}

	doc := load(t, d)
	if len(doc.Tasks) != 1 || doc.Tasks[0].Task != "walk dog" {
		t.Errorf("Tasks: got %+v, want [walk dog]", doc.Tasks)
	}
	if doc.CompletedTasks != 0 || doc.UnfinishedTasks != 1 {
		t.Errorf("counters: got %d/%d, want 0/1", doc.CompletedTasks, doc.UnfinishedTasks)
	}
	item, ok := doc.RememberItem(0)
	if !ok || item.Item != "dentist friday" {
		t.Errorf("RememberItem(0): got %+v", item)
	}
}

func TestRunNoOps(t *testing.T) {
	d := newTestDispatcher(t)
	if err := d.Run("add", "a"); err != nil {
		t.Fatal(err)
	}
	if err := d.Run("remember", "b"); err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(d.Store().Path)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		verb string
		args []string
	}{
		{"unknown verb", "frobnicate", []string{"1"}},
		{"complete out of range", "complete", []string{"3"}},
		{"complete negative", "c", []string{"-1"}},
		{"complete non-numeric", "complete", []string{"first"}},
		{"complete without index", "complete", nil},
		{"remove out of range", "remove", []string{"9"}},
		{"remove all with none completed", "rm", []string{"all"}},
		{"remove-remember out of range", "rr", []string{"1"}},
		{"add without text", "add", nil},
		{"remember without text", "rem", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := d.Run(tt.verb, tt.args...); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			after, err := os.ReadFile(d.Store().Path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(before, after) {
				t.Errorf("file changed:\nbefore:\n%s\nafter:\n%s", before, after)
			}
		})
	}
}

func TestRunReset(t *testing.T) {
	d := newTestDispatcher(t)
	if err := d.Add("a"); err != nil {
		t.Fatal(err)
	}
	if err := d.Remember("b"); err != nil {
		t.Fatal(err)
	}
	if err := d.Run("rs"); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(d.Store().Path)
	if err != nil {
		t.Fatal(err)
	}
	want, err := todo.Template().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("reset file:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestShorthands(t *testing.T) {
	d := newTestDispatcher(t)

	for _, text := range []string{"one", "two", "three"} {
		if err := d.Add(text); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.Complete(1); err != nil {
		t.Fatal(err)
	}
	if err := d.Remove(0); err != nil {
		t.Fatal(err)
	}
	if err := d.RemoveCompleted(); err != nil {
		t.Fatal(err)
	}
	if err := d.Remember("note"); err != nil {
		t.Fatal(err)
	}
	if err := d.RemoveRemember(0); err != nil {
		t.Fatal(err)
	}

	doc := load(t, d)
	if len(doc.Tasks) != 1 || doc.Tasks[0].Task != "three" {
		t.Errorf("Tasks: got %+v, want [three]", doc.Tasks)
	}
	if len(doc.RememberItems) != 0 {
		t.Errorf("RememberItems: got %+v, want none", doc.RememberItems)
	}
}

func TestRunMalformedFile(t *testing.T) {
	d := newTestDispatcher(t)
	if err := os.WriteFile(d.Store().Path, []byte(`{"tasks": [`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := d.Run("add", "x"); err == nil {
		t.Fatal("expected parse error")
	}
}
