package todo

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "pydo.td"), nil)
	if _, err := s.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}
	return s
}

func TestTemplateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pydo.td")

	if err := Template().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded.Tasks) != 0 {
		t.Errorf("Tasks: got %d, want 0", len(loaded.Tasks))
	}
	if len(loaded.RememberItems) != 0 {
		t.Errorf("RememberItems: got %d, want 0", len(loaded.RememberItems))
	}
	if loaded.CompletedTasks != 0 || loaded.UnfinishedTasks != 0 {
		t.Errorf("counters: got %d/%d, want 0/0", loaded.CompletedTasks, loaded.UnfinishedTasks)
	}
	if loaded.Header != DefaultHeader {
		t.Errorf("Header: got %q, want %q", loaded.Header, DefaultHeader)
	}
	if loaded.RememberHeader != DefaultRememberHeader {
		t.Errorf("RememberHeader: got %q, want %q", loaded.RememberHeader, DefaultRememberHeader)
	}
}

func TestTemplateFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pydo.td")
	if err := Template().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "remember-header": "\n REMEMBER\n --------",
  "remember-items": [],
  "header": "\n TODO\n ----",
  "tasks": [],
  "completed-tasks": 0,
  "unfinished-tasks": 0
}
`
	if string(got) != want {
		t.Errorf("file contents:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestAdd(t *testing.T) {
	s := newTestStore(t)

	before, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Update(func(d *Document) bool { return d.Add("buy milk") }); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	after, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	last, ok := after.Task(len(after.Tasks) - 1)
	if !ok {
		t.Fatal("expected a task after Add")
	}
	if last.Task != "buy milk" || last.Completed {
		t.Errorf("last task: got %+v, want {buy milk false}", last)
	}
	if after.UnfinishedTasks != before.UnfinishedTasks+1 {
		t.Errorf("UnfinishedTasks: got %d, want %d", after.UnfinishedTasks, before.UnfinishedTasks+1)
	}
}

func TestCompleteToggles(t *testing.T) {
	d := Template()
	d.Add("a")

	if !d.Complete(0) {
		t.Fatal("Complete(0) reported no change")
	}
	if !d.Tasks[0].Completed || d.CompletedTasks != 1 {
		t.Errorf("after first Complete: completed=%v counter=%d", d.Tasks[0].Completed, d.CompletedTasks)
	}

	if !d.Complete(0) {
		t.Fatal("second Complete(0) reported no change")
	}
	if d.Tasks[0].Completed || d.CompletedTasks != 0 {
		t.Errorf("after second Complete: completed=%v counter=%d", d.Tasks[0].Completed, d.CompletedTasks)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name           string
		completed      bool
		wantUnfinished int
	}{
		{"incomplete task", false, 0},
		{"completed task", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Template()
			d.Add("a")
			if tt.completed {
				d.Complete(0)
			}
			unfinishedBefore := d.UnfinishedTasks

			if !d.Remove(0) {
				t.Fatal("Remove(0) reported no change")
			}
			if len(d.Tasks) != 0 {
				t.Errorf("Tasks: got %d, want 0", len(d.Tasks))
			}
			if d.UnfinishedTasks != tt.wantUnfinished {
				t.Errorf("UnfinishedTasks: got %d, want %d", d.UnfinishedTasks, tt.wantUnfinished)
			}
			if tt.completed && d.UnfinishedTasks != unfinishedBefore {
				t.Errorf("removing a completed task changed UnfinishedTasks: %d -> %d", unfinishedBefore, d.UnfinishedTasks)
			}
		})
	}
}

func TestRemoveCompleted(t *testing.T) {
	d := Template()
	for _, text := range []string{"one", "two", "three", "four", "five"} {
		d.Add(text)
	}
	d.Complete(0)
	d.Complete(2)
	d.Complete(4)

	if !d.RemoveCompleted() {
		t.Fatal("RemoveCompleted reported no change")
	}

	want := []string{"two", "four"}
	if len(d.Tasks) != len(want) {
		t.Fatalf("Tasks: got %d, want %d", len(d.Tasks), len(want))
	}
	for i, task := range d.Tasks {
		if task.Task != want[i] {
			t.Errorf("Tasks[%d]: got %q, want %q", i, task.Task, want[i])
		}
		if task.Completed {
			t.Errorf("Tasks[%d] still completed", i)
		}
	}
	if d.CompletedTasks != 0 {
		t.Errorf("CompletedTasks: got %d, want 0", d.CompletedTasks)
	}

	if d.RemoveCompleted() {
		t.Error("RemoveCompleted with nothing completed reported a change")
	}
}

func TestRememberAndRemoveRemember(t *testing.T) {
	d := Template()
	d.Remember("call mom")
	d.Remember("pay rent")

	if !d.RemoveRemember(0) {
		t.Fatal("RemoveRemember(0) reported no change")
	}
	item, ok := d.RememberItem(0)
	if !ok || item.Item != "pay rent" {
		t.Errorf("RememberItem(0): got %+v %v, want pay rent", item, ok)
	}
}

func TestReset(t *testing.T) {
	d := Template()
	d.Add("a")
	d.Remember("b")
	d.Header = "custom"

	d.Reset()

	if d.Len(ListTasks) != 0 || d.Len(ListRemember) != 0 {
		t.Errorf("lists not empty after Reset: %d/%d", d.Len(ListTasks), d.Len(ListRemember))
	}
	if d.Header != DefaultHeader {
		t.Errorf("Header not restored: %q", d.Header)
	}
}

func TestOutOfRangeLeavesFileUnchanged(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Update(func(d *Document) bool {
		d.Add("a")
		d.Remember("b")
		return true
	}); err != nil {
		t.Fatal(err)
	}

	before, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatal(err)
	}

	ops := map[string]func(*Document) bool{
		"complete 5":        func(d *Document) bool { return d.Complete(5) },
		"complete -1":       func(d *Document) bool { return d.Complete(-1) },
		"remove 1":          func(d *Document) bool { return d.Remove(1) },
		"remove -3":         func(d *Document) bool { return d.Remove(-3) },
		"remove-remember 1": func(d *Document) bool { return d.RemoveRemember(1) },
		"remove all":        func(d *Document) bool { return d.RemoveCompleted() },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			written, err := s.Update(op)
			if err != nil {
				t.Fatalf("Update failed: %v", err)
			}
			if written {
				t.Error("expected no write")
			}
			after, err := os.ReadFile(s.Path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(before, after) {
				t.Errorf("file changed:\nbefore:\n%s\nafter:\n%s", before, after)
			}
		})
	}
}

func TestScenarioBuyMilkWalkDog(t *testing.T) {
	s := newTestStore(t)

	steps := []func(*Document) bool{
		func(d *Document) bool { return d.Add("buy milk") },
		func(d *Document) bool { return d.Add("walk dog") },
		func(d *Document) bool { return d.Complete(0) },
	}
	for i, step := range steps {
		if _, err := s.Update(step); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	d, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	want := []Task{{Task: "buy milk", Completed: true}, {Task: "walk dog", Completed: false}}
	if len(d.Tasks) != len(want) {
		t.Fatalf("Tasks: got %+v, want %+v", d.Tasks, want)
	}
	for i := range want {
		if d.Tasks[i] != want[i] {
			t.Errorf("Tasks[%d]: got %+v, want %+v", i, d.Tasks[i], want[i])
		}
	}
	if d.CompletedTasks != 1 || d.UnfinishedTasks != 1 {
		t.Errorf("counters: got %d/%d, want 1/1", d.CompletedTasks, d.UnfinishedTasks)
	}
}

func TestSaveRecomputesDriftedCounters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pydo.td")
	d := Template()
	d.Tasks = []Task{{Task: "a", Completed: true}, {Task: "b"}, {Task: "c"}}
	d.CompletedTasks = 7
	d.UnfinishedTasks = 0

	if !d.CountersDrifted() {
		t.Fatal("expected drift before save")
	}
	if err := d.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.CompletedTasks != 1 || loaded.UnfinishedTasks != 2 {
		t.Errorf("counters: got %d/%d, want 1/2", loaded.CompletedTasks, loaded.UnfinishedTasks)
	}
}

func TestEnsureExists(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "pydo.td"), nil)

	created, err := s.EnsureExists()
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Error("expected file to be created")
	}

	if err := os.WriteFile(s.Path, []byte(`{"tasks":[{"task":"keep","completed":false}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	created, err = s.EnsureExists()
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("existing file should not be recreated")
	}
	d, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Tasks) != 1 || d.Tasks[0].Task != "keep" {
		t.Errorf("existing file was modified: %+v", d.Tasks)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.td")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.td")
	if err := os.WriteFile(bad, []byte(`{"tasks": [`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestCheckedAccessors(t *testing.T) {
	d := Template()
	d.Add("a")

	if _, ok := d.Task(1); ok {
		t.Error("Task(1) should be absent")
	}
	if _, ok := d.Task(-1); ok {
		t.Error("Task(-1) should be absent")
	}
	if _, ok := d.RememberItem(0); ok {
		t.Error("RememberItem(0) should be absent")
	}
	var nilDoc *Document
	if nilDoc.Len(ListTasks) != 0 {
		t.Error("nil document should have no tasks")
	}
}
