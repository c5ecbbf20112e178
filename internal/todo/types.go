// Package todo loads, validates, and mutates the pydo document.
package todo

// Default header strings written by the empty template.
const (
	DefaultHeader         = "\n TODO\n ----"
	DefaultRememberHeader = "\n REMEMBER\n --------"
)

// List identifies one of the two collections of the document.
type List int

const (
	ListTasks List = iota
	ListRemember
)

// String returns the JSON key of the list.
func (l List) String() string {
	switch l {
	case ListTasks:
		return "tasks"
	case ListRemember:
		return "remember-items"
	default:
		return "unknown"
	}
}

// Task is a to-do entry.
type Task struct {
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

// RememberItem is a free-text note without a completion flag.
type RememberItem struct {
	Item string `json:"item"`
}

// Document is the whole persisted state.
type Document struct {
	RememberHeader  string         `json:"remember-header"`
	RememberItems   []RememberItem `json:"remember-items"`
	Header          string         `json:"header"`
	Tasks           []Task         `json:"tasks"`
	CompletedTasks  int            `json:"completed-tasks"`
	UnfinishedTasks int            `json:"unfinished-tasks"`
}

// Template returns the canonical empty document.
func Template() *Document {
	return &Document{
		RememberHeader: DefaultRememberHeader,
		RememberItems:  []RememberItem{},
		Header:         DefaultHeader,
		Tasks:          []Task{},
	}
}

// Len returns the number of entries in list.
func (d *Document) Len(list List) int {
	if d == nil {
		return 0
	}
	switch list {
	case ListTasks:
		return len(d.Tasks)
	case ListRemember:
		return len(d.RememberItems)
	default:
		return 0
	}
}

// Task returns the task at i, or false when i is out of range.
func (d *Document) Task(i int) (Task, bool) {
	if d == nil || i < 0 || i >= len(d.Tasks) {
		return Task{}, false
	}
	return d.Tasks[i], true
}

// RememberItem returns the remember item at i, or false when i is out of range.
func (d *Document) RememberItem(i int) (RememberItem, bool) {
	if d == nil || i < 0 || i >= len(d.RememberItems) {
		return RememberItem{}, false
	}
	return d.RememberItems[i], true
}

// Counts returns the number of completed and unfinished tasks in the list.
func (d *Document) Counts() (completed, unfinished int) {
	for _, t := range d.Tasks {
		if t.Completed {
			completed++
		} else {
			unfinished++
		}
	}
	return completed, unfinished
}

// CountersDrifted reports whether the stored counters disagree with the list.
func (d *Document) CountersDrifted() bool {
	completed, unfinished := d.Counts()
	return completed != d.CompletedTasks || unfinished != d.UnfinishedTasks
}

// normalize recomputes the counters and replaces nil lists before a save.
func (d *Document) normalize() {
	if d.Tasks == nil {
		d.Tasks = []Task{}
	}
	if d.RememberItems == nil {
		d.RememberItems = []RememberItem{}
	}
	d.CompletedTasks, d.UnfinishedTasks = d.Counts()
}

// Add appends an incomplete task.
func (d *Document) Add(text string) bool {
	d.Tasks = append(d.Tasks, Task{Task: text})
	d.UnfinishedTasks++
	return true
}

// Remove deletes the task at i.
func (d *Document) Remove(i int) bool {
	t, ok := d.Task(i)
	if !ok {
		return false
	}
	if t.Completed {
		d.CompletedTasks--
	} else {
		d.UnfinishedTasks--
	}
	d.Tasks = append(d.Tasks[:i], d.Tasks[i+1:]...)
	return true
}

// RemoveCompleted deletes every completed task. Indices are visited from the
// end so earlier positions stay valid while deleting.
func (d *Document) RemoveCompleted() bool {
	changed := false
	for i := len(d.Tasks) - 1; i >= 0; i-- {
		if !d.Tasks[i].Completed {
			continue
		}
		d.Tasks = append(d.Tasks[:i], d.Tasks[i+1:]...)
		d.CompletedTasks--
		changed = true
	}
	return changed
}

// Complete toggles the completed flag of the task at i.
func (d *Document) Complete(i int) bool {
	if _, ok := d.Task(i); !ok {
		return false
	}
	d.Tasks[i].Completed = !d.Tasks[i].Completed
	if d.Tasks[i].Completed {
		d.CompletedTasks++
		d.UnfinishedTasks--
	} else {
		d.CompletedTasks--
		d.UnfinishedTasks++
	}
	return true
}

// Remember appends a remember item.
func (d *Document) Remember(text string) bool {
	d.RememberItems = append(d.RememberItems, RememberItem{Item: text})
	return true
}

// RemoveRemember deletes the remember item at i.
func (d *Document) RemoveRemember(i int) bool {
	if _, ok := d.RememberItem(i); !ok {
		return false
	}
	d.RememberItems = append(d.RememberItems[:i], d.RememberItems[i+1:]...)
	return true
}

// Reset replaces the document with the empty template.
func (d *Document) Reset() bool {
	*d = *Template()
	return true
}
