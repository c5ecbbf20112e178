package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/pydo/internal/todo"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	placeholder = "Enter text..."

	markDone    = "⬤"
	markPending = "◯"
)

var tabLabels = []string{"Todo", "Remember", "Add", "Quit"}

func (m *Model) View() string {
	if m.err != nil {
		return m.theme.Error.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.doc == nil {
		return "Loading...\n"
	}

	width, height := m.size()
	controls := m.titledBox("Controls", []string{m.tabBar()}, width)
	input := m.titledBox("Input", []string{m.inputLine()}, width)
	helpView := m.help.View(m.keys.forMode(m.mode))

	listHeight := height - lipgloss.Height(controls) - lipgloss.Height(input) - lipgloss.Height(helpView)
	list := m.listBox(max(3, listHeight), width)

	return lipgloss.JoinVertical(lipgloss.Left, controls, input, list, helpView)
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// activeTab returns the index into tabLabels to highlight.
func (m *Model) activeTab() int {
	if m.mode == ModeTextEntry {
		return 2
	}
	if m.selected == todo.ListRemember {
		return 1
	}
	return 0
}

func (m *Model) tabBar() string {
	active := m.activeTab()
	parts := make([]string, len(tabLabels))
	for i, label := range tabLabels {
		rest := m.theme.Label
		if i == active {
			rest = m.theme.Active
		}
		parts[i] = m.theme.Hotkey.Render(label[:1]) + rest.Render(label[1:])
	}
	return strings.Join(parts, m.theme.Separator.Render(" | "))
}

func (m *Model) inputLine() string {
	if len(m.buffer) == 0 {
		return m.theme.Placeholder.Render(placeholder)
	}
	return m.theme.Input.Render(string(m.buffer))
}

// listBox renders the active list in a box of height h, borders included.
func (m *Model) listBox(h, width int) string {
	inner := width - 2
	rows := h - 2
	n := m.doc.Len(m.selected)
	first := FirstVisible(m.position, h)

	lines := make([]string, 0, rows)
	for i := first; i < n && len(lines) < rows; i++ {
		text := lipgloss.NewStyle().MaxWidth(inner).Render(m.rowText(i))
		if i == m.position {
			lines = append(lines, m.theme.Highlight.Width(inner).Render(text))
			continue
		}
		lines = append(lines, m.theme.Row.Render(text))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return m.titledBox(m.listTitle(), lines, width)
}

func (m *Model) rowText(i int) string {
	if m.selected == todo.ListRemember {
		item, _ := m.doc.RememberItem(i)
		return " - " + item.Item
	}
	task, _ := m.doc.Task(i)
	mark := markPending
	if task.Completed {
		mark = markDone
	}
	return fmt.Sprintf(" %s - %s", mark, task.Task)
}

func (m *Model) listTitle() string {
	if m.selected == todo.ListRemember {
		return fmt.Sprintf("Remember (%d)", m.doc.Len(todo.ListRemember))
	}
	completed, unfinished := m.doc.Counts()
	return fmt.Sprintf("Todo (%d done, %d left)", completed, unfinished)
}

// titledBox draws lines inside a bordered box of the given outer width and
// writes title into the top border.
func (m *Model) titledBox(title string, lines []string, width int) string {
	box := m.theme.Box.Width(width - 2).Render(strings.Join(lines, "\n"))
	if title == "" {
		return box
	}

	border := m.theme.Box.GetBorderStyle()
	edge := lipgloss.NewStyle().Foreground(m.theme.Box.GetBorderTopForeground())
	head := border.TopLeft + border.Top + " "
	fill := width - lipgloss.Width(head) - lipgloss.Width(title) - 1 - lipgloss.Width(border.TopRight)
	if fill < 0 {
		return box
	}
	top := edge.Render(head) +
		m.theme.Title.Render(title) +
		edge.Render(" "+strings.Repeat(border.Top, fill)+border.TopRight)

	boxLines := strings.Split(box, "\n")
	boxLines[0] = top
	return strings.Join(boxLines, "\n")
}
