package prompt

import (
	"os"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/imqdee/wtree/internal/ui/styles"
)

// SelectResult holds the result of a selection prompt.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

type listItem struct {
	title string
	value string
	index int
}

func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.value }

type selectModel struct {
	list      list.Model
	done      bool
	cancelled bool
	selected  int
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		key := msg.String()
		if key == "ctrl+c" {
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
		// keys belong to the filter input while the user is typing
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch key {
		case "enter":
			if item, ok := m.list.SelectedItem().(listItem); ok {
				m.selected = item.index
			}
			m.done = true
			return m, tea.Quit
		case "esc", "q":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

func newSelectModel(prompt string, titles, values []string) selectModel {
	items := make([]list.Item, len(values))
	for i := range values {
		items[i] = listItem{title: titles[i], value: values[i], index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)

	l := list.New(items, delegate, 60, min(len(values)+6, 20))
	l.Title = prompt
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	return selectModel{list: l, selected: -1}
}

func runSelect(m selectModel, values []string) (SelectResult, error) {
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return SelectResult{}, err
	}
	return result(finalModel.(selectModel), values), nil
}

func result(m selectModel, values []string) SelectResult {
	if m.cancelled || m.selected < 0 || m.selected >= len(values) {
		return SelectResult{Cancelled: true}
	}
	return SelectResult{Value: values[m.selected], Index: m.selected}
}

// Select shows a list selection prompt on stderr and returns the choice.
func Select(prompt string, options []string) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}
	return runSelect(newSelectModel(prompt, options, options), options)
}

// SelectWorktree lets the user pick one of names. The current worktree,
// if any, is marked but stays selectable.
func SelectWorktree(names []string, current string) (SelectResult, error) {
	if len(names) == 0 {
		return SelectResult{Cancelled: true}, nil
	}
	return runSelect(newSelectModel("Switch to worktree", worktreeTitles(names, current), names), names)
}

func worktreeTitles(names []string, current string) []string {
	titles := make([]string, len(names))
	for i, name := range names {
		titles[i] = name
		if name == current {
			titles[i] = name + " " + styles.MutedStyle.Render("(current)")
		}
	}
	return titles
}
