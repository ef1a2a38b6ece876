package tui

import (
	"context"
	"fmt"
	"strings"

	"tasklist-cli/internal/mutate"
	"tasklist-cli/internal/publish"
	"tasklist-cli/internal/render"
	"tasklist-cli/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type pane int

const (
	paneLists pane = iota
	paneTasks
)

type form int

const (
	formNone form = iota
	formNewList
	formNewTask
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minListsWidth = 20
)

type appModel struct {
	ctx  context.Context
	sess *session.Session

	width  int
	height int

	pane pane
	form form

	// view is the last applied render result. Count-only updates patch it in place.
	view render.View

	listsList list.Model
	tasksList list.Model

	newListInput textinput.Model
	newTaskInput textinput.Model

	keys keyMap
	help help.Model

	copyFn func(string) error

	status    string
	statusErr bool
}

func newAppModel(ctx context.Context, sess *session.Session) appModel {
	m := appModel{
		ctx:    ctx,
		sess:   sess,
		width:  defaultWidth,
		height: defaultHeight,
		keys:   defaultKeyMap(),
		help:   help.New(),
		copyFn: copyToClipboard,
	}

	m.listsList = newPaneList(newListEntryDelegate(true), "list", "lists")
	m.tasksList = newPaneList(newTaskRowDelegate(false), "task", "tasks")

	m.newListInput = newFormInput("List name")
	m.newTaskInput = newFormInput("Task name")

	m.resize()
	m.applyView()
	if i := m.view.ActiveIndex(); i >= 0 {
		m.listsList.Select(i)
	}
	return m
}

func newPaneList(d list.ItemDelegate, singular, plural string) list.Model {
	l := list.New(nil, d, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName(singular, plural)
	return l
}

func newFormInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 200
	return in
}

func (m appModel) Init() tea.Cmd { return nil }

// applyView rebuilds both panes from a fresh render of the session state.
func (m *appModel) applyView() {
	m.view = render.Render(m.sess.State)

	items := make([]list.Item, 0, len(m.view.Lists))
	for _, e := range m.view.Lists {
		items = append(items, listEntryItem{e})
	}
	idx := m.listsList.Index()
	m.listsList.SetItems(items)
	m.listsList.Select(clampIndex(idx, len(items)))

	if m.view.Details == nil {
		m.tasksList.SetItems(nil)
		if m.pane == paneTasks {
			m.setPane(paneLists)
		}
		if m.form == formNewTask {
			m.closeForm()
		}
		return
	}
	rows := make([]list.Item, 0, len(m.view.Details.Tasks))
	for _, r := range m.view.Details.Tasks {
		rows = append(rows, taskRowItem{r})
	}
	idx = m.tasksList.Index()
	m.tasksList.SetItems(rows)
	m.tasksList.Select(clampIndex(idx, len(rows)))
}

// applyCount refreshes the remaining count and the toggled row. The list pane
// and the other task rows are left as they are.
func (m *appModel) applyCount(taskID string) {
	d := m.view.Details
	if d == nil {
		return
	}
	sel, ok := m.sess.Selected()
	if !ok {
		return
	}
	render.SetCount(d, mutate.RemainingCount(sel))
	t, ok := mutate.FindTask(sel, taskID)
	if !ok {
		return
	}
	for i, r := range d.Tasks {
		if r.ID != taskID {
			continue
		}
		r.Complete = t.Complete
		d.Tasks[i] = r
		m.tasksList.SetItem(i, taskRowItem{r})
		return
	}
}

func (m *appModel) applyEffect(eff session.Effect, taskID string) {
	switch eff {
	case session.EffectFull:
		m.applyView()
	case session.EffectCount:
		m.applyCount(taskID)
	}
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (m *appModel) setPane(p pane) {
	m.pane = p
	m.listsList.SetDelegate(newListEntryDelegate(p == paneLists))
	m.tasksList.SetDelegate(newTaskRowDelegate(p == paneTasks))
}

func (m *appModel) openForm(f form) tea.Cmd {
	m.form = f
	m.newListInput.Blur()
	m.newTaskInput.Blur()
	switch f {
	case formNewList:
		return m.newListInput.Focus()
	case formNewTask:
		return m.newTaskInput.Focus()
	}
	return nil
}

func (m *appModel) closeForm() {
	m.form = formNone
	m.newListInput.Reset()
	m.newListInput.Blur()
	m.newTaskInput.Reset()
	m.newTaskInput.Blur()
}

func (m *appModel) flash(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *appModel) flashErr(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m *appModel) resize() {
	leftW, rightW, bodyH := m.layout()
	// Borders take two columns and two rows per pane; the details header takes three more rows.
	m.listsList.SetSize(max(leftW-2, 1), max(bodyH-2, 1))
	m.tasksList.SetSize(max(rightW-2, 1), max(bodyH-5, 1))
	m.newListInput.Width = max(m.width-20, 10)
	m.newTaskInput.Width = max(m.width-20, 10)
	m.help.Width = m.width
}

func (m appModel) layout() (leftW, rightW, bodyH int) {
	leftW = m.width / 3
	if leftW < minListsWidth {
		leftW = minListsWidth
	}
	rightW = m.width - leftW
	if rightW < minListsWidth {
		rightW = minListsWidth
	}
	// Footer: input line, status line, help line.
	bodyH = m.height - 3
	if bodyH < 4 {
		bodyH = 4
	}
	return leftW, rightW, bodyH
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if m.form != formNone {
			return m.updateForm(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeForm()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	}

	var cmd tea.Cmd
	switch m.form {
	case formNewList:
		m.newListInput, cmd = m.newListInput.Update(msg)
	case formNewTask:
		m.newTaskInput, cmd = m.newTaskInput.Update(msg)
	}
	return m, cmd
}

// submitForm hands the input to the session. A blank name is ignored and the
// form stays open with its input untouched.
func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	switch m.form {
	case formNewList:
		_, ok, err := m.sess.SubmitNewList(m.ctx, m.newListInput.Value())
		if !ok && err == nil {
			return m, nil
		}
		m.closeForm()
		m.applyView()
		m.listsList.Select(len(m.view.Lists) - 1)
		if err != nil {
			m.flashErr(err)
		}
	case formNewTask:
		_, ok, err := m.sess.SubmitNewTask(m.ctx, m.newTaskInput.Value())
		if !ok && err == nil {
			return m, nil
		}
		// The task form stays open for the next entry.
		m.newTaskInput.Reset()
		m.applyView()
		if m.view.Details != nil {
			m.tasksList.Select(len(m.view.Details.Tasks) - 1)
		}
		if err != nil {
			m.flashErr(err)
		}
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Pane):
		if m.view.Mode() == render.ModeSelection && m.pane == paneLists {
			m.setPane(paneTasks)
		} else {
			m.setPane(paneLists)
		}
		return m, nil

	case key.Matches(msg, m.keys.NewList):
		cmd := m.openForm(formNewList)
		return m, cmd

	case key.Matches(msg, m.keys.NewTask):
		if m.view.Mode() != render.ModeSelection {
			m.flash("select a list first")
			return m, nil
		}
		cmd := m.openForm(formNewTask)
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		eff, err := m.sess.ClearCompleted(m.ctx)
		m.applyEffect(eff, "")
		if err != nil {
			m.flashErr(err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		sel, ok := m.sess.Selected()
		if !ok {
			m.flash("no list selected")
			return m, nil
		}
		name := sel.Name
		eff, err := m.sess.DeleteSelectedList(m.ctx)
		m.applyEffect(eff, "")
		if err != nil {
			m.flashErr(err)
		} else {
			m.flash(fmt.Sprintf("deleted %q", name))
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		sel, ok := m.sess.Selected()
		if !ok {
			m.flash("no list selected")
			return m, nil
		}
		if err := m.copyFn(publish.RenderListMarkdown(*sel)); err != nil {
			m.flashErr(fmt.Errorf("copy: %w", err))
		} else {
			m.flash(fmt.Sprintf("copied %q as Markdown", sel.Name))
		}
		return m, nil
	}

	switch m.pane {
	case paneLists:
		if key.Matches(msg, m.keys.Select) {
			it, ok := m.listsList.SelectedItem().(listEntryItem)
			if !ok {
				return m, nil
			}
			eff, err := m.sess.SelectList(m.ctx, it.ID)
			m.applyEffect(eff, "")
			if err != nil {
				m.flashErr(err)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.listsList, cmd = m.listsList.Update(msg)
		return m, cmd

	case paneTasks:
		if key.Matches(msg, m.keys.Toggle) {
			it, ok := m.tasksList.SelectedItem().(taskRowItem)
			if !ok {
				return m, nil
			}
			eff, err := m.sess.ToggleTask(m.ctx, it.ID, !it.Complete)
			m.applyEffect(eff, it.ID)
			if err != nil {
				m.flashErr(err)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.tasksList, cmd = m.tasksList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	leftW, rightW, bodyH := m.layout()

	paneStyle := func(focused bool, w int) lipgloss.Style {
		border := colorBorder
		if focused {
			border = colorAccent
		}
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Width(w - 2).
			Height(bodyH - 2)
	}

	left := paneStyle(m.pane == paneLists, leftW).Render(m.listsList.View())
	right := paneStyle(m.pane == paneTasks, rightW).Render(m.detailsView(rightW - 2))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var footer []string
	switch m.form {
	case formNewList:
		footer = append(footer, renderInputLine(m.width, "New list:", m.newListInput.View()))
	case formNewTask:
		footer = append(footer, renderInputLine(m.width, "New task:", m.newTaskInput.View()))
	default:
		footer = append(footer, "")
	}

	status := m.status
	if m.statusErr {
		status = lipgloss.NewStyle().Foreground(colorFlashError).Render(status)
	} else {
		status = styleMuted().Render(status)
	}
	footer = append(footer, status)

	if m.form != formNone {
		footer = append(footer, m.help.View(formKeyMap{keys: m.keys}))
	} else {
		footer = append(footer, m.help.View(m.keys))
	}

	return body + "\n" + strings.Join(footer, "\n")
}

func (m appModel) detailsView(w int) string {
	d := m.view.Details
	if d == nil {
		return styleMuted().Render("No list selected. Pick one with enter, or press n to create a list.")
	}
	title := lipgloss.NewStyle().Bold(true).Render(singleLine(d.Title))
	count := styleMuted().Render(d.Count)
	rule := styleMuted().Render(strings.Repeat(glyphHRule(), max(w, 1)))
	return lipgloss.JoinVertical(lipgloss.Left, title, count, rule, m.tasksList.View())
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
