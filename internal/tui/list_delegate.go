package tui

import (
	"fmt"
	"io"
	"strings"

	"tasklist-cli/internal/render"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type listEntryItem struct{ render.ListEntry }

func (i listEntryItem) FilterValue() string { return i.Name }
func (i listEntryItem) Title() string       { return i.Name }

type taskRowItem struct{ render.TaskRow }

func (i taskRowItem) FilterValue() string { return i.Name }
func (i taskRowItem) Title() string       { return i.Name }

// rowDelegate draws one-line rows. The cursor row is only highlighted while
// the pane has focus.
type rowDelegate struct {
	focused  bool
	normal   lipgloss.Style
	cursor   lipgloss.Style
	active   lipgloss.Style
	done     lipgloss.Style
	prefixFn func(item list.Item) string
}

func newRowDelegate(focused bool, prefixFn func(list.Item) string) rowDelegate {
	return rowDelegate{
		focused: focused,
		normal:  lipgloss.NewStyle(),
		cursor: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		active:   lipgloss.NewStyle().Foreground(colorActiveEntry).Bold(true),
		done:     faintIfDark(lipgloss.NewStyle().Foreground(colorDoneFg).Strikethrough(true)),
		prefixFn: prefixFn,
	}
}

func newListEntryDelegate(focused bool) rowDelegate {
	return newRowDelegate(focused, func(it list.Item) string {
		if e, ok := it.(listEntryItem); ok && e.Active {
			return glyphBullet() + " "
		}
		return "  "
	})
}

func newTaskRowDelegate(focused bool) rowDelegate {
	return newRowDelegate(focused, func(it list.Item) string {
		if r, ok := it.(taskRowItem); ok {
			return glyphCheckbox(r.Complete) + " "
		}
		return ""
	})
}

func (d rowDelegate) Height() int  { return 1 }
func (d rowDelegate) Spacing() int { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	style := d.normal
	switch it := item.(type) {
	case listEntryItem:
		if it.Active {
			style = d.active
		}
	case taskRowItem:
		if it.Complete {
			style = d.done
		}
	}
	if d.focused && index == m.Index() {
		style = d.cursor
	}

	txt := ""
	if t, ok := item.(interface{ Title() string }); ok {
		txt = t.Title()
	} else {
		txt = fmt.Sprint(item)
	}
	// Names may hold newlines; rows are one line.
	txt = strings.Join(strings.Fields(txt), " ")

	line := d.prefixFn(item) + txt
	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	fmt.Fprint(w, style.Render(line))
}
