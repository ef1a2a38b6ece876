package publish

import (
	"bytes"
	"strings"

	"tasklist-cli/internal/model"
	"tasklist-cli/internal/mutate"
	"tasklist-cli/internal/render"
)

type RenderOptions struct {
	// MarkSelected appends "(selected)" to the selected list's heading.
	MarkSelected bool
}

// RenderListMarkdown renders one list as a GFM task list.
func RenderListMarkdown(l model.List) string {
	var buf bytes.Buffer
	writeList(&buf, l, false)
	return buf.String()
}

// RenderStateMarkdown renders every list in order.
func RenderStateMarkdown(st *model.State, opt RenderOptions) string {
	var buf bytes.Buffer
	if st == nil || len(st.Lists) == 0 {
		buf.WriteString("_No lists._\n")
		return buf.String()
	}
	for i, l := range st.Lists {
		if i > 0 {
			buf.WriteString("\n")
		}
		writeList(&buf, l, opt.MarkSelected && st.SelectedListID == l.ID)
	}
	return buf.String()
}

func writeList(buf *bytes.Buffer, l model.List, selected bool) {
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	heading := "# " + inline(l.Name)
	if selected {
		heading += " (selected)"
	}
	writeLn(heading)
	writeLn("")
	writeLn(render.CountLabel(mutate.RemainingCount(&l)))
	writeLn("")
	if len(l.Tasks) == 0 {
		writeLn("_No tasks._")
		return
	}
	for _, t := range l.Tasks {
		box := "[ ]"
		if t.Complete {
			box = "[x]"
		}
		writeLn("- " + box + " " + inline(t.Name))
	}
}

// inline keeps user text on one Markdown line.
func inline(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
