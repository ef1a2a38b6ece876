package publish

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tasklist-cli/internal/model"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureState() *model.State {
	return &model.State{
		Lists: []model.List{
			{ID: "l1", Name: "Groceries", Tasks: []model.Task{
				{ID: "t1", Name: "Milk", Complete: true},
				{ID: "t2", Name: "Eggs"},
			}},
			{ID: "l2", Name: "Empty", Tasks: []model.Task{}},
		},
		SelectedListID: "l1",
	}
}

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRenderListMarkdown_Golden(t *testing.T) {
	st := fixtureState()
	newGolden(t).Assert(t, "list_groceries", []byte(RenderListMarkdown(st.Lists[0])))
}

func TestRenderStateMarkdown_Golden(t *testing.T) {
	got := RenderStateMarkdown(fixtureState(), RenderOptions{MarkSelected: true})
	newGolden(t).Assert(t, "state_selected", []byte(got))
}

func TestRenderStateMarkdown_Empty(t *testing.T) {
	assert.Equal(t, "_No lists._\n", RenderStateMarkdown(model.NewState(), RenderOptions{}))
	assert.Equal(t, "_No lists._\n", RenderStateMarkdown(nil, RenderOptions{}))
}

func TestRenderListMarkdown_NamesStayOnOneLine(t *testing.T) {
	l := model.List{ID: "l", Name: "two\nlines", Tasks: []model.Task{{ID: "t", Name: "a\r\nb"}}}
	md := RenderListMarkdown(l)
	assert.Contains(t, md, "# two lines\n")
	assert.Contains(t, md, "- [ ] a b\n")
}

func TestMarkdownToHTML_TaskListAndNoRawHTML(t *testing.T) {
	st := fixtureState()
	st.Lists[0].Tasks = append(st.Lists[0].Tasks, model.Task{ID: "t3", Name: "<script>alert(1)</script>"})

	out, err := MarkdownToHTML(RenderListMarkdown(st.Lists[0]))
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Groceries</h1>")
	assert.Contains(t, out, `type="checkbox"`)
	assert.Contains(t, out, `checked=""`)
	assert.NotContains(t, out, "<script>")

	empty, err := MarkdownToHTML("  ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRenderTerminal_PlainStyle(t *testing.T) {
	out := RenderTerminal(RenderListMarkdown(fixtureState().Lists[0]), 60, "notty")
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "Milk")
	assert.Contains(t, out, "Eggs")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestWriteState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "lists.md")

	res, err := WriteState(fixtureState(), path, WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, res.Written)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "# Groceries\n")

	_, err = WriteState(fixtureState(), path, WriteOptions{})
	require.Error(t, err, "refuses to clobber")

	_, err = WriteState(fixtureState(), path, WriteOptions{HTML: true, Overwrite: true})
	require.NoError(t, err)
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "<!doctype html>"))
	assert.Contains(t, string(b), "<title>Task lists</title>")

	_, err = WriteState(fixtureState(), " ", WriteOptions{})
	require.Error(t, err)
	_, err = WriteState(nil, path, WriteOptions{})
	require.Error(t, err)
}
