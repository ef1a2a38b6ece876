package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

type cliEnv struct {
	t  *testing.T
	db string
}

func newCLIEnv(t *testing.T, dbName string) cliEnv {
	t.Helper()
	t.Setenv("TASKLIST_CONFIG_DIR", t.TempDir())
	return cliEnv{t: t, db: filepath.Join(t.TempDir(), dbName)}
}

func (e cliEnv) mustRun(args ...string) []byte {
	e.t.Helper()
	full := append([]string{"--db", e.db}, args...)
	stdout, stderr, err := runCLI(e.t, full)
	require.NoError(e.t, err, "tasklist %v\nstderr:\n%s", args, stderr)
	return stdout
}

func (e cliEnv) mustJSON(v any, args ...string) {
	e.t.Helper()
	out := e.mustRun(append([]string{"--format", "json"}, args...)...)
	require.NoError(e.t, json.Unmarshal(out, v), "stdout: %s", out)
}

func (e cliEnv) newID(args ...string) string {
	e.t.Helper()
	var res idResult
	e.mustJSON(&res, args...)
	require.NotEmpty(e.t, res.ID)
	return res.ID
}

func TestCLI_GroceriesFlow(t *testing.T) {
	for _, name := range []string{"state.sqlite", "state.json"} {
		t.Run(name, func(t *testing.T) {
			e := newCLIEnv(t, name)

			listID := e.newID("lists", "add", "Groceries", "--select")
			milk := e.newID("tasks", "add", "Milk")
			e.newID("tasks", "add", "Eggs")
			e.mustRun("tasks", "done", milk)

			var lists []listRow
			e.mustJSON(&lists, "lists", "ls")
			require.Len(t, lists, 1)
			assert.Equal(t, listRow{ID: listID, Name: "Groceries", Tasks: 2, Remaining: 1, Selected: true}, lists[0])

			var tasks []taskRow
			e.mustJSON(&tasks, "lists", "clear")
			require.Len(t, tasks, 1)
			assert.Equal(t, "Eggs", tasks[0].Name)
			assert.False(t, tasks[0].Complete)

			raw := string(e.mustRun("show", "--raw"))
			assert.Equal(t, "# Groceries\n\n1 task remaining\n\n- [ ] Eggs\n", raw)
		})
	}
}

func TestCLI_BlankListNameFails(t *testing.T) {
	e := newCLIEnv(t, "state.sqlite")

	_, stderr, err := runCLI(t, []string{"--db", e.db, "lists", "add", "   "})
	require.Error(t, err)
	assert.Contains(t, string(stderr), "name is required")

	var lists []listRow
	e.mustJSON(&lists, "lists")
	assert.Empty(t, lists)
}

func TestCLI_SelectAndDelete(t *testing.T) {
	e := newCLIEnv(t, "state.sqlite")
	a := e.newID("lists", "add", "A")
	b := e.newID("lists", "add", "B")

	e.mustRun("lists", "select", a)
	e.mustRun("lists", "select", b)
	out := string(e.mustRun("lists"))
	assert.Contains(t, out, "* B")
	assert.Contains(t, out, "  A")

	e.mustRun("lists", "rm")
	var lists []listRow
	e.mustJSON(&lists, "lists", "ls")
	require.Len(t, lists, 1)
	assert.Equal(t, a, lists[0].ID)
	assert.False(t, lists[0].Selected)

	_, stderr, err := runCLI(t, []string{"--db", e.db, "tasks", "ls"})
	require.Error(t, err)
	assert.Contains(t, string(stderr), "no list selected")

	_, stderr, err = runCLI(t, []string{"--db", e.db, "lists", "select", "nope"})
	require.Error(t, err)
	assert.Contains(t, string(stderr), "list not found: nope")
}

func TestCLI_CorruptStoreIsReported(t *testing.T) {
	e := newCLIEnv(t, "state.json")
	require.NoError(t, os.WriteFile(e.db, []byte(`{"task.lists": "[{"}`), 0o644))

	_, stderr, err := runCLI(t, []string{"--db", e.db, "lists"})
	require.Error(t, err)
	assert.Contains(t, string(stderr), "corrupt")

	b, rerr := os.ReadFile(e.db)
	require.NoError(t, rerr)
	assert.Equal(t, `{"task.lists": "[{"}`, string(b), "corrupt data is not reset")
}

func TestCLI_Export(t *testing.T) {
	e := newCLIEnv(t, "state.sqlite")
	e.newID("lists", "add", "Work", "--select")
	e.newID("tasks", "add", "Ship")

	to := filepath.Join(t.TempDir(), "lists.html")
	out := string(e.mustRun("export", "--to", to, "--html"))
	assert.Equal(t, to, strings.TrimSpace(out))

	b, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<h1>Work</h1>")
	assert.Contains(t, string(b), "Ship")
}

func TestCLI_LogFile(t *testing.T) {
	e := newCLIEnv(t, "state.sqlite")
	logPath := filepath.Join(t.TempDir(), "tasklist.log")

	e.mustRun("--log", logPath, "-v", "lists", "add", "A")
	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "persisted")
}

func TestCLI_InvalidFormat(t *testing.T) {
	e := newCLIEnv(t, "state.sqlite")
	_, _, err := runCLI(t, []string{"--db", e.db, "--format", "edn", "lists"})
	require.Error(t, err)
}

func TestCLI_DoctorReportsCorruptLists(t *testing.T) {
	e := newCLIEnv(t, "state.json")
	require.NoError(t, os.WriteFile(e.db, []byte(`{"task.lists": "[{"}`), 0o644))

	out := string(e.mustRun("doctor"))
	assert.Contains(t, out, "lists_invalid_json")

	_, _, err := runCLI(t, []string{"--db", e.db, "doctor", "--fail"})
	require.Error(t, err)
}

func TestCLI_BackupRestore(t *testing.T) {
	e := newCLIEnv(t, "state.sqlite")
	listID := e.newID("lists", "add", "Work", "--select")
	e.newID("tasks", "add", "Ship")

	to := filepath.Join(t.TempDir(), "backup.json")
	e.mustRun("backup", "--to", to)
	e.mustRun("lists", "rm", listID)

	var empty []listRow
	e.mustJSON(&empty, "lists", "ls")
	require.Empty(t, empty)

	other := newCLIEnv(t, "other.json")
	other.mustRun("restore", "--from", to)
	e.mustRun("restore", "--from", to)

	for _, env := range []cliEnv{e, other} {
		var lists []listRow
		env.mustJSON(&lists, "lists", "ls")
		require.Len(t, lists, 1)
		assert.Equal(t, listRow{ID: listID, Name: "Work", Tasks: 1, Remaining: 1, Selected: true}, lists[0])
	}
}
