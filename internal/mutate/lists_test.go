package mutate

import (
	"testing"

	"tasklist-cli/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateList_FindByReturnedID(t *testing.T) {
	st := model.NewState()
	l := AppendList(st, CreateList("Groceries"))

	got, ok := FindList(st, l.ID)
	require.True(t, ok)
	assert.Equal(t, "Groceries", got.Name)
	assert.NotNil(t, got.Tasks)
	assert.Empty(t, got.Tasks)
}

func TestNewID_UniqueUnderRapidCalls(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 5000; i++ {
		id := NewID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %q after %d calls", id, i)
		seen[id] = true
	}
}

func TestFindList_StaleAndEmptyIDs(t *testing.T) {
	st := model.NewState()
	AppendList(st, CreateList("A"))

	_, ok := FindList(st, "")
	assert.False(t, ok)
	_, ok = FindList(st, "missing")
	assert.False(t, ok)
	_, ok = FindList(nil, "missing")
	assert.False(t, ok)
}

func TestSelectList(t *testing.T) {
	st := model.NewState()
	a := AppendList(st, CreateList("A")).ID
	b := AppendList(st, CreateList("B")).ID

	require.NoError(t, SelectList(st, a))
	assert.Equal(t, a, st.SelectedListID)
	require.NoError(t, SelectList(st, b))
	assert.Equal(t, b, st.SelectedListID)

	err := SelectList(st, "nope")
	var nf NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "list", nf.Kind)
	assert.Equal(t, b, st.SelectedListID, "failed select keeps previous selection")

	require.NoError(t, SelectList(st, ""))
	assert.False(t, st.HasSelection())
}

func TestSelectedList_StaleSelection(t *testing.T) {
	st := model.NewState()
	AppendList(st, CreateList("A"))
	st.SelectedListID = "gone"

	_, ok := SelectedList(st)
	assert.False(t, ok)
}

func TestDeleteList_SelectedClearsSelection(t *testing.T) {
	st := model.NewState()
	a := AppendList(st, CreateList("A")).ID
	b := AppendList(st, CreateList("B")).ID
	st.SelectedListID = a

	require.True(t, DeleteList(st, a))
	assert.Empty(t, st.SelectedListID)
	require.Len(t, st.Lists, 1)
	assert.Equal(t, b, st.Lists[0].ID)
}

func TestDeleteList_OtherKeepsSelection(t *testing.T) {
	st := model.NewState()
	a := AppendList(st, CreateList("A")).ID
	b := AppendList(st, CreateList("B")).ID
	st.SelectedListID = a

	require.True(t, DeleteList(st, b))
	assert.Equal(t, a, st.SelectedListID)
	assert.False(t, DeleteList(st, "missing"))
	assert.Len(t, st.Lists, 1)
}
