package render

import (
	"testing"

	"tasklist-cli/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountLabel(t *testing.T) {
	cases := map[int]string{
		0:  "0 tasks remaining",
		1:  "1 task remaining",
		2:  "2 tasks remaining",
		11: "11 tasks remaining",
	}
	for n, want := range cases {
		assert.Equal(t, want, CountLabel(n))
	}
}

func TestRender_NoSelection(t *testing.T) {
	st := &model.State{Lists: []model.List{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}}

	v := Render(st)
	assert.Equal(t, ModeNoSelection, v.Mode())
	assert.Nil(t, v.Details)
	require.Len(t, v.Lists, 2)
	assert.Equal(t, -1, v.ActiveIndex())
}

func TestRender_StaleSelectionFallsBack(t *testing.T) {
	st := &model.State{Lists: []model.List{{ID: "a", Name: "A"}}, SelectedListID: "gone"}

	v := Render(st)
	assert.Equal(t, ModeNoSelection, v.Mode())
	assert.Equal(t, -1, v.ActiveIndex())
}

func TestRender_Selection(t *testing.T) {
	st := &model.State{
		Lists: []model.List{
			{ID: "a", Name: "A"},
			{ID: "b", Name: "Groceries", Tasks: []model.Task{
				{ID: "t1", Name: "Milk", Complete: true},
				{ID: "t2", Name: "Eggs"},
			}},
		},
		SelectedListID: "b",
	}

	v := Render(st)
	require.Equal(t, ModeSelection, v.Mode())
	assert.Equal(t, 1, v.ActiveIndex())
	assert.False(t, v.Lists[0].Active)
	assert.True(t, v.Lists[1].Active)

	d := v.Details
	assert.Equal(t, "b", d.ListID)
	assert.Equal(t, "Groceries", d.Title)
	assert.Equal(t, 1, d.Remaining)
	assert.Equal(t, "1 task remaining", d.Count)
	assert.Equal(t, []TaskRow{
		{ID: "t1", Name: "Milk", Complete: true},
		{ID: "t2", Name: "Eggs"},
	}, d.Tasks)
}

func TestRender_IsIdempotent(t *testing.T) {
	st := &model.State{
		Lists:          []model.List{{ID: "a", Name: "A", Tasks: []model.Task{{ID: "t", Name: "x"}}}},
		SelectedListID: "a",
	}
	assert.Equal(t, Render(st), Render(st))
}

func TestRender_Nil(t *testing.T) {
	v := Render(nil)
	assert.Equal(t, ModeNoSelection, v.Mode())
	assert.Empty(t, v.Lists)
}

func TestSetCount(t *testing.T) {
	d := &Details{}
	SetCount(d, 3)
	assert.Equal(t, 3, d.Remaining)
	assert.Equal(t, "3 tasks remaining", d.Count)
	SetCount(nil, 1)
}
