package model

type Task struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

type List struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// State is the root of everything the app owns. SelectedListID is empty when no
// list is selected; generated ids are never empty.
type State struct {
	Lists          []List
	SelectedListID string
}

// NewState returns an empty state with no selection.
func NewState() *State {
	return &State{Lists: []List{}}
}

// HasSelection reports whether a selection id is set. It does not check that the
// id still resolves; see mutate.SelectedList for that.
func (s *State) HasSelection() bool {
	return s != nil && s.SelectedListID != ""
}
