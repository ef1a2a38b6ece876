package cli

import (
	"errors"

	"tasklist-cli/internal/mutate"
)

var (
	errNameRequired = errors.New("name is required")
	errNoSelection  = errors.New("no list selected; run `tasklist lists select <list-id>` or pass a list id")
)

func errNotFound(kind, id string) error {
	return mutate.NotFoundError{Kind: kind, ID: id}
}
