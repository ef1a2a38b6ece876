package cli

import (
	"sort"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

// leafCommands walks the compiled command tree and returns every runnable leaf
// path, plus flags that have no usage text.
func leafCommands(root *cobra.Command) (leaves []string, undocumented []string) {
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		path := strings.TrimSpace(strings.TrimPrefix(c.CommandPath(), "tasklist"))
		check := func(f *pflag.Flag) {
			if f.Hidden || f.Name == "help" {
				return
			}
			if strings.TrimSpace(f.Usage) == "" {
				undocumented = append(undocumented, path+" --"+f.Name)
			}
		}
		c.LocalFlags().VisitAll(check)

		if (c.Run != nil || c.RunE != nil) && !c.HasSubCommands() {
			leaves = append(leaves, path)
		}
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(root)
	sort.Strings(leaves)
	return leaves, undocumented
}

func TestCommandTree(t *testing.T) {
	root := NewRootCmd()
	leaves, undocumented := leafCommands(root)

	assert.Equal(t, []string{
		"backup",
		"doctor",
		"export",
		"lists add",
		"lists clear",
		"lists ls",
		"lists rm",
		"lists select",
		"restore",
		"show",
		"tasks add",
		"tasks done",
		"tasks ls",
		"tasks undone",
	}, leaves)
	assert.Empty(t, undocumented)

	var persistent []string
	root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		persistent = append(persistent, f.Name)
	})
	assert.ElementsMatch(t, []string{"db", "format", "pretty", "log", "verbose"}, persistent)
}

func TestCommandTree_EveryCommandHasShortHelp(t *testing.T) {
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		assert.NotEmpty(t, c.Short, "command %q", c.CommandPath())
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(NewRootCmd())
}
