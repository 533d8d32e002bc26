package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alnah/journal-companion/internal/mode"
)

// ModesCmd creates the modes command (list journaling modes).
func ModesCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the journaling modes",
		Long: `List the journaling modes in display order.

The first column is the identifier accepted by "ask --mode".`,
		Example: `  journal modes`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModes(env)
		},
	}
}

// runModes prints one "id  label" line per mode.
func runModes(env *Env) error {
	for _, e := range mode.List() {
		if _, err := fmt.Fprintf(env.Stdout, "%-20s %s\n", e.ID, e.Label); err != nil {
			return err
		}
	}
	return nil
}
