package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alnah/journal-companion/internal/guidance"
	"github.com/alnah/journal-companion/internal/mode"
)

// emptyInputMessage is shown when no text was given.
const emptyInputMessage = "please enter your thoughts before getting guidance"

// askOptions holds validated options for the ask command.
type askOptions struct {
	mode  mode.Mode
	text  string
	flags serviceFlags
}

// AskCmd creates the ask command (one guidance exchange).
// The env parameter provides injectable dependencies for testing.
func AskCmd(env *Env) *cobra.Command {
	var (
		modeFlag string
		flags    serviceFlags
	)

	cmd := &cobra.Command{
		Use:   "ask [text...]",
		Short: "Get AI guidance for a journal entry",
		Long: `Get AI guidance for a journal entry.

The entry is taken from the arguments, or from stdin when no argument is
given. The selected mode decides the coach persona and the single task the
model is asked to perform.

Modes (see "journal modes"):
  morning-intention    Morning: Mind-Clear & Daily Intention
  evening-reflection   Evening: Daily Log & Reflection
  weekly-review        Weekly: Review & Plan
  deep-dive-letter     Deep Dive: Unsent Letter`,
		Example: `  journal ask -m evening-reflection "Today was tense at work."
  journal ask -m weekly-review < week.md
  journal ask -m deep-dive-letter -p openai "Dear past me, ..."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseAskOptions(env, modeFlag, args, flags)
			if err != nil {
				return err
			}
			return runAsk(cmd.Context(), env, opts)
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", mode.MorningIntention, "Journaling mode (identifier or label)")
	flags.register(cmd)

	return cmd
}

// parseAskOptions validates inputs at the CLI boundary.
// Empty text is rejected before any configuration is loaded.
func parseAskOptions(env *Env, modeFlag string, args []string, flags serviceFlags) (askOptions, error) {
	m, err := mode.ParseLabel(modeFlag)
	if err != nil {
		return askOptions{}, fmt.Errorf("%w (see: journal modes)", err)
	}

	text := strings.Join(args, " ")
	if len(args) == 0 && env.Stdin != nil {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return askOptions{}, fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	if err := guidance.CheckInput(text); err != nil {
		return askOptions{}, fmt.Errorf("%s: %w", emptyInputMessage, err)
	}

	return askOptions{mode: m, text: text, flags: flags}, nil
}

// runAsk runs one exchange and writes the guidance to stdout.
// A failed exchange is returned as *guidance.Failure.
func runAsk(ctx context.Context, env *Env, opts askOptions) error {
	svc, _, err := newService(ctx, env, opts.flags)
	if err != nil {
		return err
	}

	result := svc.GetMode(ctx, opts.mode, opts.text)
	if !result.OK() {
		return result.Failure
	}

	return writeGuidance(env.Stdout, result.Text, env.IsTerminal != nil && env.IsTerminal(env.Stdout))
}
