package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/spf13/cobra"

	"tableflip.dev/mindtrackr/pkg/view"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "completion [bash|zsh|fish]",
		Short:     "Generates shell completion scripts",
		ValidArgs: []string{"bash", "zsh", "fish"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		Long: `To load completion run

. <(mindtrackr completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(mindtrackr completion)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) > 0 {
				shell = args[0]
			}
			switch shell {
			case "zsh":
				return topLevel.GenZshCompletion(os.Stdout)
			case "fish":
				return topLevel.GenFishCompletion(os.Stdout, true)
			default:
				return topLevel.GenBashCompletionV2(os.Stdout, true)
			}
		},
	}

	topLevel.AddCommand(cmd)
}

// entryCompletions offers entry ids, newest first, described by date, mood
// and the start of the text.
func entryCompletions(cmd *cobra.Command) []string {
	j, closeSlot, err := openJournal(cmd.Context())
	if err != nil {
		return nil
	}
	defer closeSlot()

	entries := view.SortByDate(j.Entries(), view.Descending)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		text := truncate.StringWithTail(strings.ReplaceAll(e.Text, "\n", " "), 30, "...")
		out = append(out, fmt.Sprintf("%s\t%s %s %s", e.ID, e.Date, e.Mood, text))
	}
	return out
}
