package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mindtrackr/pkg/mood"
)

// MoodOptions
type MoodOptions struct {
	Name string
}

func AddMoodArg(cmd *cobra.Command, o *MoodOptions, usage string) {
	cmd.Flags().StringVarP(&o.Name, "mood", "m", "", usage+" One of "+strings.Join(mood.Names(), ", ")+".")
	_ = cmd.RegisterFlagCompletionFunc("mood", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return MoodCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// Mood resolves the flag, aliases included. An empty flag is mood.Unset.
func (o *MoodOptions) Mood() (mood.Mood, error) {
	return mood.Parse(o.Name)
}

// Lenient resolves the flag without failing, leaving an unknown or missing
// mood for entry validation to reject.
func (o *MoodOptions) Lenient() mood.Mood {
	return mood.Resolve(o.Name)
}

func MoodCompletions(toComplete string) []string {
	prefix := strings.ToLower(toComplete)
	out := make([]string, 0, len(mood.Names()))
	for _, name := range mood.Names() {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			out = append(out, name)
		}
	}
	return out
}
