package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/mood"
	"tableflip.dev/mindtrackr/pkg/view"
)

type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	// Width wraps entry text; zero means 80 columns.
	Width int
}

var (
	// A uuid plus two spaces.
	spacing = strings.Repeat(" ", len("3f2504e0-4f89-11d3-9a0c-0305e82c3301  "))

	moodWidth = len(string(mood.Stressed))
)

const swatch = "●"

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return 80
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Entries prints one line per entry: date, mood swatch and wrapped text.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	w := pp.out()
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(w, spacing)
		}
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	d := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	// date + two spaces + swatch + space + mood + two spaces
	prefix := len(entry.DateLayout) + 2 + 1 + 1 + moodWidth + 2
	if pp.ShowID {
		prefix += len(spacing)
	}
	textWidth := pp.width() - prefix
	if textWidth < 20 {
		textWidth = 20
	}
	indent := "\n" + strings.Repeat(" ", prefix)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Fprint(w, e.ID)
			if pad := len(spacing) - len(e.ID); pad > 0 {
				_, _ = fmt.Fprint(w, strings.Repeat(" ", pad))
			} else {
				_, _ = fmt.Fprint(w, "  ")
			}
		}
		_, _ = d.Fprint(w, e.Date.String())
		_, _ = fmt.Fprintf(w, "  %s %-*s  ", MoodColor(e.Mood).Sprint(swatch), moodWidth, e.Mood)
		text := wordwrap.String(e.Text, textWidth)
		_, _ = fmt.Fprintln(w, strings.ReplaceAll(text, "\n", indent))
	}
	_, _ = fmt.Fprintln(w, "")
}

// Summary prints per-mood counts and percentages as a table.
func (pp *PrettyPrint) Summary(s view.Summary) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mood"), bold.Sprint("Entries"), bold.Sprint("Share"))
	for _, m := range s.Counts.Ordered() {
		tbl.AddRow(MoodColor(m).Sprint(swatch)+" "+m.String(), s.Counts[m], fmt.Sprintf("%d%%", s.Percent[m]))
	}
	tbl.RightAlign(1)
	tbl.RightAlign(2)
	_, _ = fmt.Fprintln(pp.out(), tbl)

	if s.Total > 0 {
		f := color.New(color.Faint)
		_, _ = f.Fprintf(pp.out(), "\n%d total, mostly %s, from %s to %s\n", s.Total, s.Top, s.First, s.Last)
	}
}

// Legend prints every mood with its colour, aliases and meaning.
func (pp *PrettyPrint) Legend() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("   Mood"), bold.Sprint("Colour"), bold.Sprint("Aliases"), bold.Sprint("Meaning"))
	for _, info := range mood.Defaults() {
		tbl.AddRow(MoodColor(info.Mood).Sprint(swatch)+" "+info.Mood.String(), info.Color,
			strings.Join(info.Aliases, ", "), info.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// MoodColor is a fatih/color printer using the mood's palette colour.
func MoodColor(m mood.Mood) *color.Color {
	c, err := colorful.Hex(m.Color())
	if err != nil {
		return color.New()
	}
	r, g, b := c.RGB255()
	return color.RGB(int(r), int(g), int(b))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ChartProfile picks the colour profile for charts written to f. Pipes and
// files, or color.NoColor, get plain text.
func ChartProfile(f *os.File) termenv.Profile {
	if color.NoColor || f == nil || !IsTerminal(f) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).Profile
}
