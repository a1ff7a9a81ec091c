package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/mood"
	"tableflip.dev/mindtrackr/pkg/view"
)

const calendarWidth = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing on, colouring each day by its most
// frequent mood. Days without entries are faint.
func (pp *PrettyPrint) Calendar(on entry.Date, entries ...*entry.Entry) {
	w := pp.out()
	first := entry.Date{Year: on.Year, Month: on.Month, Day: 1}
	dominant := view.DominantByDate(entries)

	tf := color.New(color.Bold)
	title := fmt.Sprintf("%s %d", first.Month, first.Year)
	mid := (calendarWidth - len(title)) / 2
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), title)

	faint := color.New(color.Faint)
	_, _ = faint.Fprintln(w, "Su Mo Tu We Th Fr Sa")

	d := StartDay(first)
	_, _ = fmt.Fprint(w, strings.Repeat("   ", int(d)))

	seen := map[mood.Mood]bool{}
	for i := 1; i <= DaysIn(first); i++ {
		day := entry.Date{Year: first.Year, Month: first.Month, Day: i}
		label := fmt.Sprintf("%2d", i)
		if m, ok := dominant[day]; ok {
			seen[m] = true
			_, _ = MoodColor(m).Add(color.Bold).Fprint(w, label)
		} else {
			_, _ = faint.Fprint(w, label)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		} else {
			_, _ = fmt.Fprint(w, " ")
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")

	var keys []string
	for _, m := range mood.All() {
		if seen[m] {
			keys = append(keys, MoodColor(m).Sprint(swatch)+" "+m.String())
		}
	}
	if len(keys) > 0 {
		_, _ = fmt.Fprintln(w, strings.Join(keys, "  "))
	}
}

func DaysIn(d entry.Date) int {
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(d entry.Date) time.Weekday {
	return time.Date(d.Year, d.Month, 1, 1, 0, 0, 0, time.UTC).Weekday()
}
