// Package chart turns mood projections into chart data and renders it for
// the terminal.
package chart

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/mindtrackr/pkg/mood"
	"tableflip.dev/mindtrackr/pkg/view"
)

type Kind int

const (
	Bar Kind = iota
	Pie
	Line
)

func (k Kind) String() string {
	switch k {
	case Pie:
		return "pie"
	case Line:
		return "line"
	default:
		return "bar"
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bar":
		return Bar, nil
	case "pie", "doughnut":
		return Pie, nil
	case "line":
		return Line, nil
	default:
		return Bar, fmt.Errorf("chart: unknown chart kind %q (want bar, pie or line)", s)
	}
}

// DatasetLabel names the single series built from mood counts.
const DatasetLabel = "Number of entries"

// Dataset is one series of values with per-point colours.
type Dataset struct {
	Label      string
	Values     []int
	Background []string
	Border     []string
}

// Data is everything a renderer needs. Labels, Tooltips and Percent are
// parallel to each dataset's Values.
type Data struct {
	Labels   []string
	Datasets []Dataset
	Tooltips []string
	Percent  []int
	Total    int
}

// Empty reports whether there is nothing to draw.
func (d Data) Empty() bool {
	if d.Total > 0 {
		return false
	}
	for _, ds := range d.Datasets {
		for _, v := range ds.Values {
			if v > 0 {
				return false
			}
		}
	}
	return true
}

// FromCounts builds the mood frequency series. Only moods that occur are
// labelled, in enumeration order. total is the collection size used for
// percentages.
func FromCounts(counts view.MoodCounts, total int) Data {
	d := Data{Total: total}
	ds := Dataset{Label: DatasetLabel}
	for _, m := range counts.Ordered() {
		n := counts[m]
		p := view.Percent(n, total)
		d.Labels = append(d.Labels, m.String())
		d.Percent = append(d.Percent, p)
		d.Tooltips = append(d.Tooltips, Tooltip(m, n, total))
		ds.Values = append(ds.Values, n)
		ds.Background = append(ds.Background, m.Color())
		ds.Border = append(ds.Border, Darken(m.Color(), 0.2))
	}
	d.Datasets = []Dataset{ds}
	return d
}

// FromDates builds the entries-per-day series for the line chart.
func FromDates(points []view.DateCount) Data {
	d := Data{}
	ds := Dataset{Label: "Entries per day"}
	for _, p := range points {
		d.Labels = append(d.Labels, p.Date.String())
		d.Tooltips = append(d.Tooltips, fmt.Sprintf("%s: %d %s", p.Date, p.Count, plural(p.Count)))
		ds.Values = append(ds.Values, p.Count)
		ds.Background = append(ds.Background, lineColor)
		ds.Border = append(ds.Border, Darken(lineColor, 0.2))
		d.Total += p.Count
	}
	for _, v := range ds.Values {
		d.Percent = append(d.Percent, view.Percent(v, d.Total))
	}
	d.Datasets = []Dataset{ds}
	return d
}

const lineColor = "#8b5cf6"

// Tooltip is the hover text for one bar, e.g. "Happy: 2 entries (40%)".
func Tooltip(m mood.Mood, count, total int) string {
	return fmt.Sprintf("%s: %d entries (%d%%)", m, count, view.Percent(count, total))
}

func plural(n int) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}

// Darken lowers the lightness of a hex colour by amount (0..1). Invalid
// input yields the mood fallback colour.
func Darken(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return mood.FallbackColor
	}
	h, s, l := c.Hsl()
	l *= 1 - amount
	return colorful.Hsl(h, s, l).Clamped().Hex()
}
