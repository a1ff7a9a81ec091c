package chart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/muesli/termenv"
)

const (
	EmptyTitle       = "No mood data yet"
	EmptyDescription = "Add some journal entries to see your mood patterns"
)

const (
	barCell   = "█"
	pieCell   = "█"
	legendDot = "●"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

func render(kind Kind, data Data, width int, p termenv.Profile) string {
	if data.Empty() || len(data.Datasets) == 0 {
		return EmptyTitle + "\n" + EmptyDescription + "\n"
	}
	switch kind {
	case Pie:
		return renderPie(data, width, p)
	case Line:
		return renderLine(data, width, p)
	default:
		return renderBar(data, width, p)
	}
}

func paint(p termenv.Profile, hex, s string) string {
	return p.String(s).Foreground(p.Color(hex)).String()
}

func labelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		if len(l) > w {
			w = len(l)
		}
	}
	return w
}

func renderBar(data Data, width int, p termenv.Profile) string {
	ds := data.Datasets[0]
	max := 0
	for _, v := range ds.Values {
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	b.WriteString(ds.Label + "\n")
	lw := labelWidth(data.Labels)
	for i, v := range ds.Values {
		n := 0
		if max > 0 {
			n = (v*width + max/2) / max
		}
		if v > 0 && n == 0 {
			n = 1
		}
		bar := paint(p, ds.Background[i], strings.Repeat(barCell, n))
		tip := ""
		if i < len(data.Tooltips) {
			tip = data.Tooltips[i]
		}
		fmt.Fprintf(&b, "%-*s %s%s  %s\n", lw, data.Labels[i], bar, strings.Repeat(" ", width-n), tip)
	}
	return b.String()
}

// renderPie draws one proportional strip with a legend underneath.
func renderPie(data Data, width int, p termenv.Profile) string {
	ds := data.Datasets[0]
	cells := apportion(ds.Values, width)

	var b strings.Builder
	for i, n := range cells {
		b.WriteString(paint(p, ds.Background[i], strings.Repeat(pieCell, n)))
	}
	b.WriteString("\n")

	lw := labelWidth(data.Labels)
	for i, v := range ds.Values {
		pct := 0
		if i < len(data.Percent) {
			pct = data.Percent[i]
		}
		fmt.Fprintf(&b, "%s %-*s %3d%% (%d)\n", paint(p, ds.Border[i], legendDot), lw, data.Labels[i], pct, v)
	}
	return b.String()
}

// apportion splits width cells across values by largest remainder so the
// strip always fills exactly.
func apportion(values []int, width int) []int {
	total := 0
	for _, v := range values {
		total += v
	}
	out := make([]int, len(values))
	if total == 0 {
		return out
	}
	type rem struct {
		idx  int
		frac int
	}
	rems := make([]rem, 0, len(values))
	used := 0
	for i, v := range values {
		out[i] = v * width / total
		used += out[i]
		rems = append(rems, rem{idx: i, frac: v * width % total})
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; used < width && i < len(rems); i++ {
		out[rems[i].idx]++
		used++
	}
	return out
}

func renderLine(data Data, width int, p termenv.Profile) string {
	ds := data.Datasets[0]
	values, labels := ds.Values, data.Labels
	if len(values) > width {
		values = values[len(values)-width:]
		labels = labels[len(labels)-width:]
	}
	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	var spark strings.Builder
	top := len(sparkLevels) - 1
	for _, v := range values {
		idx := 0
		if max > 0 {
			idx = (v*top + max/2) / max
		}
		spark.WriteRune(sparkLevels[idx])
	}

	var b strings.Builder
	b.WriteString(ds.Label + "\n")
	color := lineColor
	if len(ds.Background) > 0 {
		color = ds.Background[0]
	}
	b.WriteString(paint(p, color, spark.String()) + "\n")
	first, last := labels[0], labels[len(labels)-1]
	if len(labels) == 1 {
		b.WriteString(first + "\n")
	} else {
		fmt.Fprintf(&b, "%s .. %s (peak %d)\n", first, last, max)
	}
	return b.String()
}
