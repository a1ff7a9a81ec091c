// Package info reports where the journal lives and how healthy it is.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/store"
)

type Info struct {
	Config  store.Config
	Journal *journal.Store
	Out     io.Writer
}

// Report is the machine readable form of Info.
type Report struct {
	ConfigPath string   `json:"configPath,omitempty"`
	Sources    []string `json:"sources,omitempty"`
	Path       string   `json:"path"`
	Backend    string   `json:"backend"`
	Slot       string   `json:"slot"`
	Quota      int64    `json:"quota"`
	Schema     int      `json:"schema"`
	Entries    int      `json:"entries"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Collect gathers the report without printing it.
func (n *Info) Collect() (*Report, error) {
	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if n.Journal == nil {
		return nil, errors.New("failed to open the journal")
	}

	r := &Report{
		ConfigPath: os.Getenv("MINDTRACKR_CONFIG_PATH"),
		Path:       n.Config.BasePath(),
		Backend:    string(n.Config.Backend()),
		Slot:       n.Config.SlotName(),
		Quota:      n.Config.Quota(),
		Schema:     entry.SchemaVersion,
		Entries:    n.Journal.Len(),
	}
	if s, ok := n.Config.(*store.Settings); ok {
		r.Sources = s.Sources
	}
	for _, w := range n.Journal.Warnings() {
		r.Warnings = append(r.Warnings, w.String())
	}
	return r, nil
}

func (n *Info) Do(_ context.Context) error {
	r, err := n.Collect()
	if err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	if r.ConfigPath != "" {
		_, _ = fmt.Fprintln(out, "MINDTRACKR_CONFIG_PATH found on env, using", r.ConfigPath)
	} else {
		_, _ = faint.Fprintln(out, "MINDTRACKR_CONFIG_PATH env var not set")
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	config := "defaults and environment"
	if len(r.Sources) > 0 {
		config = r.Sources[0]
	}
	tbl.AddRow(bold.Sprint("config"), config)
	tbl.AddRow(bold.Sprint("path"), r.Path)
	tbl.AddRow(bold.Sprint("backend"), r.Backend)
	tbl.AddRow(bold.Sprint("slot"), r.Slot)
	quota := "unlimited"
	if r.Quota > 0 {
		quota = fmt.Sprintf("%d bytes", r.Quota)
	}
	tbl.AddRow(bold.Sprint("quota"), quota)
	tbl.AddRow(bold.Sprint("schema"), fmt.Sprintf("v%d", r.Schema))
	tbl.AddRow(bold.Sprint("entries"), r.Entries)
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)

	if len(r.Warnings) > 0 {
		warn := color.New(color.FgYellow)
		_, _ = warn.Fprintf(out, "\n%d records could not be read:\n", len(r.Warnings))
		for _, w := range r.Warnings {
			_, _ = fmt.Fprintf(out, "  %s\n", w)
		}
	}
	return nil
}
