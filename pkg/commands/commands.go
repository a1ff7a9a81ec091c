package commands

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/mindtrackr/pkg/commands/options"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/logging"
	"tableflip.dev/mindtrackr/pkg/store"
)

var output = &options.OutputOptions{}

var verbose bool

// config and logger are set by the root PersistentPreRunE.
var config store.Config

var logger = zap.NewNop()

// now is swapped in tests.
var now = time.Now

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mindtrackr",
		Short: options.Wrap80("Mood journaling on the command line."),
		Long: options.Wrap80(`Write short journal entries tagged with a mood, then look back at
how you have been feeling with lists, counts, charts and a calendar.`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addList(topLevel)
	addRemove(topLevel)
	addClear(topLevel)
	addStats(topLevel)
	addExport(topLevel)
	addMoods(topLevel)
	addCalendar(topLevel)
	addInfo(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// setup loads configuration and builds the logger before any command runs.
func setup(cmd *cobra.Command) error {
	output.Out = cmd.OutOrStdout()

	cfg, err := store.LoadConfig()
	if err != nil {
		return output.HandleError(err)
	}
	config = cfg

	level := cfg.LogLevel()
	if verbose {
		level = "debug"
	}
	var outputs []string
	if cmd.Name() == "ui" {
		// The terminal belongs to the UI.
		outputs = []string{uiLogPath(cfg)}
	}
	l, err := logging.New(level, cfg.LogFormat(), outputs...)
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("configuration loaded",
		zap.String("path", cfg.BasePath()),
		zap.String("backend", string(cfg.Backend())),
		zap.String("slot", cfg.SlotName()),
	)
	return nil
}

// openJournal opens the configured slot and loads the journal. The returned
// func closes the slot.
func openJournal(ctx context.Context) (*journal.Store, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if config == nil {
		cfg, err := store.LoadConfig()
		if err != nil {
			return nil, nil, err
		}
		config = cfg
	}
	slot, err := store.Open(config)
	if err != nil {
		return nil, nil, err
	}
	j := journal.New(slot, journal.WithLogger(logger), journal.WithClock(now))
	j.Load(ctx)
	closer := func() {
		if err := slot.Close(); err != nil {
			logger.Warn("closing slot", zap.Error(err))
		}
	}
	return j, closer, nil
}

// run opens the journal, hands it to fn and routes the error through the
// --json output option.
func run(cmd *cobra.Command, fn func(ctx context.Context, j *journal.Store) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	j, closeSlot, err := openJournal(ctx)
	if err != nil {
		return output.HandleError(err)
	}
	defer closeSlot()
	return output.HandleError(fn(ctx, j))
}

func uiLogPath(cfg store.Config) string {
	base := cfg.BasePath()
	if base == "" || cfg.Backend() == store.BackendMemory {
		return os.DevNull
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return os.DevNull
	}
	return filepath.Join(base, "mindtrackr.log")
}
