package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eth2030/merklepartial/eftest"
	"github.com/eth2030/merklepartial/gindex"
	"github.com/eth2030/merklepartial/log"
	"github.com/eth2030/merklepartial/metrics"
	"github.com/eth2030/merklepartial/overlay"
)

// ErrFixturesFailed is returned by eftest when any vector fails.
var ErrFixturesFailed = errors.New("ssz_generic fixtures failed")

// app carries the resolved configuration from the root command to its
// subcommands.
type app struct {
	configPath string
	verbosity  int
	logFormat  string

	cfg    Config
	logger *log.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "ssztree",
		Short:         "Inspect generalized indices of SSZ merkle trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	defaults := DefaultConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.IntVar(&a.verbosity, "verbosity", defaults.Verbosity, "log level 0-5 (0=silent, 5=debug)")
	pf.StringVar(&a.logFormat, "log.format", defaults.LogFormat, "log format (text, json)")

	root.AddCommand(
		a.shapeCommand(),
		a.nodeCommand(),
		a.walkCommand(),
		a.eftestCommand(),
		versionCommand(),
	)
	return root
}

// setup loads the config file, applies explicitly set flags on top of it
// and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("verbosity") {
		cfg.Verbosity = a.verbosity
	}
	if flags.Changed("log.format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Lookup("depth") != nil && flags.Changed("depth") {
		depth, err := flags.GetUint8("depth")
		if err != nil {
			return err
		}
		cfg.WalkDepth = depth
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		workers, err := flags.GetInt("workers")
		if err != nil {
			return err
		}
		cfg.Workers = workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level := log.VerbosityToLevel(cfg.Verbosity)
	if cfg.LogFormat == "json" {
		a.logger = log.NewJSON(cmd.ErrOrStderr(), level)
	} else {
		a.logger = log.NewText(cmd.ErrOrStderr(), level)
	}
	log.SetDefault(a.logger)
	a.logger.Module("cmd").Debug("config resolved",
		"config", a.configPath, "verbosity", cfg.Verbosity, "walk_depth", cfg.WalkDepth, "workers", cfg.Workers)
	return nil
}

func (a *app) shapeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shape <type>",
		Short: "Print the height and leaf range of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := overlay.ParseType(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "type:       %s\n", o)
			fmt.Fprintf(out, "height:     %d\n", o.Height())
			fmt.Fprintf(out, "first_leaf: %d\n", o.FirstLeaf())
			fmt.Fprintf(out, "last_leaf:  %d\n", o.LastLeaf())
			return nil
		},
	}
}

func (a *app) nodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "node <type> <gindex>...",
		Short: "Classify generalized indices of a type",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := overlay.ParseType(args[0])
			if err != nil {
				return err
			}
			indices := make([]gindex.Index, 0, len(args)-1)
			for _, s := range args[1:] {
				index, err := strconv.ParseUint(s, 0, 64)
				if err != nil {
					return fmt.Errorf("invalid generalized index %q: %w", s, err)
				}
				indices = append(indices, index)
			}
			for _, index := range indices {
				fmt.Fprintln(cmd.OutOrStdout(), o.GetNode(index))
			}
			return nil
		},
	}
}

func (a *app) walkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk <type>",
		Short: "List the attached nodes of a type breadth-first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := overlay.ParseType(args[0])
			if err != nil {
				return err
			}
			n := 0
			overlay.Walk(o, a.cfg.WalkDepth, func(node overlay.Node) bool {
				fmt.Fprintln(cmd.OutOrStdout(), node)
				n++
				return true
			})
			a.logger.Module("cmd").Info("walk done", "type", o.String(), "depth", a.cfg.WalkDepth, "nodes", n)
			return nil
		},
	}
	cmd.Flags().Uint8("depth", DefaultConfig().WalkDepth, "levels to descend")
	return cmd
}

func (a *app) eftestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eftest [dir]",
		Short: "Run ssz_generic test vectors against the scalar codec",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.FixtureDir
			if len(args) == 1 {
				dir = args[0]
			}

			var (
				batch *eftest.BatchResult
				err   error
			)
			if a.cfg.Workers > 1 {
				batch, err = eftest.RunFixtureDirConcurrent(dir, a.cfg.Workers)
			} else {
				batch, err = eftest.RunFixtureDir(dir)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range batch.Errors {
				fmt.Fprintf(out, "FAIL %s #%d (%s): %v\n", r.File, r.Index, r.Type, r.Error)
			}
			fmt.Fprintf(out, "total=%d passed=%d failed=%d skipped=%d\n",
				batch.Total, batch.Passed, batch.Failed, batch.Skipped)
			timing := metrics.FixtureTime.Snapshot()
			a.logger.Module("cmd").Info("eftest done",
				"dir", dir,
				"fixtures", metrics.FixturesLoaded.Value(),
				"fixture_errors", metrics.FixtureErrors.Value(),
				"mean_ms", timing.Mean(),
				"max_ms", timing.Max)
			if batch.Failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrFixturesFailed, batch.Failed, batch.Total)
			}
			return nil
		},
	}
	cmd.Flags().Int("workers", DefaultConfig().Workers, "fixture files run in parallel")
	return cmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "ssztree %s (commit %s)\n", version, commit)
			return nil
		},
	}
}
