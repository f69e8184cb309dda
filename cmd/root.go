// SPDX-License-Identifier: MIT

// Package cmd implements the tradelanes command line.
package cmd

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tradelanes/config"
	"github.com/katalvlaran/tradelanes/logging"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	log    *log.Logger
	closer io.Closer
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{log: log.New(), cfg: config.Default()}

	root := &cobra.Command{
		Use:   "tradelanes",
		Short: "Expected-cost routing across lossy planet networks",
		Long: `tradelanes finds the route between two planets with the lowest expected cost,
where every route has a traversal cost and a probability of failing.
Networks are read from YAML, TOML or JSON scenario files.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.AddGroup(
		&cobra.Group{ID: "route", Title: "Routing Commands"},
		&cobra.Group{ID: "net", Title: "Network Commands"},
	)
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides [log].level)")

	root.AddCommand(
		a.routeCmd(),
		a.sampleCmd(),
		a.tableCmd(),
		a.generateCmd(),
		a.layoutCmd(),
		a.reachCmd(),
	)

	return root, a
}

// setup loads the configuration and configures logging before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg

	a.closer, err = logging.Setup(a.log, cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if a.configPath != "" {
		a.log.Debugf("configuration loaded from %s", a.configPath)
	}

	return nil
}

func (a *app) close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

// Execute runs the command line and exits non-zero on failure.
// It is called by main.main().
func Execute() {
	root, a := newRoot()
	err := root.Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}
