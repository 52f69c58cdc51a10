package commands

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/enumgen/internal/cli/config"
	"github.com/conduit-lang/enumgen/internal/cli/ui"
	"github.com/conduit-lang/enumgen/internal/logging"
)

// environment is what every command needs from the root flags
type environment struct {
	dir     string
	cfg     *config.Config
	logger  *zap.Logger
	noColor bool
}

func loadEnvironment(cmd *cobra.Command) (*environment, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = "."
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	noColor = noColor || color.NoColor

	cfg, err := config.LoadDir(dir)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigFailed(err, noColor))
		return nil, errReported
	}
	if verbose {
		cfg.Verbose = true
	}

	return &environment{
		dir:     dir,
		cfg:     cfg,
		logger:  logging.New(cfg.Verbose),
		noColor: noColor,
	}, nil
}

// resolve makes paths relative to the working directory flag
func (e *environment) resolve(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = e.path(p)
	}
	return out
}

func (e *environment) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(e.dir, p)
}

// rel shortens a path for display
func (e *environment) rel(p string) string {
	if r, err := filepath.Rel(e.dir, p); err == nil {
		return r
	}
	return p
}

// sync flushes the logger, ignoring the error stderr returns on some systems
func (e *environment) sync() {
	_ = e.logger.Sync()
}
