package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/enumgen/internal/cli/ui"
	"github.com/conduit-lang/enumgen/internal/generate"
	"github.com/conduit-lang/enumgen/internal/watch"
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate Go code whenever .enum files change",
		Long: `Generate once, then watch source_dir recursively and regenerate
after every batch of .enum changes. Deleting a declaration file also
deletes its generated output. Press Ctrl+C to stop.

Examples:
  enumgen watch
  ENUMGEN_WATCH_DEBOUNCE_MS=300 enumgen watch -C internal/model`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fw, err := watch.NewFileWatcher(env.cfg.SourceDir, env.cfg.Debounce(), env.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			banner := color.New(color.FgCyan, color.Bold)
			gray := color.New(color.FgHiBlack)
			if env.noColor {
				banner.DisableColor()
				gray.DisableColor()
			}
			banner.Fprintf(out, "Watching %s for .enum changes\n", env.cfg.SourceDir)
			gray.Fprintln(out, "Press Ctrl+C to stop")

			report := func(summary *generate.Summary, err error) {
				gray.Fprintf(out, "\n[%s]\n", time.Now().Format("15:04:05"))
				if err != nil {
					fmt.Fprint(out, ui.Warning(err.Error(), env.noColor))
					return
				}
				printSummary(out, env, summary)
			}

			runner := generate.NewRunner(env.cfg, env.logger)
			err = watch.NewRegenerator(runner, env.logger, report).Run(ctx, fw)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
