package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/cognicore/wordgraph/internal/textload"
	"github.com/cognicore/wordgraph/pkg/wordgraph"
)

// DefaultDebounce is the quiet period after the last write before a file
// is reprocessed.
const DefaultDebounce = 200 * time.Millisecond

func newWatchCmd(o *rootOptions) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Recompute counts and graph statistics whenever a file changes",
		Long: `Watch a file and print a summary line after every change. The
containing directory is watched so that editors which replace the file
on save are followed. Stop with Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" {
				return errors.New("watch needs a file, not stdin")
			}
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			s, _, err := o.session(cmd, path)
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			report(out, s)
			o.logger.Info("watching", "path", path, "debounce", debounce)

			return debounceLoop(ctx, watcher.Events, watcher.Errors, path, debounce, o.logger, func() {
				text, err := textload.Load(path)
				if err != nil {
					o.logger.Warn("reload failed", "path", path, "error", err)
					return
				}
				s.SetText(text)
				report(out, s)
			})
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", DefaultDebounce, "Quiet period before reprocessing")
	return cmd
}

// report rebuilds the graph and prints one summary line.
func report(w io.Writer, s *wordgraph.Session) {
	s.BuildGraph()
	sum := s.Summary()
	st := s.GraphStats()
	fmt.Fprintf(w, "%s words=%d unique=%d hidden=%d nodes=%d edges=%d max_weight=%g avg_weight=%.2f\n",
		time.Now().Format("15:04:05"),
		sum.TotalWords, sum.UniqueWords, sum.HiddenWords,
		st.NodeCount, st.EdgeCount, st.MaxEdgeWeight, st.AvgEdgeWeight)
}

// debounceLoop calls onChange once events for target have been quiet for
// delay. It returns when ctx is done or the event channel closes.
func debounceLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error,
	target string, delay time.Duration, logger *slog.Logger, onChange func()) error {
	target = filepath.Clean(target)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("file event", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(delay)
			} else {
				timer.Reset(delay)
			}
			fire = timer.C

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)

		case <-fire:
			fire = nil
			onChange()
		}
	}
}
