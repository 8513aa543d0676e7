package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
	"github.com/custodia-labs/docshelf-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [workspace-id] [directory]",
	Short: "Watch a directory and upload new files",
	Long: `Watch a local directory and automatically upload files created in it
to the given workspace. Runs until interrupted.

A file is uploaded once its last write settles, so partially written files
are not picked up mid-copy.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

// watchSettle is how long a file must be quiet before it is uploaded.
const watchSettle = 2 * time.Second

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	workspaceID, dir := args[0], args[1]

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Bind the store to the target workspace before uploading.
	if _, err := documentService.Load(ctx, workspaceID, domain.FilterAll, domain.SortNone); err != nil {
		return fmt.Errorf("failed to load workspace: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	cmd.Printf("Watching %s. New files upload to workspace %s. Ctrl+C to stop.\n", dir, workspaceID)

	// Pending files keyed by path, each with the time of its last write.
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(watchSettle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cmd.Println("\nStopped watching.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
				info, err := os.Stat(event.Name)
				if err != nil || info.IsDir() {
					continue
				}
				pending[event.Name] = time.Now()
			}
			if event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
				delete(pending, event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < watchSettle {
					continue
				}
				delete(pending, path)

				doc, err := documentService.Upload(ctx, path)
				if err != nil {
					logger.Warn("Upload of %s failed: %v", path, err)
					cmd.Printf("Failed to upload %s: %v\n", path, err)
					continue
				}
				cmd.Printf("Uploaded %s (%s)\n", doc.Name, doc.ID)
			}
		}
	}
}
