package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docshelf-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services used by the commands. Injected via SetServices before Execute.
var (
	sessionService    driving.SessionService
	workspaceService  driving.WorkspaceService
	documentService   driving.DocumentService
	recycleBinService driving.RecycleBinService
	configStore       driven.ConfigStore
)

// verbose enables debug logging for a single invocation.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docshelf",
	Short: "Manage documents and workspaces from the terminal",
	Long: `Docshelf is a client for a remote document-management service.

Upload, search, rename and download documents organised into workspaces,
recover soft-deleted documents from the recycle bin, or launch the
interactive terminal UI with 'docshelf tui'.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

// Services bundles everything the commands depend on.
type Services struct {
	Session    driving.SessionService
	Workspace  driving.WorkspaceService
	Document   driving.DocumentService
	RecycleBin driving.RecycleBinService
	Config     driven.ConfigStore
}

// SetServices injects the service implementations used by the commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	sessionService = s.Session
	workspaceService = s.Workspace
	documentService = s.Document
	recycleBinService = s.RecycleBin
	configStore = s.Config
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
