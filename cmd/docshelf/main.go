// Command docshelf is a terminal client for a remote document-management
// service. It offers both one-shot commands and an interactive TUI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/docshelf-cli/internal/adapters/driven/api"
	configfile "github.com/custodia-labs/docshelf-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/docshelf-cli/internal/core/services"
	"github.com/custodia-labs/docshelf-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultBaseURL is used when neither config nor environment names a server.
const defaultBaseURL = "http://localhost:4000/api"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if configStore.GetBool(configfile.KeyVerbose) {
		logger.SetVerbose(true)
	}

	baseURL := configStore.GetString(configfile.KeyBaseURL)
	if baseURL == "" {
		baseURL = os.Getenv("DOCSHELF_API_URL")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := api.NewClient(baseURL)

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening local store: %w", err)
	}
	defer store.Close()

	sessionService := services.NewSessionService(client, client, store.SessionStore(), client)
	if err := sessionService.Restore(ctx); err != nil {
		// A corrupt or absent saved session just means logged out.
		logger.Debug("session restore: %v", err)
	}

	workspaceService := services.NewWorkspaceService(client.Workspaces(), sessionService)
	documentService := services.NewDocumentService(client.Documents(), store.ListCache())
	recycleBinService := services.NewRecycleBinService(client.RecycleBin())

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Session:    sessionService,
		Workspace:  workspaceService,
		Document:   documentService,
		RecycleBin: recycleBinService,
		Config:     configStore,
	})

	return cli.Execute(ctx)
}
