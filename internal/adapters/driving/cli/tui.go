package cli

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/debounce"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for docshelf.

The TUI provides a visual interface for browsing workspaces, searching
documents as you type, and managing the recycle bin with keyboard
navigation.

Controls:
  ↑/k, ↓/j - Navigate lists
  Enter    - Select
  /        - Search documents
  Esc      - Back / Cancel
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(sessionService, workspaceService, documentService, recycleBinService)

	window := debounce.DefaultWindow
	if configStore != nil {
		if ms := configStore.GetInt("search.debounce_ms"); ms > 0 {
			window = time.Duration(ms) * time.Millisecond
		}
	}

	app, err := tui.NewApp(ports, debounce.New(window))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
