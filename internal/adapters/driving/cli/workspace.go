package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docshelf-cli/internal/logger"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage workspaces",
	Long:  `List, create, rename, or delete workspaces.`,
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your workspaces",
	RunE:  runWorkspaceList,
}

var workspaceCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceCreate,
}

var workspaceRenameCmd = &cobra.Command{
	Use:   "rename [workspace-id] [new-name]",
	Short: "Rename a workspace",
	Args:  cobra.ExactArgs(2),
	RunE:  runWorkspaceRename,
}

var workspaceDeleteCmd = &cobra.Command{
	Use:   "delete [workspace-id]",
	Short: "Delete a workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceDelete,
}

func init() {
	workspaceCmd.AddCommand(workspaceListCmd)
	workspaceCmd.AddCommand(workspaceCreateCmd)
	workspaceCmd.AddCommand(workspaceRenameCmd)
	workspaceCmd.AddCommand(workspaceDeleteCmd)
	rootCmd.AddCommand(workspaceCmd)
}

func runWorkspaceList(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	workspaces, err := workspaceService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}

	if len(workspaces) == 0 {
		cmd.Println("No workspaces yet.")
		cmd.Println("Create one with: docshelf workspace create <name>")
		return nil
	}

	cmd.Println("Workspaces:")
	cmd.Println()
	for i := range workspaces {
		cmd.Printf("  %s\n", workspaces[i].ID)
		cmd.Printf("    Name: %s\n", workspaces[i].Name)
		if !workspaces[i].CreatedAt.IsZero() {
			cmd.Printf("    Created: %s\n", workspaces[i].CreatedAt.Format("2006-01-02 15:04:05"))
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d workspaces\n", len(workspaces))
	return nil
}

func runWorkspaceCreate(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	workspace, err := workspaceService.Create(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}

	cmd.Printf("Workspace created: %s (%s)\n", workspace.Name, workspace.ID)
	return nil
}

func runWorkspaceRename(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	if err := workspaceService.Rename(context.Background(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to rename workspace: %w", err)
	}

	cmd.Printf("Workspace %s renamed to %s.\n", args[0], args[1])
	return nil
}

func runWorkspaceDelete(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	if err := workspaceService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	// The workspace is gone; its cached listings can only be stale.
	if documentService != nil {
		if err := documentService.InvalidateCache(context.Background(), args[0]); err != nil {
			logger.Warn("Dropping cached listings for %s failed: %v", args[0], err)
		}
	}

	cmd.Printf("Workspace %s deleted.\n", args[0])
	return nil
}
