package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var binCmd = &cobra.Command{
	Use:   "bin",
	Short: "Manage the recycle bin",
	Long:  `List, restore, or permanently delete soft-deleted documents.`,
}

var binListCmd = &cobra.Command{
	Use:   "list",
	Short: "List soft-deleted documents",
	RunE:  runBinList,
}

var binRestoreCmd = &cobra.Command{
	Use:   "restore [doc-id]",
	Short: "Restore a document to its workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runBinRestore,
}

var binPurgeCmd = &cobra.Command{
	Use:   "purge [doc-id]",
	Short: "Permanently delete a document",
	Long:  `Permanently deletes a soft-deleted document. This cannot be undone.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBinPurge,
}

func init() {
	binCmd.AddCommand(binListCmd)
	binCmd.AddCommand(binRestoreCmd)
	binCmd.AddCommand(binPurgeCmd)
	rootCmd.AddCommand(binCmd)
}

func runBinList(cmd *cobra.Command, _ []string) error {
	if recycleBinService == nil {
		return errors.New("recycle bin service not configured")
	}

	docs, err := recycleBinService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list recycle bin: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("Recycle bin is empty.")
		return nil
	}

	cmd.Println("Recycle bin:")
	cmd.Println()
	printDocuments(cmd, docs)
	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runBinRestore(cmd *cobra.Command, args []string) error {
	if recycleBinService == nil {
		return errors.New("recycle bin service not configured")
	}

	remaining, err := recycleBinService.Restore(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to restore document: %w", err)
	}

	cmd.Printf("Document %s restored. %d documents remain in the bin.\n", args[0], len(remaining))
	return nil
}

func runBinPurge(cmd *cobra.Command, args []string) error {
	if recycleBinService == nil {
		return errors.New("recycle bin service not configured")
	}

	remaining, err := recycleBinService.PermanentDelete(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to permanently delete document: %w", err)
	}

	cmd.Printf("Document %s permanently deleted. %d documents remain in the bin.\n", args[0], len(remaining))
	return nil
}
