package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage workspace documents",
	Long:  `List, search, upload, rename, delete, preview, view, or download documents.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list [workspace-id]",
	Short: "List documents in a workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentList,
}

var documentSearchCmd = &cobra.Command{
	Use:   "search [workspace-id] [query]",
	Short: "Search documents in a workspace by name",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocumentSearch,
}

var documentUploadCmd = &cobra.Command{
	Use:   "upload [workspace-id] [file]",
	Short: "Upload a file to a workspace",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocumentUpload,
}

var documentRenameCmd = &cobra.Command{
	Use:   "rename [doc-id] [new-name]",
	Short: "Rename a document",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocumentRename,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Move a document to the recycle bin",
	Long:  `Soft-deletes a document. It can be restored with 'docshelf bin restore'.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

var documentPreviewCmd = &cobra.Command{
	Use:   "preview [doc-id]",
	Short: "Show a document's thumbnail payload",
	Long:  `Prints the inline thumbnail for a document, base64-encoded.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentPreview,
}

var documentViewCmd = &cobra.Command{
	Use:   "view [doc-id]",
	Short: "Show a document's inline representation",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentView,
}

var documentDownloadCmd = &cobra.Command{
	Use:   "download [doc-id]",
	Short: "Download a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDownload,
}

// Flags for document commands.
var (
	documentListType    string
	documentListSort    string
	documentListOffline bool
	downloadDir         string
)

// typeFilters maps flag values onto listing filters.
var typeFilters = map[string]domain.TypeFilter{
	"":     domain.FilterAll,
	"all":  domain.FilterAll,
	"pdf":  domain.FilterPDF,
	"jpeg": domain.FilterJPEG,
	"png":  domain.FilterPNG,
	"word": domain.FilterWord,
}

// sortOrders maps flag values onto listing sort orders.
var sortOrders = map[string]domain.SortOrder{
	"":          domain.SortNone,
	"recent":    domain.SortRecent,
	"oldest":    domain.SortOldest,
	"size-asc":  domain.SortSizeAsc,
	"size-desc": domain.SortSizeDesc,
}

func init() {
	documentListCmd.Flags().StringVarP(
		&documentListType, "type", "t", "", "Filter by type (pdf, jpeg, png, word)")
	documentListCmd.Flags().StringVarP(
		&documentListSort, "sort", "s", "", "Sort order (recent, oldest, size-asc, size-desc)")
	documentListCmd.Flags().BoolVar(
		&documentListOffline, "offline", false, "Read the last cached listing instead of the server")
	documentDownloadCmd.Flags().StringVarP(
		&downloadDir, "dir", "d", "", "Target directory (defaults to the working directory)")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentSearchCmd)
	documentCmd.AddCommand(documentUploadCmd)
	documentCmd.AddCommand(documentRenameCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	documentCmd.AddCommand(documentPreviewCmd)
	documentCmd.AddCommand(documentViewCmd)
	documentCmd.AddCommand(documentDownloadCmd)
	rootCmd.AddCommand(documentCmd)
}

// listingOptions resolves the type and sort flags, falling back to the
// configured default sort when the flag is unset.
func listingOptions() (domain.TypeFilter, domain.SortOrder, error) {
	filter, ok := typeFilters[documentListType]
	if !ok {
		return "", "", fmt.Errorf("unknown type filter: %s", documentListType)
	}

	sortFlag := documentListSort
	if sortFlag == "" && configStore != nil {
		sortFlag = configStore.GetString("documents.sort")
	}
	sort, ok := sortOrders[sortFlag]
	if !ok {
		return "", "", fmt.Errorf("unknown sort order: %s", sortFlag)
	}

	return filter, sort, nil
}

func printDocuments(cmd *cobra.Command, docs []domain.Document) {
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Name: %s\n", docs[i].Name)
		cmd.Printf("    Type: %s\n", docs[i].Type)
		if !docs[i].UploadedAt.IsZero() {
			cmd.Printf("    Uploaded: %s\n", docs[i].UploadedAt.Format("2006-01-02 15:04:05"))
		}
		cmd.Println()
	}
}

func runDocumentList(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	filter, sort, err := listingOptions()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var docs []domain.Document
	if documentListOffline {
		docs, err = documentService.LoadOffline(ctx, args[0], filter, sort)
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Printf("No cached listing for workspace %s yet.\n", args[0])
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read cached listing: %w", err)
		}
	} else {
		docs, err = documentService.Load(ctx, args[0], filter, sort)
		if err != nil {
			return fmt.Errorf("failed to list documents: %w", err)
		}
	}

	if len(docs) == 0 {
		cmd.Printf("No documents in workspace %s.\n", args[0])
		return nil
	}

	if documentListOffline {
		cmd.Printf("Documents in workspace %s (cached):\n\n", args[0])
	} else {
		cmd.Printf("Documents in workspace %s:\n\n", args[0])
	}
	printDocuments(cmd, docs)
	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentSearch(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()
	workspaceID, query := args[0], args[1]

	if _, err := documentService.Load(ctx, workspaceID, domain.FilterAll, domain.SortNone); err != nil {
		return fmt.Errorf("failed to load workspace: %w", err)
	}

	docs, err := documentService.ApplySearch(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(docs) == 0 {
		cmd.Printf("No documents matching %q.\n", query)
		return nil
	}

	cmd.Printf("Documents matching %q:\n\n", query)
	printDocuments(cmd, docs)
	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentUpload(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()
	workspaceID, path := args[0], args[1]

	// Bind the store to the target workspace before uploading.
	if _, err := documentService.Load(ctx, workspaceID, domain.FilterAll, domain.SortNone); err != nil {
		return fmt.Errorf("failed to load workspace: %w", err)
	}

	doc, err := documentService.Upload(ctx, path)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	cmd.Printf("Uploaded %s (%s)\n", doc.Name, doc.ID)
	return nil
}

func runDocumentRename(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.Rename(context.Background(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to rename document: %w", err)
	}

	cmd.Printf("Document %s renamed to %s.\n", args[0], args[1])
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.SoftDelete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Document %s moved to the recycle bin.\n", args[0])
	return nil
}

func runDocumentPreview(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	preview, err := documentService.Preview(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to preview document: %w", err)
	}

	if preview == "" {
		cmd.Printf("Document %s has no preview.\n", args[0])
		return nil
	}

	cmd.Println(preview)
	return nil
}

func runDocumentView(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	view, err := documentService.View(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to view document: %w", err)
	}

	cmd.Printf("Name: %s\n", view.Name)
	cmd.Printf("Type: %s\n", view.Type)
	cmd.Println()
	cmd.Println(view.Data)
	return nil
}

func runDocumentDownload(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	dir := downloadDir
	if dir == "" && configStore != nil {
		dir = configStore.GetString("documents.download_dir")
	}
	if dir == "" {
		dir = "."
	}

	path, err := documentService.Download(context.Background(), args[0], dir)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	cmd.Printf("Downloaded to %s\n", path)
	return nil
}
