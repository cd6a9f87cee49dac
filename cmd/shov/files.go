package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	filesDeleteCmd.Flags().BoolVar(&filesDeleteYes, "yes", false, "Skip the confirmation prompt")
	filesCmd.AddCommand(filesListCmd)
	filesCmd.AddCommand(filesGetCmd)
	filesCmd.AddCommand(filesDeleteCmd)
	rootCmd.AddCommand(filesCmd)
}

var filesDeleteYes bool

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Manage stored files",
}

var filesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the project's stored files",
	Args:  cobra.NoArgs,
	RunE:  runFilesList,
}

var filesGetCmd = &cobra.Command{
	Use:   "get <id-or-name>",
	Short: "Show one file's metadata and download URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesGet,
}

var filesDeleteCmd = &cobra.Command{
	Use:   "delete <id-or-name>",
	Short: "Delete a stored file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesDelete,
}

func runFilesList(cmd *cobra.Command, args []string) error {
	client := mustClient()

	stop := startSpinner("Listing files...")
	resp, err := client.ListFiles(cmd.Context())
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	if len(resp.Files) == 0 {
		fmt.Println("No files stored.")
		return nil
	}
	for _, f := range resp.Files {
		line := fmt.Sprintf("%s  %s  %s", color.CyanString(f.Name), formatBytes(f.Size), f.ID)
		if !f.CreatedAt.IsZero() {
			line += "  " + f.CreatedAt.Format("2006-01-02")
		}
		fmt.Println(line)
	}
	return nil
}

func runFilesGet(cmd *cobra.Command, args []string) error {
	client := mustClient()

	stop := startSpinner("Fetching file info...")
	resp, err := client.GetFile(cmd.Context(), args[0])
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	f := resp.File
	fmt.Printf("Name:  %s\n", color.CyanString(f.Name))
	fmt.Printf("Id:    %s\n", f.ID)
	fmt.Printf("Size:  %s\n", formatBytes(f.Size))
	if f.ContentType != "" {
		fmt.Printf("Type:  %s\n", f.ContentType)
	}
	if !f.CreatedAt.IsZero() {
		fmt.Printf("Added: %s\n", f.CreatedAt.Format("2006-01-02 15:04"))
	}
	if f.URL != "" {
		fmt.Printf("URL:   %s\n", f.URL)
	}
	return nil
}

func runFilesDelete(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !confirm(fmt.Sprintf("Delete file %q?", name), filesDeleteYes) {
		exitWithError(ExitError, "aborted: pass --yes to delete without a prompt")
	}
	client := mustClient()

	stop := startSpinner("Deleting file...")
	err := client.DeleteFile(cmd.Context(), name)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(map[string]any{"success": true, "deleted": name})
	}
	successLine("Deleted %s", color.CyanString(name))
	return nil
}
