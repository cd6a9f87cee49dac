package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	uploadURLCmd.Flags().StringVar(&uploadContentType, "content-type", "", "Content type the upload will carry")
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(uploadURLCmd)
}

var uploadContentType string

var uploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a local file to project storage",
	Long: `Upload a local file to project storage.

The file streams directly from disk, so size is limited by your plan,
not by memory.

Example:
  shov upload ./report.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

var uploadURLCmd = &cobra.Command{
	Use:   "upload-url <filename>",
	Short: "Issue a pre-signed upload URL",
	Long: `Issue a pre-signed URL that lets a browser or job upload one file
directly to storage without holding the API key.

Example:
  shov upload-url avatar.png --content-type image/png`,
	Args: cobra.ExactArgs(1),
	RunE: runUploadURL,
}

func runUpload(cmd *cobra.Command, args []string) error {
	path := args[0]
	client := mustClient()

	stop := startSpinner(fmt.Sprintf("Uploading %s...", filepath.Base(path)))
	resp, err := client.Upload(cmd.Context(), path)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	successLine("Uploaded %s", color.CyanString(resp.FileName))
	fmt.Printf("  id: %s\n", resp.FileID)
	if resp.URL != "" {
		fmt.Printf("  url: %s\n", resp.URL)
	}
	return nil
}

func runUploadURL(cmd *cobra.Command, args []string) error {
	client := mustClient()

	stop := startSpinner("Requesting upload URL...")
	resp, err := client.UploadURL(cmd.Context(), args[0], uploadContentType)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(resp)
	}
	successLine("Upload URL for %s", color.CyanString(args[0]))
	fmt.Printf("  %s\n", resp.UploadURL)
	if resp.ExpiresAt != "" {
		fmt.Printf("  expires: %s\n", resp.ExpiresAt)
	}
	return nil
}
