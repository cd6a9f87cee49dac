package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sendOtpCmd)
	rootCmd.AddCommand(verifyOtpCmd)
}

var sendOtpCmd = &cobra.Command{
	Use:   "send-otp <identifier>",
	Short: "Send a one-time code to an email or phone",
	Long: `Send a one-time code to an email or phone number.

This is the app-level verification flow for your own users; it has
nothing to do with project ownership.

Example:
  shov send-otp user@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runSendOtp,
}

var verifyOtpCmd = &cobra.Command{
	Use:   "verify-otp <identifier> <code>",
	Short: "Check a one-time code",
	Long: `Check a one-time code previously sent with send-otp.

Exits non-zero when the code does not match, so scripts can branch
on the result.`,
	Args: cobra.ExactArgs(2),
	RunE: runVerifyOtp,
}

func runSendOtp(cmd *cobra.Command, args []string) error {
	identifier := args[0]
	client := mustClient()

	stop := startSpinner("Sending code...")
	err := client.SendOTP(cmd.Context(), identifier)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		return outputJSON(map[string]any{"success": true, "identifier": identifier})
	}
	successLine("Code sent to %s", color.CyanString(identifier))
	return nil
}

func runVerifyOtp(cmd *cobra.Command, args []string) error {
	identifier, code := args[0], args[1]
	client := mustClient()

	stop := startSpinner("Verifying...")
	resp, err := client.VerifyOTP(cmd.Context(), identifier, code)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		if err := outputJSON(resp); err != nil {
			return err
		}
		if !resp.Verified {
			os.Exit(ExitError)
		}
		return nil
	}
	if !resp.Verified {
		exitWithError(ExitError, "code rejected for %s", identifier)
	}
	successLine("Verified %s", color.CyanString(identifier))
	return nil
}
