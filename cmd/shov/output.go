package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/shovdev/shov-cli/internal/api"
)

const (
	// ValueSnippetMaxLen truncates inline values in list output
	ValueSnippetMaxLen = 72
)

// ErrorResponse is the JSON-mode failure blob.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Reason  string         `json:"reason,omitempty"`
	Hint    string         `json:"hint,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// successLine prints a green check summary in human mode.
func successLine(format string, args ...any) {
	fmt.Printf("%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, args...))
}

// exitWithError renders a failure in the active output mode and exits.
func exitWithError(code int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if jsonOutput {
		outputJSON(ErrorResponse{Error: msg})
	} else {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("✗"), msg)
	}
	os.Exit(code)
}

// exitAPIError renders a classified API failure with its guidance and
// exits with the general failure code.
func exitAPIError(err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if jsonOutput {
			outputJSON(ErrorResponse{
				Error:   apiErr.Message,
				Reason:  string(apiErr.Reason),
				Hint:    apiErr.Hint(),
				Details: apiErr.Details,
			})
		} else {
			fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("✗"), apiErr.Message)
			if hint := apiErr.Hint(); hint != "" {
				fmt.Fprintf(os.Stderr, "  %s\n", color.YellowString(hint))
			}
		}
		os.Exit(ExitError)
	}
	exitWithError(ExitError, "%v", err)
}

// renderValue pretty-prints a stored JSON value for human eyes. Bare
// strings print without quotes, composites indent.
func renderValue(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "null"
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	if s, ok := v.(string); ok {
		return s
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(pretty)
}

// valueSnippet compacts a JSON value onto one truncated line for list
// output.
func valueSnippet(raw json.RawMessage) string {
	compact := strings.Join(strings.Fields(string(raw)), " ")
	return truncateString(compact, ValueSnippetMaxLen)
}

// truncateString shortens s to maxLen, appending "..." when truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// formatBytes renders a byte count in the nearest binary unit.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
