package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/shovdev/shov-cli/internal/api"
	"github.com/spf13/cobra"
)

func init() {
	functionPullCmd.Flags().StringVar(&functionPullDir, "dir", "functions", "Directory to write sources into")
	functionCmd.AddCommand(functionPullCmd)
}

var functionPullDir string

var functionPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download every function's source to disk",
	Long: `Download every function's source to disk, one file per function.

Sources land in --dir as <name>.js, with configs alongside as
<name>.config.json. Downloads run one at a time and a single failure
does not stop the rest; the command reports what failed at the end.
Re-running overwrites in place, so pulling is safe to repeat.

Example:
  shov function pull --dir ./functions`,
	Args: cobra.NoArgs,
	RunE: runFunctionPull,
}

// pullResult describes one function's download outcome.
type pullResult struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
	Err  string `json:"error,omitempty"`
}

func runFunctionPull(cmd *cobra.Command, args []string) error {
	client := mustClient()

	stop := startSpinner("Listing functions...")
	list, err := client.ListFunctions(cmd.Context())
	stop()
	if err != nil {
		exitAPIError(err)
	}
	if len(list.Functions) == 0 {
		if jsonOutput {
			return outputJSON(map[string]any{"success": true, "pulled": []pullResult{}})
		}
		fmt.Println("No functions deployed.")
		return nil
	}

	results := pullFunctions(cmd.Context(), client, functionPullDir, list.Functions)

	failed := 0
	for _, r := range results {
		if r.Err != "" {
			failed++
		}
	}

	if jsonOutput {
		if err := outputJSON(map[string]any{"success": failed == 0, "pulled": results}); err != nil {
			return err
		}
		if failed > 0 {
			os.Exit(ExitError)
		}
		return nil
	}

	for _, r := range results {
		if r.Err != "" {
			fmt.Printf("%s %s: %s\n", color.RedString("✗"), r.Name, r.Err)
		} else {
			fmt.Printf("%s %s\n", color.GreenString("✓"), r.Path)
		}
	}
	if failed > 0 {
		exitWithError(ExitError, "%d of %d functions failed to pull", failed, len(results))
	}
	successLine("Pulled %d function(s) into %s", len(results), functionPullDir)
	return nil
}

// pullFunctions downloads each function's source sequentially; the
// shared client limiter paces the calls. Individual failures are
// recorded and the loop keeps going.
func pullFunctions(ctx context.Context, client *api.Client, dir string, functions []api.FunctionInfo) []pullResult {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		results := make([]pullResult, len(functions))
		for i, fn := range functions {
			results[i] = pullResult{Name: fn.Name, Err: err.Error()}
		}
		return results
	}

	results := make([]pullResult, 0, len(functions))
	for _, fn := range functions {
		resp, err := client.ReadFunction(ctx, fn.Name)
		if err != nil {
			results = append(results, pullResult{Name: fn.Name, Err: err.Error()})
			continue
		}

		path := filepath.Join(dir, fn.Name+".js")
		if err := os.WriteFile(path, []byte(resp.Function.Code), 0o644); err != nil {
			results = append(results, pullResult{Name: fn.Name, Err: err.Error()})
			continue
		}
		if len(resp.Function.Config) > 0 {
			cfgPath := filepath.Join(dir, fn.Name+".config.json")
			if err := os.WriteFile(cfgPath, resp.Function.Config, 0o644); err != nil {
				results = append(results, pullResult{Name: fn.Name, Path: path, Err: err.Error()})
				continue
			}
		}
		results = append(results, pullResult{Name: fn.Name, Path: path})
	}
	return results
}
