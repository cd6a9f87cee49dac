package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/shovdev/shov-cli/internal/api"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	batchCmd.Flags().StringVar(&batchFile, "file", "", "Read operations from a YAML or JSON file instead of an argument")
	rootCmd.AddCommand(batchCmd)
}

var batchFile string

var batchCmd = &cobra.Command{
	Use:   "batch [operations]",
	Short: "Run up to 50 operations atomically",
	Long: `Run up to 50 operations atomically in one call.

Operations are a list of {type, name?, collection?, id?, value?}
entries with type one of set, get, add, update, remove, forget,
clear. Pass them inline as JSON or from a YAML/JSON file. The batch
either commits or rolls back as a unit, but individual reads can
still report failures; any failed entry makes the command exit
non-zero.

Example:
  shov batch '[{"type":"set","name":"a","value":1},{"type":"get","name":"b"}]'
  shov batch --file ops.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	ops, err := loadOperations(args, batchFile)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if err := api.ValidateOperations(ops); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	client := mustClient()

	stop := startSpinner(fmt.Sprintf("Running %d operations...", len(ops)))
	resp, err := client.Batch(cmd.Context(), ops)
	stop()
	if err != nil {
		exitAPIError(err)
	}

	if jsonOutput {
		if err := outputJSON(resp); err != nil {
			return err
		}
		if batchFailed(resp) {
			os.Exit(ExitError)
		}
		return nil
	}

	failed := 0
	for i, r := range resp.Results {
		label := r.Type
		if label == "" && i < len(ops) {
			label = ops[i].Type
		}
		if r.Success {
			fmt.Printf("%s #%d %s\n", color.GreenString("✓"), i+1, label)
		} else {
			failed++
			fmt.Printf("%s #%d %s: %s\n", color.RedString("✗"), i+1, label, r.Error)
		}
	}
	switch {
	case failed > 0:
		exitWithError(ExitError, "%d of %d operations failed", failed, len(resp.Results))
	case batchFailed(resp):
		exitWithError(ExitError, "batch was not applied")
	}
	successLine("Batch of %d operations applied", len(resp.Results))
	return nil
}

// batchFailed reports whether the response calls for a non-zero exit:
// the envelope itself reports failure, or any entry does.
func batchFailed(resp *api.BatchResponse) bool {
	if !resp.Success {
		return true
	}
	for _, r := range resp.Results {
		if !r.Success {
			return true
		}
	}
	return false
}

// loadOperations reads the batch from the inline argument or --file,
// never both. Files may be YAML or JSON; YAML is a superset of JSON,
// so one parse handles both, with a JSON round-trip in between because
// the operation values are raw JSON.
func loadOperations(args []string, file string) ([]api.Operation, error) {
	var data []byte
	switch {
	case file != "" && len(args) > 0:
		return nil, fmt.Errorf("pass operations inline or with --file, not both")
	case file != "":
		var err error
		data, err = os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
	case len(args) == 1:
		data = []byte(args[0])
	default:
		return nil, fmt.Errorf("operations required: pass a JSON array or --file")
	}

	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("parsing operations: %w", err)
	}
	normalized, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("parsing operations: %w", err)
	}
	var ops []api.Operation
	if err := json.Unmarshal(normalized, &ops); err != nil {
		return nil, fmt.Errorf("operations must be a list of {type, ...} entries: %w", err)
	}
	return ops, nil
}
