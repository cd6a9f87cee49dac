package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/shovdev/shov-cli/internal/api"
	"github.com/shovdev/shov-cli/internal/config"
	"github.com/shovdev/shov-cli/internal/logging"
	"golang.org/x/term"
)

// exitNoCredentials renders a resolution failure with setup guidance
// and exits non-zero.
func exitNoCredentials(err error) {
	if jsonOutput {
		outputJSON(ErrorResponse{Error: err.Error(), Hint: config.HelpfulCredentialsMessage()})
	} else {
		fmt.Fprintln(os.Stderr, config.HelpfulCredentialsMessage())
	}
	os.Exit(ExitError)
}

// mustResolveCredentials runs the resolution chain and exits when
// nothing usable exists.
func mustResolveCredentials() config.Credentials {
	creds, err := config.Resolve(flagProject, flagAPIKey)
	if err != nil {
		exitNoCredentials(err)
	}
	logger.Debugf("using project %s from %s credentials (key %s)",
		creds.Project, creds.Source, logging.MaskKey(creds.APIKey))
	return creds
}

// mustClient builds an API client for the resolved credentials.
func mustClient() *api.Client {
	creds := mustResolveCredentials()
	return api.New(creds.Project, creds.APIKey)
}

// startSpinner shows progress during a network call in human mode.
// Returns a stop function that should run before any output. JSON
// mode, verbose logging, and non-terminal runs stay quiet.
func startSpinner(message string) func() {
	if jsonOutput || verbose || debug || !term.IsTerminal(int(os.Stderr.Fd())) {
		logger.Infof("%s", message)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	_ = s.Color("cyan")
	s.Start()
	return s.Stop
}

// parseJSONValue accepts any JSON document; non-JSON input becomes a
// JSON string so 'shov set greeting hello' works without quoting.
func parseJSONValue(input string) json.RawMessage {
	trimmed := strings.TrimSpace(input)
	if trimmed != "" && json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed)
	}
	quoted, _ := json.Marshal(input)
	return json.RawMessage(quoted)
}

// mustParseJSON insists the input already is valid JSON (filters,
// documents) and exits before any network call when it is not.
func mustParseJSON(what, input string) json.RawMessage {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || !json.Valid([]byte(trimmed)) {
		exitWithError(ExitError, "%s must be valid JSON", what)
	}
	return json.RawMessage(trimmed)
}

// confirm asks before a destructive operation. --yes skips the
// question; without a terminal the answer defaults to no.
func confirm(prompt string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	if jsonOutput || !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// promptLine reads one line of input under a label (used for emailed
// verification codes). The label goes to stderr, never stdout.
// Tolerates piped input without a final newline.
func promptLine(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSecret reads hidden input on a terminal, falling back to a
// plain line read when stdin is piped.
func promptSecret(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
