package config

import (
	"errors"
	"fmt"
	"os"
)

// Environment variables consulted during credential resolution.
const (
	EnvProject = "SHOV_PROJECT"
	EnvAPIKey  = "SHOV_API_KEY"
)

// Source identifies where the effective credentials came from.
type Source string

const (
	SourceExplicit Source = "explicit"
	SourceLocal    Source = "local"
	SourceEnv      Source = "env"
	SourceGlobal   Source = "global"
)

// Credentials is the effective {project, apiKey} pair for one command
// invocation. It is computed fresh every time and never persisted.
type Credentials struct {
	Project string `json:"project"`
	APIKey  string `json:"-"`
	Source  Source `json:"source"`
}

// ErrNoCredentials is returned when no source can supply a complete
// {project, apiKey} pair.
var ErrNoCredentials = errors.New("no project configuration found")

// Resolve computes the effective credentials from the explicit flags,
// the local shov.json, the environment, and the global registry, in
// that fixed order. The first source that supplies both fields wins,
// so a local shov.json beats SHOV_PROJECT/SHOV_API_KEY even when both
// are set. Resolution fails closed: a request is never attempted with
// a missing key.
func Resolve(explicitProject, explicitAPIKey string) (Credentials, error) {
	if explicitProject != "" && explicitAPIKey != "" {
		return Credentials{Project: explicitProject, APIKey: explicitAPIKey, Source: SourceExplicit}, nil
	}

	if local := LoadLocal(); local.HasCredentials() {
		return Credentials{Project: local.Project, APIKey: local.APIKey, Source: SourceLocal}, nil
	}

	envProject, envKey := os.Getenv(EnvProject), os.Getenv(EnvAPIKey)
	if envProject != "" && envKey != "" {
		return Credentials{Project: envProject, APIKey: envKey, Source: SourceEnv}, nil
	}

	if explicitProject != "" {
		if rec, ok := LoadGlobal().Projects[explicitProject]; ok && rec.APIKey != "" {
			return Credentials{Project: explicitProject, APIKey: rec.APIKey, Source: SourceGlobal}, nil
		}
	}

	return Credentials{}, ErrNoCredentials
}

// HelpfulCredentialsMessage explains how to supply credentials when
// resolution fails.
func HelpfulCredentialsMessage() string {
	return fmt.Sprintf(`No project configuration found.

Provide credentials one of these ways:
  - run 'shov new' to create a project (writes %s here)
  - run 'shov init <project> --key <apiKey>' in this directory
  - set %s and %s
  - pass --project and --api-key explicitly`,
		LocalConfigFile, EnvProject, EnvAPIKey)
}
