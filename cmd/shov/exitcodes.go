package main

// Exit codes shared by every command
const (
	ExitSuccess = 0 // Success
	ExitError   = 1 // Any caught error (API, validation, configuration, partial batch)
)
