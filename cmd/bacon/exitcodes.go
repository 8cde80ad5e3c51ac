package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error, missing or unreadable credit file
	ExitDataError   = 3 // Data error (malformed credit record)
	ExitNotFound    = 4 // Name does not match any participant
	ExitIndexStale  = 5 // Name index missing or built from another file
)
