package domain

import "time"

// Exit codes shared by every subcommand.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitMissingConfig = 2
)

// DefaultRequestTimeout bounds every outbound HTTP call and subprocess invocation.
const DefaultRequestTimeout = 30 * time.Second
