package main

import "errors"

// Exit codes.
const (
	ExitSuccess  = 0 // Success, including runs that found no papers
	ExitError    = 1 // Invalid arguments, bad config, or write failure
	ExitUpstream = 2 // A PubMed request failed and --strict was set
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errUpstream):
		return ExitUpstream
	default:
		return ExitError
	}
}
