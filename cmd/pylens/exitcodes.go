package main

// Exit codes for the pylens CLI.
const (
	ExitOK          = 0 // Operation succeeded.
	ExitInvalidArgs = 1 // Invalid arguments or bad path.
	ExitDemoFailure = 2 // A walkthrough step failed, run aborted.
	ExitScanFailure = 3 // Scan produced no report.
)
