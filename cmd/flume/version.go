package main

// Build metadata, overridden at link time.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)
