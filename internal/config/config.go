package config

import "time"

// Options holds all configuration for a webrecon run. It is built once in
// cmd and passed explicitly into the runner; nothing mutates it afterwards.
type Options struct {
	// Target
	URL   string
	Ports string // comma-separated, passed to the service scan

	// Tool selection: "all" or comma-separated tool names
	Tools string

	// Content discovery
	WordlistPath string // empty = use embedded
	FfufOutput   string // path ffuf writes its JSON results to

	// Output
	OutputFile string // CSV report path
	Quiet      bool
	NoColor    bool

	// Logging
	LogFile string // empty disables the file sink

	// Wildcard probe
	ProbeTimeout time.Duration
}
