// Package cmd implements the tictoc subcommands.
//
// [Demo] times the recursive and iterative Fibonacci workloads of package
// demo and prints a report, optionally rendering a live view while it runs.
// [Init] writes the effective flag values to the YAML configuration file,
// and [Version] prints the program version.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
