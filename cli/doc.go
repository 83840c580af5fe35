// Package cli contains the command line interface for tictoc.
//
// # Usage
//
//	tictoc [flags] [demo] [--limit N] [--report aggregated|raw]
//	       [--format table|json|yaml] [--where EXPR] [--match PATTERN]
//	       [--open-policy exclude|flag] [--watch]
//	tictoc init [--force]
//	tictoc version [--verbose]
//
// The demo command is the default. It prints the Fibonacci sums to stderr
// and the report to stdout, so the two can be redirected independently:
//
//	tictoc --limit 35 --format json > report.json
//
// # Configuration
//
// Flag values are read, in increasing precedence, from
//
//   - $XDG_CONFIG_HOME/tictoc/config.json
//   - $XDG_CONFIG_HOME/tictoc/config.yaml
//   - the command line
//
// In the YAML file, keys are flag names without dashes. Underscores may be
// used in place of hyphens, and nested mappings are joined with hyphens:
//
//	log:
//	  level: debug
//	  format: text
//	limit: 30
//	open_policy: flag
//
// "tictoc init" writes the current flag values in this format.
//
// # Logging Options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: log output format (json, text)
//   - --log-time-layout: timestamp layout (RFC3339, Kitchen, none, ...)
//   - --log-caller: include caller information
//   - --log-pretty: colorize text output
//
// Region boundaries are logged at trace level, gate transitions at debug.
//
// # Profiling Options
//
// Runtime profiling is available only when built with the pprof tag:
//
//	go build -tags pprof -o tictoc .
//
//   - --pprof-mode: capture a runtime profile (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: profile output directory (default $XDG_CACHE_HOME/tictoc/pprof)
package cli
