// Package app contains the mcgs application logic: loading a system from a
// Matrix Market file or a generator spec, solving it, reporting the result
// and recording the run. It is decoupled from the command-line entrypoint.
package app
