// Package shell is the execution collaborator for script tasks: it spawns
// the resolved code as a local process, streams every stdout/stderr line
// into the run's logger, and reports the collected lines plus the exit
// code. Success is exit code zero; policy beyond that (retries, timeouts)
// lives with the caller, not here.
package shell
