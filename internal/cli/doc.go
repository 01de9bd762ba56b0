// Package cli defines the command tree: a run command taking the document
// file plus repeatable tag filters, and global flags for logging, help and
// the third-party dependency listing. Process exit codes travel as
// ExitError values so main stays a thin shell.
package cli
