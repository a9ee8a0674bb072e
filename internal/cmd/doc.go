// Package cmd provides helpers for executing shell commands with proper error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users. Commands are
// logged through the context logger when verbose mode is enabled.
//
// # Design Notes
//
// gst shells out to the git CLI rather than using Go git libraries. This
// keeps the tool compatible with user configurations (ignore rules, sparse
// checkouts, credential helpers) and with whatever git version is installed.
package cmd
