// Package cli provides the interactive shiftboard command-line client.
//
// Businesses publish job postings made of dated shifts and accept workers'
// applications; workers browse postings, apply to shifts and follow their
// applications. All marketplace calls go through the typed API client.
//
// The REPL is started with App.Run, which blocks until the user exits. See
// runREPL for the command set.
package cli
