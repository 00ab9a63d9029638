// Package server runs the HTTP diagnostics server until the process is
// asked to stop, then shuts it down gracefully.
package server
