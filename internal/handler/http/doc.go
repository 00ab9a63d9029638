// Package http serves read-only diagnostics for a resolved configuration.
//
// The version endpoint is always mounted. The configuration dump and the
// asset redirect endpoints are mounted only when the bundle graph tool is
// enabled, which the prod profile disables by default.
package http
