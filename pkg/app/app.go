// Package app defines the runtime contract shared by the cmd/* binaries
// (the API server and the migration runner).
package app

// Runner represents a runnable application component.
// Run blocks until the component stops.
type Runner interface {
	Run() error
}
