// Package cli defines the graphlib command tree. It turns command-line
// arguments into an app.Config, builds the App and dispatches to one of its
// operations. Usage mistakes are reported as *ExitError with exit code 2.
package cli
