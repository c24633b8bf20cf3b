// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by the CLI.
// Access ports are implemented by the store adapter and called by the application layer.
package ports
