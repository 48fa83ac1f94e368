// Package srameta keeps the version information of the application.
package srameta

var (
	// Version of srameta, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
