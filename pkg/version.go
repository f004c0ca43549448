// Package otudb converts OTU clustering output into a relational database
// and extracts sequences of selected taxa from it.
package otudb

var (
	// Version of the otudb. It is set during the build.
	Version = "v0.1.0"

	// Build timestamp. It is set during the build.
	Build = "n/a"
)
