package app

import (
	"fmt"
	"io"
)

// Version is the current application version.
const Version = "1.0.0"

// HasVersionFlag reports whether the arguments request the version string.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version string.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "chunkbench version %s\n", Version)
}
