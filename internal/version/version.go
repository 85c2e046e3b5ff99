package version

import (
	"fmt"
	"os"
)

const Version = "0.1.0"

// HasVersionArg reports whether the first CLI argument asks for the
// version, in any common spelling.
func HasVersionArg() bool {
	if len(os.Args) > 1 {
		arg := os.Args[1]
		return arg == "--version" || arg == "-version" || arg == "-v" || arg == "version"
	}
	return false
}

// ShowVersion prints the version line.
func ShowVersion() {
	fmt.Printf("sponsorblock v%s\n", Version)
}
