// Package cmd is the top-level "driver" package for the Lilac compiler: it
// contains all the functionality for parsing command-line arguments, managing
// compiler state, and running all the phases of the compiler.
package cmd

// LilacVersion is the current version of the Lilac language and compiler.
const LilacVersion = "0.1.0"

// RunCompiler is the main entry point for the Lilac compiler.  This should be
// called directly from main.
func RunCompiler() int {
	// Create a new compiler from the given command-line arguments.
	c := NewCompilerFromArgs()

	if !c.Compile() {
		return 1
	}

	return 0
}
