package main

import (
	"os"

	"lilac/cmd"
)

func main() {
	os.Exit(cmd.RunCompiler())
}
