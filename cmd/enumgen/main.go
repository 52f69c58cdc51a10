// Command enumgen compiles .enum declaration files into Go enumerations.
package main

import (
	"os"

	"github.com/conduit-lang/enumgen/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
