// Command ssztree answers questions about the merkle tree of SSZ types.
//
// Usage:
//
//	ssztree shape <type>
//	ssztree node <type> <gindex>...
//	ssztree walk <type> [--depth n]
//	ssztree eftest [dir]
//	ssztree version
//
// Types are written as type expressions, e.g. "List[List[uint256, 2], 4]".
// Persistent flags:
//
//	--config     YAML config file
//	--verbosity  Log level 0-5 (default: 2)
//	--log.format text or json (default: text)
package main

import (
	"fmt"
	"io"
	"os"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0 -X main.commit=abc1234"
var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the actual entry point, returning an exit code. Accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
