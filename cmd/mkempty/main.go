// Command mkempty creates or truncates files to zero bytes.
package main

import (
	"os"

	"github.com/ShivamKR12/GameEngine/internal/cli"
	"github.com/ShivamKR12/GameEngine/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code; configuration errors and --strict failures yield 1.
func run(args []string) int {
	logger := logging.New(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(args, logger); err != nil {
		logger.Error("mkempty failed", "args", args, "error", err)
		return 1
	}
	return 0
}
