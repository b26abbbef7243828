// Command scene-demo is an interactive inspector for a scene store.
// It lets you insert objects, clone and release handles, and watch a
// collection pass reconcile the deferred operations.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/scene"
)

func main() {
	debug := flag.Bool("debug", false, "Log collection passes to stderr")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "scene-demo needs an interactive terminal")
		os.Exit(1)
	}

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		scene.SetLogger(logger)
	}

	if err := runInteractive(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
