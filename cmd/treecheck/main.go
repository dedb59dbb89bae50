// Package main provides the entry point of treecheck, a harness which soaks
// the tree containers with randomized workloads and checks their invariants.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/segmentio/avltree/cmd/treecheck/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
