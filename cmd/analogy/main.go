// Command analogy solves analogical equations A:B::C:D from the command
// line or from YAML batch files.
//
//	analogy solve abc abd xbc
//	analogy solve --split words "I walk" "I walked" "you walk"
//	analogy batch equations.yaml --parallel 4
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "analogy:", err)
		stop()
		os.Exit(1)
	}
}
