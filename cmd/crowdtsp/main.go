// SPDX-License-Identifier: MIT

// Command crowdtsp approximates a TSP tour for a TSPLIB coordinate file by
// running many independent genetic searches and building a wisdom-of-crowds
// consensus over their best tours.
//
// Usage:
//
//	crowdtsp [flags] <file.tsp>
//
// Exit status is 0 on success and 1 on a missing argument or any error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
