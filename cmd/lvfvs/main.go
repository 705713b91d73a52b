// Command lvfvs drives feedback vertex set experiments on random instances.
//
// Usage:
//
//	lvfvs solve --n 10 --p 0.5 --max-weight 100 --seed 1 --dist degree
//	lvfvs estimate --config experiment.yaml
//	lvfvs estimate --graphs 5 --samples 50 --metrics-addr :9090
//
// solve prints one JSON object comparing the exact optimum with a WRA run.
// estimate prints one JSON line per instance with the mean number of trials
// each distribution needs to hit the optimum, plus the running maxima.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Cobra already printed the error.
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
