package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfvs/builder"
	"github.com/katalvlaran/lvfvs/fvs"
)

type solveOptions struct {
	n         int
	p         float64
	maxWeight int
	seed      int64
	dist      string
	scale     float64
	maxTrials int
	workers   int
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate one random instance and compare the exact optimum with WRA",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stop, err := serveMetrics(root.metricsAddr, root.logger)
			if err != nil {
				return err
			}
			defer stop()

			rec, err := runSolve(opts, root)
			if err != nil {
				return err
			}
			return writeJSONLine(cmd.OutOrStdout(), rec)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.n, "n", 10, "number of vertices")
	f.Float64Var(&opts.p, "p", 0.5, "edge probability")
	f.IntVar(&opts.maxWeight, "max-weight", 100, "vertex weights are drawn from [1, max-weight]")
	f.Int64Var(&opts.seed, "seed", 1, "random seed for the instance and the search")
	f.StringVar(&opts.dist, "dist", fvs.DegreeName, "selection distribution: degree or degree-weight")
	f.Float64Var(&opts.scale, "scale", 1, "WRA budget scale factor")
	f.IntVar(&opts.maxTrials, "max-trials", 10_000, "WRA trial cap")
	f.IntVar(&opts.workers, "workers", 1, "parallel workers")

	return cmd
}

func runSolve(opts *solveOptions, root *rootOptions) (solveRecord, error) {
	if opts.workers < 1 {
		return solveRecord{}, fmt.Errorf("%w: workers=%d must be >= 1", ErrInvalidConfig, opts.workers)
	}
	if opts.seed < 1 {
		return solveRecord{}, fmt.Errorf("%w: seed=%d must be >= 1", ErrInvalidConfig, opts.seed)
	}
	dist, err := fvs.DistributionByName(opts.dist)
	if err != nil {
		return solveRecord{}, err
	}
	g, w, err := builder.RandomInstance(opts.n, opts.p, opts.maxWeight, opts.seed)
	if err != nil {
		return solveRecord{}, err
	}
	root.logger.Info("instance generated", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "seed", opts.seed)

	common := []fvs.Option{fvs.WithWorkers(opts.workers), fvs.WithLogger(root.logger)}
	opt, err := fvs.Optimal(g, w, common...)
	if err != nil {
		return solveRecord{}, err
	}
	res, err := fvs.Search(g, w, dist, opts.scale, opts.maxTrials, append(common, fvs.WithSeed(opts.seed))...)
	if err != nil {
		return solveRecord{}, err
	}
	root.logger.Info("solved", "optimal", opt.Weight, "wra", res.Weight, "trials", res.Trials)

	wra := toRecord(res.Solution)
	wra.Trials = res.Trials

	return solveRecord{
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		Optimal:  toRecord(opt),
		WRA:      wra,
	}, nil
}
