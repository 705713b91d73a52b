package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfvs/builder"
	"github.com/katalvlaran/lvfvs/fvs"
)

func newEstimateCmd(root *rootOptions) *cobra.Command {
	var (
		configPath string
		override   ExperimentConfig
	)
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate expected trials until the elimination sampler hits the optimum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadExperimentConfig(configPath)
			if err != nil {
				return err
			}
			cfg = applyOverrides(cmd, cfg, override)
			if err := cfg.Validate(); err != nil {
				return err
			}

			stop, err := serveMetrics(root.metricsAddr, root.logger)
			if err != nil {
				return err
			}
			defer stop()

			return runEstimate(cmd.Context(), cfg, root, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "experiment YAML file")
	f.IntVar(&override.Graphs, "graphs", 0, "number of random instances (overrides config)")
	f.IntVar(&override.Samples, "samples", 0, "samples per distribution (overrides config)")
	f.IntVar(&override.N, "n", 0, "vertices per instance (overrides config)")
	f.Int64Var(&override.Seed, "seed", 0, "base seed (overrides config)")
	f.IntVar(&override.Workers, "workers", 0, "parallel workers (overrides config)")

	return cmd
}

// applyOverrides copies explicitly set flags over the loaded config.
func applyOverrides(cmd *cobra.Command, cfg, o ExperimentConfig) ExperimentConfig {
	f := cmd.Flags()
	if f.Changed("graphs") {
		cfg.Graphs = o.Graphs
	}
	if f.Changed("samples") {
		cfg.Samples = o.Samples
	}
	if f.Changed("n") {
		cfg.N = o.N
	}
	if f.Changed("seed") {
		cfg.Seed = o.Seed
	}
	if f.Changed("workers") {
		cfg.Workers = o.Workers
	}

	return cfg
}

// runEstimate generates cfg.Graphs instances (seeds cfg.Seed, cfg.Seed+1, ...),
// solves each exactly and measures every distribution against the optimum.
func runEstimate(ctx context.Context, cfg ExperimentConfig, root *rootOptions, out io.Writer) error {
	dists := make([]fvs.Distribution, len(cfg.Distributions))
	for i, name := range cfg.Distributions {
		d, err := fvs.DistributionByName(name)
		if err != nil {
			return err
		}
		dists[i] = d
	}

	runID := uuid.NewString()
	root.logger.Info("estimate started", "run_id", runID, "graphs", cfg.Graphs, "samples", cfg.Samples, "n", cfg.N)

	running := make(map[string]float64, len(dists))
	for i := 0; i < cfg.Graphs; i++ {
		seed := cfg.Seed + int64(i)
		g, w, err := builder.RandomInstance(cfg.N, cfg.P, cfg.MaxWeight, seed)
		if err != nil {
			return fmt.Errorf("instance %d: %w", i, err)
		}
		common := []fvs.Option{fvs.WithWorkers(cfg.Workers), fvs.WithLogger(root.logger)}

		opt, err := fvs.Optimal(g, w, common...)
		if err != nil {
			return fmt.Errorf("instance %d: %w", i, err)
		}
		size, err := fvs.MinimumFeasibleSize(g, common...)
		if err != nil {
			return fmt.Errorf("instance %d: %w", i, err)
		}

		rec := instanceRecord{
			RunID:           runID,
			Instance:        i,
			Vertices:        g.VertexCount(),
			Edges:           g.EdgeCount(),
			Optimal:         toRecord(opt),
			MinFeasibleSize: size,
			ExpectedTrials:  make(map[string]float64, len(dists)),
			MaxExpected:     make(map[string]float64, len(dists)),
		}
		for j, d := range dists {
			name := cfg.Distributions[j]
			mean, err := fvs.EstimateTrials(ctx, g, w, opt.Weight, d, cfg.Samples, cfg.MaxTrials,
				append(common, fvs.WithSeed(seed))...)
			if err != nil {
				return fmt.Errorf("instance %d, %s: %w", i, name, err)
			}
			running[name] = max(running[name], mean)
			rec.ExpectedTrials[name] = mean
			rec.MaxExpected[name] = running[name]
		}
		root.logger.Info("instance estimated",
			"instance", i, "optimal", opt.Weight, "expected_trials", rec.ExpectedTrials)

		if err := writeJSONLine(out, rec); err != nil {
			return err
		}
	}

	return nil
}
