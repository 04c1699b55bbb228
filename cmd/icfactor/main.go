// Command icfactor searches for a small interaction-combinator graph
// whose normal form exposes a factorization of a given integer N. It is
// the CLI collaborator described in spec.md §6: the core (pkg/icnet,
// pkg/search) does the actual work, this command just wires flags,
// config, progress reporting, and the stats/DOT output the teacher's own
// main.go prints for its domain.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vic/icfactor/internal/config"
	"github.com/vic/icfactor/internal/logging"
	"github.com/vic/icfactor/internal/telemetry"
	"github.com/vic/icfactor/pkg/icnet"
	"github.com/vic/icfactor/pkg/search"
)

var flags struct {
	maxNodes    int
	gasLimit    int
	workers     int
	ceiling     uint64
	configPath  string
	dotPath     string
	metricsAddr string
	verbose     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icfactor N",
		Short: "Search for an interaction-combinator graph that factors N",
		Args:  cobra.ExactArgs(1),
		RunE:  runFactor,
	}

	cmd.Flags().IntVar(&flags.maxNodes, "max-nodes", 0, "node capacity per net (default from config/100)")
	cmd.Flags().IntVar(&flags.gasLimit, "gas-limit", 0, "rewrite-step budget per candidate (default from config/100000)")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "parallel search workers (default from config/1)")
	cmd.Flags().Uint64Var(&flags.ceiling, "index-ceiling", 0, "upper bound on candidate indices tried (default from config/1000000)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "optional YAML config file")
	cmd.Flags().StringVar(&flags.dotPath, "dot", "", "write the solution net as Graphviz DOT to this path")
	cmd.Flags().StringVar(&flags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every rewrite step")

	return cmd
}

func runFactor(cmd *cobra.Command, args []string) error {
	var n int
	if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n <= 1 {
		return fmt.Errorf("the number to factor must be an integer greater than 1")
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	cfg.N = n
	overlayFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(os.Stderr, verboseLevel())

	reg := prometheus.NewRegistry()
	metrics := telemetry.New(reg)
	if flags.metricsAddr != "" {
		serveMetrics(reg, flags.metricsAddr, logger)
	}

	fmt.Printf("Searching for a factorization of %d with max_nodes=%d and gas_limit=%d\n",
		cfg.N, cfg.MaxNodes, cfg.GasLimit)

	start := time.Now()
	index, runErr := runSearch(cfg, logger, metrics)
	elapsed := time.Since(start)

	if runErr != nil {
		fmt.Printf("\nFailed to find a factorization for %d\n", cfg.N)
		fmt.Printf("\nSearch completed in %.2fs\n", elapsed.Seconds())
		return runErr
	}

	fmt.Printf("\nSuccess! Found a factorization for %d at index %d\n", cfg.N, index)
	return reportSolution(cfg, index, elapsed, logger)
}

func overlayFlags(cfg *config.Config) {
	if flags.maxNodes > 0 {
		cfg.MaxNodes = flags.maxNodes
	}
	if flags.gasLimit > 0 {
		cfg.GasLimit = flags.gasLimit
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.ceiling > 0 {
		cfg.IndexCeiling = flags.ceiling
	}
	if flags.metricsAddr != "" {
		cfg.MetricsAddr = flags.metricsAddr
	}
}

func verboseLevel() slog.Level {
	if flags.verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func runSearch(cfg config.Config, logger *slog.Logger, metrics *telemetry.Metrics) (uint64, error) {
	progress := func(index uint64, found bool) {
		logging.SearchProgress(context.Background(), logger, "icfactor", index, found)
		if !found {
			fmt.Printf("Searched through %d indices...\n", index)
		} else {
			fmt.Printf("Found solution at index %d!\n", index)
		}
	}

	onCandidate := func(net *icnet.Net, solved bool) {
		metrics.ObserveCandidate(net.GasUsed(), net.Stats.DeltaDelta, net.Stats.GammaGamma,
			net.Stats.DeltaGamma, net.Stats.Erasure, solved)
	}

	if cfg.Workers <= 1 {
		return search.Search(search.Config{
			N: cfg.N, MaxNodes: cfg.MaxNodes, GasLimit: cfg.GasLimit,
			IndexCeiling: cfg.IndexCeiling, ProgressInterval: cfg.ProgressInterval,
			Progress: progress, OnCandidate: onCandidate,
		})
	}

	index, _, err := search.ParallelSearch(search.ParallelConfig{
		Config: search.Config{
			N: cfg.N, MaxNodes: cfg.MaxNodes, GasLimit: cfg.GasLimit,
			IndexCeiling: cfg.IndexCeiling, ProgressInterval: cfg.ProgressInterval,
			Progress: progress, OnCandidate: onCandidate,
		},
		Workers: cfg.Workers,
	})
	return index, err
}

// reportSolution rebuilds and reduces the winning index once more purely
// for display: printing the factor pair, the rewrite-rule stats
// breakdown (mirroring the teacher's main.go stats block), and — if
// requested — the DOT export and debug dump.
func reportSolution(cfg config.Config, index uint64, elapsed time.Duration, logger *slog.Logger) error {
	net := icnet.NewNet(cfg.MaxNodes, cfg.GasLimit)
	net.InputN = cfg.N
	if flags.verbose {
		ctx := context.Background()
		net.Trace = func(rule string, a, b int) {
			logging.RewriteEvent(ctx, logger, rule, a, b, net.GasUsed()+1)
		}
	}

	if err := search.BuildNet(index, net); err != nil {
		return err
	}
	icnet.Reduce(net)
	net.EvaluatePredicate()

	if net.HasValidFactor(cfg.N) {
		fmt.Printf("Factors: %d * %d = %d\n", net.FactorA, net.FactorB, cfg.N)
	}

	if flags.verbose {
		fmt.Print(net.DebugString())
	}
	printStatsBreakdown(net.Stats, elapsed)

	if flags.dotPath != "" {
		f, err := os.Create(flags.dotPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := net.WriteDOT(f); err != nil {
			return err
		}
		fmt.Printf("Graph visualization saved to %s\n", flags.dotPath)
		fmt.Printf("You can visualize it with: dot -Tpng %s -o solution.png\n", flags.dotPath)
	}

	fmt.Printf("\nSearch completed in %.2f seconds\n", elapsed.Seconds())
	return nil
}

func printStatsBreakdown(stats icnet.Stats, elapsed time.Duration) {
	seconds := elapsed.Seconds()
	rate := func(n int) string {
		if seconds <= 0 {
			return ""
		}
		return fmt.Sprintf(" (%.2f ops/sec)", float64(n)/seconds)
	}

	fmt.Fprintf(os.Stderr, "\nRewrite breakdown:\n")
	fmt.Fprintf(os.Stderr, "  Delta-Delta Annihilation: %6d%s\n", stats.DeltaDelta, rate(stats.DeltaDelta))
	fmt.Fprintf(os.Stderr, "  Gamma-Gamma Annihilation: %6d%s\n", stats.GammaGamma, rate(stats.GammaGamma))
	fmt.Fprintf(os.Stderr, "  Delta-Gamma Commutation:  %6d%s\n", stats.DeltaGamma, rate(stats.DeltaGamma))
	fmt.Fprintf(os.Stderr, "  Erasure:                  %6d%s\n", stats.Erasure, rate(stats.Erasure))
	fmt.Fprintf(os.Stderr, "  Total:                    %6d%s\n", stats.Total(), rate(stats.Total()))
}

func serveMetrics(reg *prometheus.Registry, addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("metrics server stopped", "err", err)
		}
	}()
}
