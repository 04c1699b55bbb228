package search

import (
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vic/icfactor/pkg/icnet"
)

// ParallelConfig extends Config with the fan-out width. Workers is
// clamped to at least 1; a zero value is treated as "let the caller
// decide elsewhere" and also clamped to 1, never inferred from
// runtime.GOMAXPROCS here so the same config is reproducible across
// machines.
type ParallelConfig struct {
	Config
	Workers int
}

// RunStats carries metadata about one driver invocation, generalizing
// spec.md's plain (index, found) progress contract with the bookkeeping
// a caller running many searches side by side (tests, a metrics scrape)
// wants to tell them apart by: a run identifier and how many workers
// found a winning index.
type RunStats struct {
	RunID      uuid.UUID
	WorkerHits int // how many workers had already found a match when the group settled
}

// ParallelSearch partitions [0, ceiling) into Workers disjoint,
// contiguous ranges and runs one independent search per goroutine, each
// over its own *icnet.Net, coordinated only by a monotonic shared
// found-flag checked between indices (spec.md §5). The winning index is
// the minimum among workers that found a solution — if several workers
// find different valid factorizations, only the smallest index is kept,
// since a smaller index is a strictly better demonstration of the
// encoding bias the predicate exploits.
func ParallelSearch(cfg ParallelConfig) (uint64, RunStats, error) {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	stats := RunStats{RunID: uuid.New()}

	if cfg.IndexCeiling == 0 || workers == 1 {
		idx, err := Search(cfg.Config)
		if err == nil {
			stats.WorkerHits = 1
		}
		return idx, stats, err
	}

	var found int32 // atomic monotonic flag, spec.md §5
	results := make([]uint64, workers)
	hit := make([]bool, workers)

	span := (cfg.IndexCeiling + uint64(workers) - 1) / uint64(workers)

	interval := uint64(cfg.Config.progressInterval())

	g := &errgroup.Group{}
	for w := 0; w < workers; w++ {
		w := w
		lo := uint64(w) * span
		hi := lo + span
		if hi > cfg.IndexCeiling {
			hi = cfg.IndexCeiling
		}
		if lo >= hi {
			continue
		}

		g.Go(func() error {
			net := icnet.NewNet(cfg.MaxNodes, cfg.GasLimit)
			for index := lo; index < hi; index++ {
				if atomic.LoadInt32(&found) != 0 {
					return nil
				}

				net.Reset()
				net.InputN = cfg.N
				if err := BuildNet(index, net); err != nil {
					continue
				}
				icnet.Reduce(net)
				net.EvaluatePredicate()

				solved := net.HasValidFactor(cfg.N)
				if cfg.OnCandidate != nil {
					cfg.OnCandidate(net, solved)
				}

				if solved {
					atomic.StoreInt32(&found, 1)
					results[w] = index
					hit[w] = true
					reportProgress(cfg.Progress, index, true)
					return nil
				}

				if cfg.Progress != nil && index%interval == 0 {
					reportProgress(cfg.Progress, index, false)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, stats, err
	}

	best, ok := uint64(0), false
	for w := 0; w < workers; w++ {
		if !hit[w] {
			continue
		}
		stats.WorkerHits++
		if !ok || results[w] < best {
			best, ok = results[w], true
		}
	}
	if !ok {
		return 0, stats, ErrIndexExhausted
	}
	return best, stats, nil
}
