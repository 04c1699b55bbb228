package search

import (
	"errors"

	"github.com/vic/icfactor/pkg/icnet"
)

// ErrIndexExhausted is returned by Search when the index ceiling is
// reached without finding a solution.
var ErrIndexExhausted = errors.New("search: index ceiling reached with no solution")

// ProgressFunc is the spec-mandated progress callback: invoked at coarse
// intervals with found=false, and exactly once with found=true the
// instant a solution is detected. It's the caller's responsibility to
// make this safe to call from multiple goroutines if it shares state
// across a parallel search (see ParallelSearch).
type ProgressFunc func(currentIndex uint64, foundSolution bool)

// defaultProgressInterval is how often, in indices searched, Search calls
// back with found=false while nothing has been found yet, when
// Config.ProgressInterval is left at zero.
const defaultProgressInterval = 1000

// CandidateFunc is an optional hook invoked after every reduced
// candidate, solved or not, so a caller can feed telemetry (gas used,
// per-rule counts) without the driver itself depending on any metrics
// library.
type CandidateFunc func(net *icnet.Net, solved bool)

// Config bundles the parameters a single-net search needs.
type Config struct {
	N                int
	MaxNodes         int
	GasLimit         int
	IndexCeiling     uint64
	ProgressInterval int // indices between Progress(found=false) calls; 0 means defaultProgressInterval
	Progress         ProgressFunc
	OnCandidate      CandidateFunc
}

// progressInterval returns cfg.ProgressInterval, falling back to
// defaultProgressInterval when the caller left it unset.
func (cfg Config) progressInterval() int {
	if cfg.ProgressInterval > 0 {
		return cfg.ProgressInterval
	}
	return defaultProgressInterval
}

// Search loops candidate indices from 0, building, reducing, and
// predicate-testing each one against N, until a solution is found or
// IndexCeiling indices have been tried. It owns a single net for the
// whole search, resetting it between candidates (spec.md §4.4).
func Search(cfg Config) (uint64, error) {
	net := icnet.NewNet(cfg.MaxNodes, cfg.GasLimit)
	return searchWithNet(cfg, net)
}

func searchWithNet(cfg Config, net *icnet.Net) (uint64, error) {
	interval := cfg.progressInterval()
	for index := uint64(0); index < cfg.IndexCeiling; index++ {
		net.Reset()
		net.InputN = cfg.N

		if err := BuildNet(index, net); err != nil {
			// A candidate this net can't hold is not a search failure;
			// skip it and keep going, same as the source's "try next
			// index" behavior when build fails.
			continue
		}

		icnet.Reduce(net)
		net.EvaluatePredicate()

		solved := net.HasValidFactor(cfg.N)
		if cfg.OnCandidate != nil {
			cfg.OnCandidate(net, solved)
		}

		if solved {
			reportProgress(cfg.Progress, index, true)
			return index, nil
		}

		if cfg.Progress != nil && index%uint64(interval) == 0 {
			reportProgress(cfg.Progress, index, false)
		}
	}
	return 0, ErrIndexExhausted
}

func reportProgress(cb ProgressFunc, index uint64, found bool) {
	if cb != nil {
		cb(index, found)
	}
}
