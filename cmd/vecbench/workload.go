package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joshuapare/persistkit/vec"
	"github.com/joshuapare/persistkit/vec/mem"
	"github.com/joshuapare/persistkit/vec/policy"
)

// setBaseSize is the vector length the overwrite workload edits into.
const setBaseSize = 1024

// BenchResult is one workload measurement.
type BenchResult struct {
	Policy    string        `json:"policy"`
	Workload  string        `json:"workload"`
	Mode      string        `json:"mode"`
	Ops       int           `json:"ops"`
	Duration  time.Duration `json:"duration_ns"`
	OpsPerSec float64       `json:"ops_per_sec"`
	Counters  mem.Snapshot  `json:"counters"`
}

// runWorkload runs one workload under the selected policies and modes
// and prints the report.
func runWorkload(workload string) error {
	modes, err := selectModes(benchMode)
	if err != nil {
		return err
	}
	names, err := selectPolicies(benchPolicy)
	if err != nil {
		return err
	}

	var results []BenchResult
	for _, name := range names {
		for _, mode := range modes {
			res, err := benchOne(name, workload, mode)
			if err != nil {
				return err
			}
			results = append(results, res)
		}
	}

	if jsonOut {
		return printJSON(results)
	}

	printInfo("%-10s %-6s %-11s %10s %14s %14s %9s %9s %9s\n",
		"POLICY", "WORK", "MODE", "OPS", "DURATION", "OPS/SEC",
		"BUFFERS", "POOLHITS", "POOLPUTS")
	for _, r := range results {
		printInfo("%-10s %-6s %-11s %10d %14s %14.0f %9d %9d %9d\n",
			r.Policy, r.Workload, r.Mode, r.Ops,
			r.Duration.Round(time.Microsecond), r.OpsPerSec,
			r.Counters.Buffers, r.Counters.PoolHits, r.Counters.PoolPuts)
	}
	return nil
}

func benchOne(policyName, workload, mode string) (BenchResult, error) {
	pol, cleanup, err := buildPolicy(policyName)
	if err != nil {
		return BenchResult{}, err
	}
	defer cleanup()

	slog.Debug("running workload",
		"policy", policyName, "workload", workload, "mode", mode, "ops", benchOps)

	opts := vec.Options{Policy: policy.New(pol, policy.DefaultGrowth)}
	start := time.Now()

	switch workload {
	case "push":
		benchPushOps(opts, mode)
	case "set":
		benchSetOps(opts, mode)
	}

	elapsed := time.Since(start)
	return BenchResult{
		Policy:    policyName,
		Workload:  workload,
		Mode:      mode,
		Ops:       benchOps,
		Duration:  elapsed,
		OpsPerSec: float64(benchOps) / elapsed.Seconds(),
		Counters:  pol.Stats().Snapshot(),
	}, nil
}

func benchPushOps(opts vec.Options, mode string) {
	switch mode {
	case "persistent":
		v := vec.NewWith[int](opts)
		for i := 0; i < benchOps; i++ {
			v = v.Push(i)
		}
	case "transient":
		tr := vec.NewWith[int](opts).Transient()
		for i := 0; i < benchOps; i++ {
			tr.Push(i)
		}
		tr.Commit()
	}
}

func benchSetOps(opts vec.Options, mode string) {
	tr := vec.NewWith[int](opts).Transient()
	for i := 0; i < setBaseSize; i++ {
		tr.Push(i)
	}
	base := tr.Commit()

	switch mode {
	case "persistent":
		v := base
		for i := 0; i < benchOps; i++ {
			v = v.Set(i%setBaseSize, i)
		}
	case "transient":
		tr := base.Transient()
		for i := 0; i < benchOps; i++ {
			tr.Set(i%setBaseSize, i)
		}
		tr.Commit()
	}
}

// buildPolicy constructs a fresh policy per run so counters start at
// zero. The cleanup releases arena pages; for the other policies it is a
// no-op.
func buildPolicy(name string) (mem.Policy, func(), error) {
	switch name {
	case "gc":
		return mem.NewGC(), func() {}, nil
	case "refcount":
		return mem.NewRefCount(), func() {}, nil
	case "arena":
		arena, err := mem.NewArena()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to map arena: %w", err)
		}
		return arena, func() { _ = arena.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown policy %q (want gc, refcount, or arena)", name)
	}
}

func selectPolicies(name string) ([]string, error) {
	switch name {
	case "all":
		return []string{"gc", "refcount", "arena"}, nil
	case "gc", "refcount", "arena":
		return []string{name}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q (want gc, refcount, arena, or all)", name)
	}
}

func selectModes(mode string) ([]string, error) {
	switch mode {
	case "both":
		return []string{"persistent", "transient"}, nil
	case "persistent", "transient":
		return []string{mode}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (want persistent, transient, or both)", mode)
	}
}
