package main

import (
	"github.com/spf13/cobra"
)

var (
	benchPolicy string
	benchOps    int
	benchMode   string
)

func init() {
	cmd := newPushCmd()
	addWorkloadFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Benchmark appends, persistent versus transient",
		Long: `The push command appends --ops elements through the persistent API
(one structural fork per append) and through a transient session
(in-place appends under an ownership token), then reports wall time,
throughput, and the memory policy's allocation counters. The buffer
count is the interesting column: transient appends allocate
O(log ops) buffers, persistent appends O(ops).

Example:
  vecbench push --ops 1000000
  vecbench push --policy refcount --mode transient
  vecbench push --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkload("push")
		},
	}
	return cmd
}

// addWorkloadFlags registers the flags the workload commands share.
func addWorkloadFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&benchPolicy, "policy", "all", "Memory policy to benchmark (gc, refcount, arena, all)")
	cmd.Flags().IntVar(&benchOps, "ops", 100_000, "Number of operations per workload")
	cmd.Flags().StringVar(&benchMode, "mode", "both", "Editing mode (persistent, transient, both)")
}
