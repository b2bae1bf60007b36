package main

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := newSetCmd()
	addWorkloadFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Benchmark overwrites, persistent versus transient",
		Long: `The set command overwrites positions of a fixed-size vector --ops
times through the persistent API (one structural fork per overwrite) and
through a transient session (in place after the first claim), then
reports wall time, throughput, and the memory policy's allocation
counters.

Example:
  vecbench set --ops 1000000
  vecbench set --policy arena --mode persistent
  vecbench set --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkload("set")
		},
	}
	return cmd
}
