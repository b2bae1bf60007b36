package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/persistkit/vec/mem"
)

func init() {
	rootCmd.AddCommand(newPoliciesCmd())
}

func newPoliciesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policies",
		Short: "List the available memory policies",
		Long: `The policies command lists the memory policies a vector can be
configured with and whether each one recycles abandoned buffers through
the transient session free list.

Example:
  vecbench policies
  vecbench policies --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPolicies()
		},
	}
	return cmd
}

// PolicyInfo describes one memory policy.
type PolicyInfo struct {
	Name        string `json:"name"`
	Recycles    bool   `json:"recycles"`
	Description string `json:"description"`
}

func runPolicies() error {
	arena, err := mem.NewArena()
	if err != nil {
		return err
	}
	defer arena.Close()

	infos := []PolicyInfo{
		{
			Name:        mem.NewGC().Name(),
			Recycles:    mem.NewGC().Recycle(),
			Description: "collector-managed identities, no deterministic reclamation",
		},
		{
			Name:        mem.NewRefCount().Name(),
			Recycles:    mem.NewRefCount().Recycle(),
			Description: "counter identities with session buffer recycling",
		},
		{
			Name:        arena.Name(),
			Recycles:    arena.Recycle(),
			Description: "identities bump-allocated from a mapped page, freed together",
		},
	}

	if jsonOut {
		return printJSON(infos)
	}
	printInfo("%-10s %-9s %s\n", "NAME", "RECYCLES", "DESCRIPTION")
	for _, info := range infos {
		printInfo("%-10s %-9t %s\n", info.Name, info.Recycles, info.Description)
	}
	return nil
}
