// Package main provides the entry point for the treebench CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/bintree/cmd/treebench/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "treebench",
		Short: "Measure the intrusive trees against other ordered sets",
		Long: `treebench runs delete-then-query workloads against the red-black tree and
the treap of this module, and optionally against google/btree, GoLLRB and
the gods red-black tree.

Commands:
  run       Run a workload and print a summary table`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
