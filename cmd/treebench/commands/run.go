// Package commands implements the treebench subcommands.
package commands

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/bintree/internal/config"
	"github.com/g-m-twostay/bintree/internal/workload"
)

// Version is set at build time.
var Version = "dev"

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	var (
		configPath string
		n, steps   int
		seed       uint64
		subjects   []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a workload and print a summary table",
		Long: fmt.Sprintf(`Run inserts n random keys per step, deletes n/steps*i of them in step i,
then queries. Flags override the config file and TREEBENCH_* variables.

Subjects: %s`, strings.Join(workload.Subjects, ", ")),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("n") {
				cfg.Workload.N = n
			}
			if flags.Changed("steps") {
				cfg.Workload.Steps = steps
			}
			if flags.Changed("seed") {
				cfg.Workload.Seed = seed
			}
			if flags.Changed("subjects") {
				cfg.Workload.Subjects = subjects
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("validate config: %w", err)
			}
			for _, s := range cfg.Workload.Subjects {
				if !slices.Contains(workload.Subjects, s) {
					return fmt.Errorf("%w: %q", workload.ErrUnknownSubject, s)
				}
			}

			p := workload.Params{
				N:     cfg.Workload.N,
				Steps: cfg.Workload.Steps,
				Seed:  cfg.Workload.Seed,
				Log:   cfg.Logging.Logger(os.Stderr),
			}
			results, err := workload.Run(p, cfg.Workload.Subjects)
			if err != nil {
				return fmt.Errorf("run workload: %w", err)
			}
			return workload.Render(cmd.OutOrStdout(), p, results)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default .treebench.yaml in . or $HOME)")
	cmd.Flags().IntVar(&n, "n", config.DefaultN, "keys inserted per step")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	cmd.Flags().Uint64Var(&seed, "seed", config.DefaultSeed, "random seed")
	cmd.Flags().StringSliceVar(&subjects, "subjects", config.DefaultSubjects, "subjects to measure")

	return cmd
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "treebench %s\n", Version)
		},
	}
}
