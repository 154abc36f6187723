package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sectionlint/sectionlint/internal/commit"
	"github.com/sectionlint/sectionlint/internal/engine"
	"github.com/sectionlint/sectionlint/internal/gitlog"
)

var (
	flagLogFrom string
	flagLogTo   string
	flagLogMax  int
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Check existing commits from repository history",
	Long: `Check commits already in the repository. History is walked newest-first
from --to (HEAD by default) down to --from (exclusive), or at most --max
commits.`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&flagLogFrom, "from", "", "oldest revision to check (exclusive)")
	logCmd.Flags().StringVar(&flagLogTo, "to", "", "newest revision to check (default HEAD)")
	logCmd.Flags().IntVar(&flagLogMax, "max", 0, "maximum number of commits to check (0 = unlimited)")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	repo, err := gitlog.Open(cwd)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	entries, err := gitlog.Messages(cmd.Context(), repo, flagLogFrom, flagLogTo, flagLogMax)
	if err != nil {
		return err
	}

	registry := engine.NewRegistry()
	out := cmd.OutOrStdout()

	checked := 0
	failed := 0
	for _, entry := range entries {
		report := registry.Run(commit.Parse(entry.Message), cfg)
		checked++
		if len(report.Problems) == 0 {
			continue
		}
		fmt.Fprintf(out, "commit %s\n", entry.Hash)
		printProblems(out, report)
		if !report.OK() {
			failed++
		}
	}

	fmt.Fprintf(out, "checked %d commit(s), %d failed\n", checked, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d commit(s) failed the section check", failed, checked)
	}
	return nil
}
