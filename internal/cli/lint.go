package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sectionlint/sectionlint/internal/commit"
	"github.com/sectionlint/sectionlint/internal/engine"
)

var lintCmd = &cobra.Command{
	Use:   "lint [message-file]",
	Short: "Check a single commit message",
	Long: `Check a commit message against the configured section rules. The message
is read from the given file (suitable for a commit-msg hook, which receives
the message file path) or from stdin when the argument is omitted or "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	message, err := readMessage(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	report := engine.NewRegistry().Run(commit.Parse(message), cfg)
	printProblems(cmd.OutOrStdout(), report)

	if !report.OK() {
		return fmt.Errorf("commit message check failed: %s", summary(report))
	}
	return nil
}

// readMessage reads the commit message from the file argument or stdin.
func readMessage(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read message from stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read message file: %w", err)
	}
	return string(data), nil
}

// printProblems writes one line per problem, severity first.
func printProblems(w io.Writer, report engine.Report) {
	for _, p := range report.Problems {
		fmt.Fprintf(w, "%-8s %-21s %s\n", p.Severity, p.Rule, p.Message)
	}
}

// summary renders a "N error(s), M warning(s)" count for a report.
func summary(report engine.Report) string {
	var parts []string
	if n := report.ErrorCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d error(s)", n))
	}
	if n := report.WarningCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d warning(s)", n))
	}
	if len(parts) == 0 {
		return "no problems"
	}
	return strings.Join(parts, ", ")
}
