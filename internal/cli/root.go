// Package cli implements the sectionlint command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sectionlint/sectionlint/internal/config"
	"github.com/sectionlint/sectionlint/internal/gitlog"
	"github.com/sectionlint/sectionlint/pkg/version"
)

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sectionlint",
	Short: "Check commit bodies for required and recommended markdown sections",
	Long: `sectionlint checks that commit message bodies carry the markdown-style
section headers (for example "### Why") configured for the commit's
conventional-commit type. Merge and revert commits are exempt.

Configuration is read from .sectionlint.yaml (or .yml/.json) in the
repository root, the user config directory, or the executable directory;
a [sectionlint] config entry in gitconfig or the --config flag overrides
the search.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("sectionlint %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to a configuration file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	}
}

// resolveConfig loads the effective configuration for the current working
// directory. Inside a repository the search starts at the worktree root and
// honors the [sectionlint] config gitconfig override; the --config flag
// wins over both.
func resolveConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	root := cwd
	exact := flagConfig
	if repo, err := gitlog.Open(cwd); err == nil {
		if r := gitlog.Root(repo); r != "" {
			root = r
		}
		if exact == "" {
			if override := gitlog.ConfigValue(repo, "config"); override != "" {
				exact = filepath.Join(root, override)
			}
		}
	}

	cfg, path, err := config.Discover(root, exact)
	if err != nil {
		return nil, err
	}
	if path != "" {
		slog.Debug("using configuration", "path", path)
	}
	return cfg, nil
}
