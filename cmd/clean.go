package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/murmur/internal/config"
	"github.com/zhubert/murmur/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove saved preferences and the debug log",
	Long: `Deletes the config file (theme, display name, notification and welcome
state) and the debug log. The next start behaves like a first run.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("error locating config: %w", err)
		}
		path = p
	}
	return runCleanWithReader(os.Stdin, cmd.OutOrStdout(), []string{path, logger.DefaultLogPath})
}

// runCleanWithReader allows injecting a reader and the file list for testing
func runCleanWithReader(input io.Reader, out io.Writer, paths []string) error {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}

	if len(existing) == 0 {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will remove:")
	for _, p := range existing {
		fmt.Fprintf(out, "  - %s\n", p)
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	removed := 0
	for _, p := range existing {
		if err := os.Remove(p); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error removing %s: %v\n", p, err)
			continue
		}
		removed++
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Cleaned: %d file(s) removed\n", removed)
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
