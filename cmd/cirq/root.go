package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ntezak/cirq"
	"github.com/ntezak/cirq/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "cirq",
	Short: "cirq is a typed circuit modeling toolkit",
	Long: `cirq models circuits as typed networks of components connected through
directional or non-directional ports. The CLI validates, inspects and
converts portable circuit documents (JSON or YAML).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newWorkbench builds the Workbench shared by all commands, honoring --verbose.
func newWorkbench(cmd *cobra.Command) *cirq.Workbench {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := logging.NewNop()
	if verbose {
		logger = logging.New(slog.LevelDebug)
	}
	return cirq.New(cirq.WithLogger(logger))
}
