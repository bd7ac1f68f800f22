package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a circuit document for consistency",
	Long: `Decodes a portable circuit document and rebuilds the full model,
re-validating every connection. Reports the first schema or structural
violation found.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		wb := newWorkbench(cmd)
		c, err := wb.LoadFile(args[0])
		if err != nil {
			p := termenv.ColorProfile()
			fmt.Println(termenv.String("Validation failed: " + err.Error()).Foreground(p.Color("#f87171")))
			os.Exit(1)
		}
		fmt.Printf("Circuit %q is valid: %d instances, %d connections, %d boundary ports\n",
			c.Name(), len(c.Instances()), len(c.Connections()), len(c.Ports()))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
