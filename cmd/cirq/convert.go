package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a circuit document between JSON and YAML",
	Long: `Loads a circuit document, rebuilds and re-validates the model, and writes
it back in the format implied by the output file extension.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		wb := newWorkbench(cmd)
		c, err := wb.LoadFile(args[0])
		if err != nil {
			fmt.Printf("Error loading circuit: %v\n", err)
			os.Exit(1)
		}
		if err := wb.SaveFile(args[1], c); err != nil {
			fmt.Printf("Error writing circuit: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", args[1])
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
