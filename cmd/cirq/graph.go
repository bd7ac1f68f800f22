package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the circuit as a Mermaid diagram",
	Long:  `Loads a circuit document and outputs a Mermaid flowchart (graph LR) on stdout.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		wb := newWorkbench(cmd)
		c, err := wb.LoadFile(args[0])
		if err != nil {
			fmt.Printf("Error loading circuit: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(wb.Mermaid(c))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
