package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntezak/cirq"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cirq",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cirq version %s\n", cirq.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
