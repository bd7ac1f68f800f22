package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// netColors cycles per domain so multi-domain listings stay readable.
var netColors = []string{"#60a5fa", "#34d399", "#fbbf24", "#f472b6", "#a78bfa"}

var netsCmd = &cobra.Command{
	Use:   "nets <file>",
	Short: "List the connectivity classes of a circuit",
	Long: `Loads a circuit document and prints, per domain, every net: a maximal
set of ports transitively joined by connections. Isolated ports are omitted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		domainFilter, _ := cmd.Flags().GetString("domain")
		wb := newWorkbench(cmd)
		c, err := wb.LoadFile(args[0])
		if err != nil {
			fmt.Printf("Error loading circuit: %v\n", err)
			os.Exit(1)
		}

		p := termenv.ColorProfile()
		printed := false
		for i, d := range wb.Registry().Domains() {
			if domainFilter != "" && d.Name != domainFilter {
				continue
			}
			nets := c.Nets(d)
			if len(nets) == 0 {
				continue
			}
			printed = true
			header := termenv.String(d.Name).Foreground(p.Color(netColors[i%len(netColors)])).Bold()
			fmt.Printf("%s (%d nets)\n", header, len(nets))
			for k, net := range nets {
				names := make([]string, len(net))
				for j, port := range net {
					names[j] = port.String()
				}
				fmt.Printf("  net %d: %s\n", k+1, strings.Join(names, " -- "))
			}
		}
		if !printed {
			fmt.Println("No nets found.")
		}
	},
}

func init() {
	netsCmd.Flags().String("domain", "", "Only show nets of this domain")
	rootCmd.AddCommand(netsCmd)
}
