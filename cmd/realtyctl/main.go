// Command realtyctl runs the site calculators from a terminal and manages agent accounts.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "realtyctl",
		Short:        "Northeast Houston realty calculators and admin tools",
		SilenceUsage: true,
	}
	root.AddCommand(
		newMortgageCmd(),
		newNetProceedsCmd(),
		newHomeValueCmd(),
		newOfferCmd(),
		newAgentCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
