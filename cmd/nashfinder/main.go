// Command nashfinder enumerates supports of two-player games and extracts
// Nash equilibria from solver output.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func main() {
	defer glog.Flush()
	if err := newRootCmd().Execute(); err != nil {
		glog.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "nashfinder",
		Short:        "Find Nash equilibria of two-player strategic games",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its flags from the standard flag set, which cobra
			// has already filled in.
			return flag.CommandLine.Parse(nil)
		},
	}

	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	root.AddCommand(supportsCmd(), solveCmd(), extractCmd())
	return root
}
