// Command qdht runs zeroth-order quasi-discrete Hankel transforms of radial
// profiles from the command line.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tphakala/go-hankel/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	logger := logging.NewDefaultLogger()

	root := &cobra.Command{
		Use:          "qdht",
		Short:        "Zeroth-order quasi-discrete Hankel transform of radial profiles",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logger.SetLevel(logging.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newTransformCmd(logger),
		newDemoCmd(logger),
		newInfoCmd(),
	)

	return root
}
