// Command directoryctl runs the directory maintenance jobs once, outside of
// the scheduler, and mints access tokens for local testing.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "directoryctl",
		Short: "Maintenance commands for the company directory",
		Long: `Run the directory maintenance jobs on demand.

Available subcommands:
  sweep    - Reconcile listing activation with subscriptions
  user     - Reconcile the listings of a single user
  pages    - Regenerate the city/category page snapshots
  sitemap  - Regenerate the sitemap entries
  migrate  - Create or update the directory schema
  token    - Mint an access token for local testing`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSweepCmd(),
		newUserCmd(),
		newPagesCmd(),
		newSitemapCmd(),
		newMigrateCmd(),
		newTokenCmd(),
	)

	return root
}
