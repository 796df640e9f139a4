// Package cli implements the wikisearch command-line entrypoint: the
// "build" subcommand (runs the index builder over a local corpus) and
// the "serve" subcommand (loads descriptors and auxiliary maps, starts
// the HTTP server), following the Cobra/Viper command layout used
// elsewhere in the retrieved example pack.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the wikisearch CLI.
func Execute(ctx context.Context) error {
	var configPath string

	root := &cobra.Command{
		Use:           "wikisearch",
		Short:         "Offline inverted-index builder and ranked-retrieval query engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("WIKISEARCH_CONFIG"), "path to a config file (yaml/json/toml)")

	root.AddCommand(buildCmd(&configPath))
	root.AddCommand(serveCmd(&configPath))

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return err
	}
	return nil
}
