// Command locagri-server runs the LocAgri remote store.
//
//	locagri-server [serve] [-c config.json] [-a :50051] [-d dsn] ...
//	locagri-server migrate [-c config.json] [-d dsn]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/locagri/internal/server"
	"github.com/dmitrijs2005/locagri/internal/server/config"
	"github.com/spf13/cobra"
)

func newApp(args []string) (*server.App, error) {
	return server.NewApp(config.LoadConfig(args))
}

var rootCmd = &cobra.Command{
	Use:                "locagri-server",
	Short:              "LocAgri remote store: records, object URLs and sessions over gRPC",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE:               serve,
}

var serveCmd = &cobra.Command{
	Use:                "serve",
	Short:              "Apply migrations and serve gRPC (default)",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE:               serve,
}

var migrateCmd = &cobra.Command{
	Use:                "migrate",
	Short:              "Apply database migrations and exit",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(args)
		if err != nil {
			return err
		}
		defer app.Close()
		return app.Migrate(cmd.Context())
	},
}

func serve(cmd *cobra.Command, args []string) error {
	app, err := newApp(args)
	if err != nil {
		return err
	}
	defer app.Close()
	return app.Run(cmd.Context())
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
