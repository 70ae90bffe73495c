package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/geolens/internal/version"
)

func main() {
	// Local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load(".env")

	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "geolens",
		Short:         "Geospatial risk overlays and interactive geo tools",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCommand(), newOverlaysCommand(), newSimulateCommand())
	return cmd
}
