package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shuv1824/islandmap/internal/config"
	"github.com/shuv1824/islandmap/internal/logger"
	"github.com/shuv1824/islandmap/internal/services/viewer"
	"github.com/shuv1824/islandmap/internal/utils/geodata"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "islandmap",
	Short: "Browse the uninhabited islands of Korea",
	Long: `islandmap serves and lists the national uninhabited island registry.

Run "islandmap serve" for the map API, or use the list commands to query
the dataset from a terminal.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat))
	},
}

// Execute runs the command line.
func Execute() error {
	cfg = config.Load()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.IslandsPath, "islands", cfg.IslandsPath, "path to the island registry JSON")
	flags.StringVar(&cfg.PortsPath, "ports", cfg.PortsPath, "path to the port list JSON")
	flags.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "items per list page")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	rootCmd.AddCommand(serveCmd(), regionsCmd(), islandsCmd(), districtsCmd(), territorialCmd(), showCmd())
	return rootCmd.Execute()
}

func loadViewer(ctx context.Context) *viewer.ViewerService {
	ds := geodata.LoadAll(ctx, cfg.IslandsPath, cfg.PortsPath)
	slog.Debug("dataset loaded", "islands", len(ds.Islands), "ports", len(ds.Ports))
	return viewer.NewViewerService(ds.Islands, ds.Ports, cfg.PageSize, cfg.LayerCacheTTL)
}
