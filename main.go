package main

import (
	"log/slog"
	"os"

	"github.com/shuv1824/islandmap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}
