package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Serve   ServeCmd         `cmd:"" help:"Run the session tracker server"`
	Stats   StatsCmd         `cmd:"" help:"Print statistics for a recorded session"`
	Export  ExportCmd        `cmd:"" help:"Export a session's hands as annotated TOML records"`
}

func main() {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("railbird"),
		kong.Description("Live poker session tracker with action validation and pattern classification"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// setupLogger builds the root logger at the requested level. Debug
// wins over the configured level.
func setupLogger(level string, debug bool) *log.Logger {
	logger := log.New(os.Stderr)
	logger.SetReportTimestamp(true)

	if debug {
		logger.SetLevel(log.DebugLevel)
		return logger
	}
	if parsed, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return logger
}
