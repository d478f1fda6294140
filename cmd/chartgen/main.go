package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyatlas/chartgen/internal/config"
	"github.com/skyatlas/chartgen/internal/logging"
)

// module defs - BuildDate can be set at build time via ldflags
var (
	CurrentVersion string = "0.1.0"
	BuildDate      string = "unknown"

	AppName string = "chartgen"
)

// global variables
var (
	// SlogManager handles all slog-based logging
	SlogManager *logging.SlogManager

	// Logger is the slog logger (convenience reference)
	Logger *slog.Logger

	// RunStartTime stamps log files and the generated chart
	RunStartTime time.Time
)

// setup loads configuration and initializes logging. The config file
// is looked up next to the binary and in the working directory.
func setup() error {
	RunStartTime = time.Now().UTC()

	if err := config.Load("."); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("create logs dir: %w", err)
	}
	logFile, err := os.Create(logging.LogFilePath(logsDir, AppName, RunStartTime))
	if err != nil {
		return fmt.Errorf("create log file: %w", err)
	}

	SlogManager = logging.NewSlogManager()
	SlogManager.Setup(logFile, config.GetString("logLevel"))
	Logger = SlogManager.Logger()
	return nil
}

// zerologConsole builds the zerolog logger used by the database and
// metrics subsystems.
func zerologConsole() zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return zerolog.New(writer).With().Timestamp().Logger().Level(
		zerologLevel(config.GetString("logLevel")))
}

func zerologLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `%s %s (built %s)

Usage: %s [command]

Commands:
  build    generate the constellation chart (default)
  render   write ASCII charts for visual inspection
  report   print angular radius statistics per constellation
  version  print version and exit
`, AppName, CurrentVersion, BuildDate, filepath.Base(os.Args[0]))
}

func main() {
	args := os.Args[1:]
	command := "build"
	if len(args) > 0 {
		command = strings.ToLower(args[0])
	}

	if command == "version" {
		fmt.Printf("%s %s (built %s)\n", AppName, CurrentVersion, BuildDate)
		return
	}
	if command == "help" || command == "-h" || command == "--help" {
		usage()
		return
	}

	if err := setup(); err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}

	var err error
	switch command {
	case "build":
		err = runBuild()
	case "render":
		err = runRender(args[1:])
	case "report":
		err = runReport()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		Logger.Error("command failed", "command", command, "error", err)
		os.Exit(1)
	}
}
