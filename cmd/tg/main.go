package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/avitaltamir/tilegrid/internal/app"
	"github.com/avitaltamir/tilegrid/internal/config"
	"github.com/avitaltamir/tilegrid/internal/logger"
	"github.com/avitaltamir/tilegrid/internal/state"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var version = "dev"

type cliArgs struct {
	version    bool
	configPath string
}

func parseArgs(args []string, output io.Writer) (cliArgs, error) {
	var a cliArgs
	flags := flag.NewFlagSet("tg", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.BoolVar(&a.version, "v", false, "print the version and exit")
	flags.BoolVar(&a.version, "version", false, "print the version and exit")
	flags.StringVar(&a.configPath, "c", "", "config file `path`")
	flags.StringVar(&a.configPath, "config", "", "config file `path`")

	if err := flags.Parse(args); err != nil {
		return cliArgs{}, err
	}
	if flags.NArg() > 0 {
		return cliArgs{}, fmt.Errorf("unexpected argument %q", flags.Arg(0))
	}
	return a, nil
}

func main() {
	// Set the app version for display in the UI
	app.Version = version

	args, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(2)
	}
	if args.version {
		fmt.Println("tg", version)
		return
	}

	if err := run(args.configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// appOptions wires the config file, its watcher and the session state file
// into the root model.
func appOptions(configPath, statePath string, watcher *config.Watcher, log *zap.Logger) app.Options {
	return app.Options{
		ConfigPath: configPath,
		StatePath:  statePath,
		Watcher:    watcher,
		Logger:     log,
	}
}

func run(path string) error {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, cfgErr := config.Load(path)

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfgErr != nil {
		// keep going on defaults
		log.Warn("using default config", zap.Error(cfgErr))
	}

	// Live reload is best effort
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Warn("failed to create config dir", zap.Error(err))
	}
	watcher, err := config.NewWatcher(path)
	if err != nil {
		log.Warn("config watcher unavailable", zap.String("path", path), zap.Error(err))
		watcher = nil
	} else {
		defer watcher.Close()
	}

	// Without a state file the session simply starts fresh
	statePath, err := state.Path()
	if err != nil {
		log.Warn("session state unavailable", zap.Error(err))
		statePath = ""
	}

	log.Info("starting",
		zap.String("version", version),
		zap.String("config", path),
		zap.String("state", statePath),
	)

	p := tea.NewProgram(
		app.New(cfg, appOptions(path, statePath, watcher, log)),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
