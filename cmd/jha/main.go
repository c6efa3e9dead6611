package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"jha_chat/pkg/ai"
	"jha_chat/pkg/config"
	"jha_chat/pkg/logging"
	"jha_chat/pkg/ui"
	"jha_chat/pkg/version"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"
)

type options struct {
	configPath  string
	userName    string
	showVersion bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprint(stdout, version.Details())
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger, err := logging.Init(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: logging disabled: %v\n", err)
	}
	logger.Info("jha_start", "version", version.Summary(), "config_path", opts.configPath)

	client, err := ai.New(cfg.Endpoint, ai.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !term.IsTerminal(int(stdin.Fd())) {
		logger.Debug("line_mode")
		if err := ui.RunLines(ctx, client, cfg.UserName, stdin, stdout, ui.NewClipboard(stderr)); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("line_mode_failed", "error", err)
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	p := tea.NewProgram(ui.NewModel(ctx, client, cfg.UserName))
	if _, err := p.Run(); err != nil {
		logger.Error("tui_failed", "error", err)
		fmt.Fprintf(stderr, "Error running chat: %v\n", err)
		return 1
	}
	logger.Info("jha_exit")
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	opts := options{}
	fs := flag.NewFlagSet("jha", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", config.GetConfigPath(), "path to the config file")
	fs.StringVar(&opts.userName, "name", "", "name used in the greeting")
	fs.BoolVar(&opts.showVersion, "version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// loadConfig reads the config file, then applies environment and flag
// overrides in that order.
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	cfg.ApplyEnv(os.LookupEnv)
	if name := strings.TrimSpace(opts.userName); name != "" {
		cfg.UserName = name
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w (config: %s)", err, opts.configPath)
	}
	return cfg, nil
}
