package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lpernett/godotenv"
	"go.uber.org/zap"

	"github.com/appengine-ltd/cadtalk/internal/config"
	"github.com/appengine-ltd/cadtalk/internal/interpreter"
	"github.com/appengine-ltd/cadtalk/internal/server"
)

// version, commit, date are injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// renderer is the optional drawing backend. The cgo build wires the raster
// executor in; the headless build interprets and serves descriptors only.
type renderer interface {
	Apply(cmd interpreter.Command) (string, bool)
	Close()
}

func main() {
	var (
		showVersion bool
		configPath  string
		writeConfig bool
		oneShot     string
		serve       bool
		render      bool
		verbose     bool
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "cadtalk.json", "path to the config file")
	flag.BoolVar(&writeConfig, "write-config", false, "write the effective config to the config path and exit")
	flag.StringVar(&oneShot, "c", "", "interpret a single command and exit")
	flag.BoolVar(&serve, "serve", false, "serve the websocket interpret boundary")
	flag.BoolVar(&render, "render", false, "apply descriptors to the drawing canvas")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()

	if showVersion {
		fmt.Printf("cadtalk %s (%s) %s\n", version, commit, date)
		return
	}

	logger := newLogger(verbose)
	defer func() { _ = logger.Sync() }()

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("config load failed", zap.String("path", configPath), zap.Error(err))
	}

	if writeConfig {
		if err := config.Save(cfg, configPath); err != nil {
			logger.Fatal("config write failed", zap.String("path", configPath), zap.Error(err))
		}
		logger.Info("config written", zap.String("path", configPath))
		return
	}

	interp := interpreter.New(interpreter.SaveDefaults{
		Directory: cfg.Output.Directory,
		Filename:  cfg.Output.DefaultFilename,
	}, logger)

	if serve {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		logger.Info("serving interpret boundary", zap.String("addr", cfg.Server.Addr))
		if err := server.Serve(ctx, cfg.Server.Addr, server.NewHandler(interp, logger)); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
		return
	}

	var backend renderer
	if render {
		backend, err = newRenderer(cfg, logger)
		if err != nil {
			logger.Fatal("renderer unavailable", zap.Error(err))
		}
		defer backend.Close()
	}

	if oneShot != "" {
		if err := run(interp, backend, oneShot); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// REPL: one command per line, one JSON descriptor per line.
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := run(interp, backend, line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(interp *interpreter.Interpreter, backend renderer, raw string) error {
	cmd := interp.Interpret(raw)
	payload, err := interpreter.Encode(cmd)
	if err != nil {
		return err
	}
	fmt.Println(string(payload))

	if backend != nil {
		if msg, ok := backend.Apply(cmd); !ok && msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
	}
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
