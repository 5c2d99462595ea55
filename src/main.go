package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"elevsim/src/api"
	"elevsim/src/config"
	"elevsim/src/console"
	"elevsim/src/elev"
	"elevsim/src/timer"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	envPath := flag.String("env", ".env", "Path to an optional .env file")
	instanceID := flag.String("id", "", "Instance ID used in logs. Defaults to a random string")
	floors := flag.Int("floors", 0, "Number of floors in the building")
	stepPeriod := flag.Duration("step", 0, "Simulation tick period")
	addr := flag.String("addr", "", "HTTP listen address")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	logFile := flag.Bool("log-file", false, "Also write logs to <id>.log")
	useConsole := flag.Bool("console", false, "Read floor calls from the keyboard")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		if err := config.LoadFile(&cfg, *configPath); err != nil {
			fatal("Loading config file failed", err)
		}
	}
	if err := config.LoadEnv(&cfg, *envPath); err != nil {
		fatal("Loading environment failed", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "id":
			cfg.InstanceID = *instanceID
		case "floors":
			cfg.TotalFloors = *floors
		case "step":
			cfg.StepPeriod = *stepPeriod
		case "addr":
			cfg.Addr = *addr
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		}
	})
	if err := cfg.Validate(); err != nil {
		fatal("Invalid configuration", err)
	}
	cfg.EnsureID()

	level, _ := config.ParseLevel(cfg.LogLevel)
	logCloser, err := elev.InitLogger(cfg.InstanceID, level, cfg.LogFile)
	if err != nil {
		fatal("Logger setup failed", err)
	}
	defer logCloser.Close()

	elevator, err := elev.NewController(cfg.TotalFloors)
	if err != nil {
		fatal("Controller setup failed", err)
	}
	slog.Info("Starting elevator simulation",
		"floors", cfg.TotalFloors,
		"step", cfg.StepPeriod,
		"addr", cfg.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go timer.Ticker(ctx, cfg.StepPeriod, elevator.Advance)

	if *useConsole {
		go func() {
			defer stop()
			if err := console.Run(ctx, elevator, os.Stdout); err != nil {
				slog.Error("Console stopped", "err", err)
			}
		}()
	}

	server := api.NewServer(cfg.Addr, api.NewHandler(elevator, cfg.StepPeriod, cfg.AllowedOrigins))
	if err := server.Run(ctx); err != nil {
		slog.Error("Server stopped", "err", err)
		logCloser.Close()
		os.Exit(1)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
