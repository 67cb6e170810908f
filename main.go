package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.bug.st/serial"

	"i4.energy/across/uartecho/echo"
	"i4.energy/across/uartecho/port"
	"i4.energy/across/uartecho/urc"
)

func main() {
	flag.String("console-port", "/dev/ttyUSB0", "Serial port carrying modem URCs")
	flag.String("channel1-port", "/dev/ttyS0", "Serial port of the fixed-rate echo channel")
	flag.Int("channel1-baud", 9600, "Baud rate of the fixed-rate echo channel")
	flag.String("channel2-port", "/dev/ttyS1", "Serial port of the idle-timeout echo channel")
	flag.Duration("idle-timeout", echo.DefaultIdleTimeout, "Idle notice timeout of channel 2")
	flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	config, err := LoadConfig(WithDefaults(), WithEnv(), WithFlags(flag.CommandLine))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	switch config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The console endpoint carries the modem's unsolicited notifications.
	// One dispatcher, one classifier, wired once for the process lifetime.
	console, err := port.SerialOpener{PortName: config.ConsolePort}.Open(ctx)
	if err != nil {
		logger.Error("Failed to open console endpoint", "error", err)
		os.Exit(1)
	}

	classifier := urc.NewClassifier(logger.With("component", "urc"))
	dispatcher := urc.NewDispatcher(console, classifier, logger.With("component", "urc"))
	spawn(ctx, logger, "urc-dispatcher", taskFunc(dispatcher.Loop))

	logger.Info("System ready")

	spawn(ctx, logger, "channel1", &echo.Channel{
		Name: "channel1",
		Opener: port.SerialOpener{
			PortName: config.Channel1Port,
			Mode:     &serial.Mode{BaudRate: config.Channel1Baud},
		},
		Logger: logger.With("component", "echo"),
	})

	spawn(ctx, logger, "channel2", &echo.IdleChannel{
		Name:    "channel2",
		Opener:  port.SerialOpener{PortName: config.Channel2Port},
		Logger:  logger.With("component", "echo"),
		Timeout: config.IdleTimeout,
	})

	logger.Info("System initialization finished")

	// Idle here for the process lifetime; the channel tasks and the
	// dispatcher do all the work.
	<-ctx.Done()

	logger.Info("Shutting down")
	if err := console.Close(); err != nil {
		logger.Error("Failed to close console endpoint", "error", err)
	}
}
