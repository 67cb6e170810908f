package main

import (
	"flag"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(WithDefaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.ConsolePort != "/dev/ttyUSB0" {
		t.Errorf("unexpected console port: %q", config.ConsolePort)
	}
	if config.Channel1Port != "/dev/ttyS0" || config.Channel1Baud != 9600 {
		t.Errorf("unexpected channel 1 config: %q @ %d", config.Channel1Port, config.Channel1Baud)
	}
	if config.Channel2Port != "/dev/ttyS1" {
		t.Errorf("unexpected channel 2 port: %q", config.Channel2Port)
	}
	if config.IdleTimeout != 5*time.Second {
		t.Errorf("unexpected idle timeout: %v", config.IdleTimeout)
	}
	if config.LogLevel != "info" {
		t.Errorf("unexpected log level: %q", config.LogLevel)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CONSOLE_PORT", "/dev/ttyUSB3")
	t.Setenv("CHANNEL1_BAUD", "115200")
	t.Setenv("IDLE_TIMEOUT", "10s")

	config, err := LoadConfig(WithDefaults(), WithEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.ConsolePort != "/dev/ttyUSB3" {
		t.Errorf("expected env console port, got %q", config.ConsolePort)
	}
	if config.Channel1Baud != 115200 {
		t.Errorf("expected env baud rate, got %d", config.Channel1Baud)
	}
	if config.IdleTimeout != 10*time.Second {
		t.Errorf("expected env idle timeout, got %v", config.IdleTimeout)
	}
	// Untouched keys keep their defaults
	if config.Channel2Port != "/dev/ttyS1" {
		t.Errorf("expected default channel 2 port, got %q", config.Channel2Port)
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	fSet := flag.NewFlagSet("test", flag.ContinueOnError)
	fSet.String("channel2-port", "/dev/ttyS1", "")
	fSet.String("log-level", "info", "")

	if err := fSet.Parse([]string{"-channel2-port", "/dev/ttyAMA1", "-log-level", "debug"}); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	config, err := LoadConfig(WithDefaults(), WithFlags(fSet))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Channel2Port != "/dev/ttyAMA1" {
		t.Errorf("expected flag channel 2 port, got %q", config.Channel2Port)
	}
	if config.LogLevel != "debug" {
		t.Errorf("expected flag log level, got %q", config.LogLevel)
	}
}
