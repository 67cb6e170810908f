package main

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
type Config struct {
	// ConsolePort is the path to the modem's diagnostic port carrying URCs
	// (e.g. "/dev/ttyUSB0")
	ConsolePort string
	// Channel1Port is the path of the fixed-rate echo channel's serial port
	Channel1Port string
	// Channel1Baud is the baud rate for the fixed-rate echo channel
	Channel1Baud int
	// Channel2Port is the path of the idle-timeout echo channel's serial port
	Channel2Port string
	// IdleTimeout is how long the idle-timeout channel waits before
	// emitting its idle notice
	IdleTimeout time.Duration
	// LogLevel sets the logging level (e.g. "debug", "info", "warn", "error")
	LogLevel string
}

// ConfigOption is a function that modifies a Config
type ConfigOption func(*Config) error

// LoadConfig creates a new config by applying the given options in order
func LoadConfig(opts ...ConfigOption) (*Config, error) {
	config := &Config{}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// WithDefaults applies default configuration values
func WithDefaults() ConfigOption {
	return func(c *Config) error {
		c.ConsolePort = "/dev/ttyUSB0"
		c.Channel1Port = "/dev/ttyS0"
		c.Channel1Baud = 9600
		c.Channel2Port = "/dev/ttyS1"
		c.IdleTimeout = 5 * time.Second
		c.LogLevel = "info"
		return nil
	}
}

// WithEnv loads configuration from environment variables
func WithEnv() ConfigOption {
	return func(c *Config) error {
		if console := os.Getenv("CONSOLE_PORT"); console != "" {
			c.ConsolePort = console
		}

		if p := os.Getenv("CHANNEL1_PORT"); p != "" {
			c.Channel1Port = p
		}

		if baud := os.Getenv("CHANNEL1_BAUD"); baud != "" {
			if b, err := strconv.Atoi(baud); err == nil {
				c.Channel1Baud = b
			}
		}

		if p := os.Getenv("CHANNEL2_PORT"); p != "" {
			c.Channel2Port = p
		}

		if timeout := os.Getenv("IDLE_TIMEOUT"); timeout != "" {
			if d, err := time.ParseDuration(timeout); err == nil {
				c.IdleTimeout = d
			}
		}

		if level := os.Getenv("LOG_LEVEL"); level != "" {
			c.LogLevel = level
		}

		return nil
	}
}

// WithFlags loads configuration from command-line flags
func WithFlags(fSet *flag.FlagSet) ConfigOption {
	return func(c *Config) error {
		fSet.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "console-port":
				c.ConsolePort = f.Value.String()
			case "channel1-port":
				c.Channel1Port = f.Value.String()
			case "channel1-baud":
				if b, err := strconv.Atoi(f.Value.String()); err == nil {
					c.Channel1Baud = b
				}
			case "channel2-port":
				c.Channel2Port = f.Value.String()
			case "idle-timeout":
				if d, err := time.ParseDuration(f.Value.String()); err == nil {
					c.IdleTimeout = d
				}
			case "log-level":
				c.LogLevel = f.Value.String()
			}

		})
		return nil
	}

}
