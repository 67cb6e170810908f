package echo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"i4.energy/across/uartecho/port"
)

const (
	// DefaultIdleTimeout is how long the idle channel waits for input
	// before emitting the idle notice.
	DefaultIdleTimeout = 5 * time.Second
	// DefaultBufferSize bounds how many bytes one wait cycle can echo.
	DefaultBufferSize = 128
)

// IdleChannel is the idle-timeout echo channel. Each cycle waits up to
// Timeout for the endpoint to become readable; on data it echoes whatever
// arrived (a partial buffer is normal), on timeout it writes a human-readable
// idle notice to the endpoint and keeps going, and only a wait error
// terminates the task.
type IdleChannel struct {
	// Name identifies the channel in log output and in the idle notice.
	Name string
	// Opener opens the serial endpoint this channel owns.
	Opener port.Opener
	// Logger receives the channel's diagnostics.
	Logger *slog.Logger
	// Timeout is the per-cycle wait bound. Zero means DefaultIdleTimeout.
	Timeout time.Duration
	// BufferSize is the echo buffer capacity. Zero means DefaultBufferSize.
	BufferSize int
}

// Run opens the endpoint and echoes with idle detection until the wait
// fails. The three wait outcomes (data, timeout, error) are each handled
// distinctly; a timeout never terminates the task.
func (c *IdleChannel) Run(ctx context.Context) error {
	log := c.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("channel", c.Name)

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultIdleTimeout
	}
	size := c.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}

	ep, err := c.Opener.Open(ctx)
	if err != nil {
		log.Error("failed to open endpoint", "error", err)
		return fmt.Errorf("%s: open endpoint: %w", c.Name, err)
	}
	defer ep.Close()
	log.Info("endpoint open")

	notice := fmt.Sprintf("\r\n%s: no data for %s\r\n", c.Name, timeout)
	buf := make([]byte, size)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, status, err := ep.ReadWait(buf, timeout)
		switch status {
		case port.WaitData:
			// echo whatever was read
			if _, err := ep.Write(buf[:n]); err != nil {
				log.Error("failed to write to endpoint", "error", err)
				return fmt.Errorf("%s: write: %w", c.Name, err)
			}

		case port.WaitTimeout:
			if _, err := ep.Write([]byte(notice)); err != nil {
				log.Error("failed to write to endpoint", "error", err)
				return fmt.Errorf("%s: write idle notice: %w", c.Name, err)
			}
			log.Info("no data received", "timeout", timeout)

		case port.WaitError:
			log.Error("failed to wait on endpoint", "error", err)
			return fmt.Errorf("%s: wait: %w", c.Name, err)
		}
	}
}
