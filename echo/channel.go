// Package echo implements the two serial echo channels of the demo: a
// fixed-rate byte-at-a-time channel and an idle-timeout channel with a
// bounded readiness wait.
package echo

import (
	"context"
	"fmt"
	"log/slog"

	"i4.energy/across/uartecho/port"
)

// Channel is the fixed-rate echo channel. It owns one serial endpoint,
// opened at task start with whatever mode its Opener is configured for, and
// echoes every byte back immediately: byte N is written before byte N+1 is
// read.
//
// The channel runs until an unrecoverable error; nothing external requests
// it to stop except context cancellation of the whole task.
type Channel struct {
	// Name identifies the channel in log output.
	Name string
	// Opener opens the serial endpoint this channel owns.
	Opener port.Opener
	// Logger receives the channel's diagnostics.
	Logger *slog.Logger
}

// Run opens the endpoint and echoes bytes until a read or write fails.
// Every error is handled here: logged and returned to the supervisor, never
// escalated to the other channel.
func (c *Channel) Run(ctx context.Context) error {
	log := c.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("channel", c.Name)

	ep, err := c.Opener.Open(ctx)
	if err != nil {
		log.Error("failed to open endpoint", "error", err)
		return fmt.Errorf("%s: open endpoint: %w", c.Name, err)
	}
	defer ep.Close()
	log.Info("endpoint open")

	buf := make([]byte, 1)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := ep.Read(buf)
		if err != nil {
			log.Error("failed to read from endpoint", "error", err)
			return fmt.Errorf("%s: read: %w", c.Name, err)
		}
		if n == 0 {
			continue
		}

		// echo back before the next byte is read
		if _, err := ep.Write(buf[:n]); err != nil {
			log.Error("failed to write to endpoint", "error", err)
			return fmt.Errorf("%s: write: %w", c.Name, err)
		}
	}
}
