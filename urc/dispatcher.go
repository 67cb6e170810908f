package urc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Dispatcher reads modem output from a byte stream, decodes URC lines and
// delivers the resulting events to a single Handler.
//
// It is the process's only event delivery path: one Dispatcher, one Handler,
// wired once at startup. The Dispatcher is the ONLY goroutine that reads
// from the source, so events are delivered in arrival order and never lost
// to a competing reader.
type Dispatcher struct {
	src     io.Reader
	handler Handler
	log     *slog.Logger
}

// NewDispatcher creates a Dispatcher reading from src and delivering events
// to handler.
func NewDispatcher(src io.Reader, handler Handler, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{src: src, handler: handler, log: logger}
}

// Loop reads and dispatches events until the context is cancelled or the
// source fails. Lines that decode to no event are dropped silently.
//
// Loop is intended to run on its own goroutine for the lifetime of the
// process:
//
//	d := urc.NewDispatcher(console, classifier, logger)
//	go d.Loop(ctx)
func (d *Dispatcher) Loop(ctx context.Context) error {
	scanner := bufio.NewScanner(d.src)
	scanner.Split(Splitter)

	// Channels for tokens and errors from the scanner goroutine
	tokens := make(chan string, 10)
	scanErrs := make(chan error, 1)

	go func() {
		defer close(tokens)
		for scanner.Scan() {
			token := scanner.Text()
			if token != "" {
				select {
				case tokens <- token:
				case <-ctx.Done():
					return
				}
			}
		}
		// Scanner stopped - check if there was an error
		if err := scanner.Err(); err != nil {
			select {
			case scanErrs <- err:
			case <-ctx.Done():
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case token, ok := <-tokens:
			if !ok {
				// Token channel closed - source reached EOF
				return io.EOF
			}
			ev, ok := Decode(token)
			if !ok {
				continue
			}
			d.handler.Handle(ev)

		case err := <-scanErrs:
			d.log.Error("URC source read failed", "error", err)
			return fmt.Errorf("read URC source: %w", err)
		}
	}
}
