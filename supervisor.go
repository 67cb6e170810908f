package main

import (
	"context"
	"log/slog"
)

// task is a unit of concurrency that runs until its work fails or the
// context is cancelled.
type task interface {
	Run(ctx context.Context) error
}

// spawn starts a task on its own goroutine, fire-and-forget. There is no
// restart policy; the supervisor's only duty is to make a task's exit
// visible instead of losing the channel silently.
func spawn(ctx context.Context, logger *slog.Logger, name string, t task) {
	go func() {
		logger.Info("task started", "task", name)
		err := t.Run(ctx)
		switch {
		case err == nil:
			logger.Info("task exited", "task", name)
		case ctx.Err() != nil:
			logger.Info("task stopped", "task", name)
		default:
			logger.Error("task exited unexpectedly", "task", name, "error", err)
		}
	}()
}

// taskFunc adapts a plain function to the task interface.
type taskFunc func(ctx context.Context) error

func (f taskFunc) Run(ctx context.Context) error {
	return f(ctx)
}
