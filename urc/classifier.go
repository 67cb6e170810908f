package urc

import (
	"log/slog"
)

// Handler receives decoded URC events. Implementations must not block: the
// dispatcher calls Handle from its own goroutine for every event, in arrival
// order.
type Handler interface {
	Handle(ev Event)
}

// Classifier turns URC events into log output. It holds no state and takes
// no action beyond logging; every branch is a safe place to hang future
// behavior (answering calls, fetching messages) without changing the
// dispatch structure.
type Classifier struct {
	log *slog.Logger
}

// NewClassifier creates a Classifier logging through the given logger.
func NewClassifier(logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{log: logger}
}

// Handle logs the event according to its kind. Unrecognized event kinds and
// sub-codes are silently ignored; no-op is a valid, expected outcome.
func (c *Classifier) Handle(ev Event) {
	switch ev := ev.(type) {
	case SystemReady:
		if ev.Subsystem == "SMS" {
			// Ready for SMS
		}

	case SIMState:
		switch ev.Status {
		case SIMReady:
			c.log.Debug("SIM card ready")
		case SIMNotInserted:
			c.log.Warn("SIM card not inserted")
		case SIMPINRequired:
			c.log.Warn("SIM PIN required")
		case SIMPUKRequired:
			c.log.Warn("SIM PUK required")
		case SIMNotRecognized:
			c.log.Warn("SIM card not recognized")
		default:
			c.log.Warn("SIM error", "status", ev.Raw)
		}

	case NetworkState:
		c.log.Info("network registration state", "state", ev.Status)

	case IncomingCall:
		c.log.Info("incoming voice call", "number", ev.Number)
		// Take action here, answer/hang-up

	case CallState:
		switch ev.Result {
		case CallResultBusy:
			c.log.Info("dialed number is busy")
		case CallResultNoAnswer:
			c.log.Info("dialed number has no answer")
		case CallResultNoCarrier:
			c.log.Info("dialed number cannot be reached")
		case CallResultNoDialtone:
			c.log.Info("no dial tone")
		}

	case NewMessage:
		c.log.Info("new SMS received", "storage", ev.Storage, "index", ev.Index)
		// Handle new SMS

	case Voltage:
		c.log.Debug("battery voltage", "millivolts", ev.Millivolts)
	}
}
