package urc

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// unknownEvent stands in for event kinds the classifier has no branch for.
type unknownEvent struct{}

func (unknownEvent) isEvent() {}

func newTestClassifier() (*Classifier, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewClassifier(logger), &buf
}

func TestClassifierHandle(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		level    string
		contains []string
	}{
		{
			name:     "SIM ready",
			event:    SIMState{Status: SIMReady, Raw: "READY"},
			level:    "DEBUG",
			contains: []string{"SIM card ready"},
		},
		{
			name:     "SIM not inserted",
			event:    SIMState{Status: SIMNotInserted},
			level:    "WARN",
			contains: []string{"SIM card not inserted"},
		},
		{
			name:     "SIM PIN required",
			event:    SIMState{Status: SIMPINRequired},
			level:    "WARN",
			contains: []string{"SIM PIN required"},
		},
		{
			name:     "SIM PUK required",
			event:    SIMState{Status: SIMPUKRequired},
			level:    "WARN",
			contains: []string{"SIM PUK required"},
		},
		{
			name:     "SIM not recognized",
			event:    SIMState{Status: SIMNotRecognized},
			level:    "WARN",
			contains: []string{"SIM card not recognized"},
		},
		{
			name:     "SIM unknown error logs raw value",
			event:    SIMState{Status: SIMUnknown, Raw: "PH-NET PIN"},
			level:    "WARN",
			contains: []string{"SIM error", "PH-NET PIN"},
		},
		{
			name:     "Network state logs raw status code",
			event:    NetworkState{Status: 5},
			level:    "INFO",
			contains: []string{"network registration state", "state=5"},
		},
		{
			name:     "Incoming call logs caller number",
			event:    IncomingCall{Number: "+15551234567"},
			level:    "INFO",
			contains: []string{"incoming voice call", "+15551234567"},
		},
		{
			name:     "Call busy",
			event:    CallState{Result: CallResultBusy},
			level:    "INFO",
			contains: []string{"dialed number is busy"},
		},
		{
			name:     "Call no answer",
			event:    CallState{Result: CallResultNoAnswer},
			level:    "INFO",
			contains: []string{"dialed number has no answer"},
		},
		{
			name:     "Call no carrier",
			event:    CallState{Result: CallResultNoCarrier},
			level:    "INFO",
			contains: []string{"dialed number cannot be reached"},
		},
		{
			name:     "Call no dial tone",
			event:    CallState{Result: CallResultNoDialtone},
			level:    "INFO",
			contains: []string{"no dial tone"},
		},
		{
			name:     "New message logs storage and index",
			event:    NewMessage{Storage: "SM", Index: 4},
			level:    "INFO",
			contains: []string{"new SMS received", "storage=SM", "index=4"},
		},
		{
			name:     "Voltage logs millivolts at debug",
			event:    Voltage{Millivolts: 3862},
			level:    "DEBUG",
			contains: []string{"battery voltage", "millivolts=3862"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, buf := newTestClassifier()
			c.Handle(tt.event)

			out := buf.String()
			if !strings.Contains(out, "level="+tt.level) {
				t.Errorf("expected %s log, got: %q", tt.level, out)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("expected log to contain %q, got: %q", want, out)
				}
			}
		})
	}
}

func TestClassifierHandleNoOp(t *testing.T) {
	tests := []struct {
		name  string
		event Event
	}{
		{name: "SMS subsystem ready is a placeholder", event: SystemReady{Subsystem: "SMS"}},
		{name: "Unknown subsystem ready", event: SystemReady{Subsystem: "GPS"}},
		{name: "Unknown call result", event: CallState{Result: CallResult(99)}},
		{name: "Unknown event kind", event: unknownEvent{}},
		{name: "Nil event", event: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, buf := newTestClassifier()
			c.Handle(tt.event)

			if out := buf.String(); out != "" {
				t.Errorf("expected no log output, got: %q", out)
			}
		})
	}
}
