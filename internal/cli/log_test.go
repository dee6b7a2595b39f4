package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("read components") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("no rotation rule") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("no rotation rule") }, true},
		{"info at warn level", log.WarnLevel, func(l *log.Logger) { l.Info("read components") }, false},
		{"warn at warn level", log.WarnLevel, func(l *log.Logger) { l.Warn("board outline has no points") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Consolidated 3 components into 2 BOM lines")

	out := buf.String()
	if !strings.Contains(out, "Consolidated 3 components into 2 BOM lines (") {
		t.Errorf("progress.done() output = %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestQuietFlagRaisesLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"--quiet", "completion", "bash"})
	root.SetOut(&bytes.Buffer{})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	if c.Logger.GetLevel() != LogWarn {
		t.Errorf("level = %v, want %v", c.Logger.GetLevel(), LogWarn)
	}
}
