package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

func TestConciseError(t *testing.T) {
	single := errors.New("single problem")
	if got := conciseError(single).Error(); got != "single problem" {
		t.Errorf("conciseError() = %q", got)
	}

	combined := multierr.Combine(errors.New("first"), errors.New("second"))
	got := conciseError(combined).Error()
	if got != "2 problems:\n\tfirst\n\tsecond" {
		t.Errorf("conciseError() = %q", got)
	}
}

func TestConsoleCores(t *testing.T) {
	stdout, stderr := consoleCores("none")
	if stdout.Enabled(zapcore.ErrorLevel) || stderr.Enabled(zapcore.ErrorLevel) {
		t.Error("disabled console logs something")
	}

	stdout, stderr = consoleCores("normal")
	if stdout.Enabled(zapcore.DebugLevel) || !stdout.Enabled(zapcore.InfoLevel) || stdout.Enabled(zapcore.ErrorLevel) {
		t.Error("normal stdout levels are wrong")
	}
	if !stderr.Enabled(zapcore.ErrorLevel) || stderr.Enabled(zapcore.WarnLevel) {
		t.Error("stderr levels are wrong")
	}

	stdout, _ = consoleCores("debug")
	if !stdout.Enabled(zapcore.DebugLevel) {
		t.Error("debug stdout does not log debug")
	}
}

func TestLoggingPrepare_File(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "test.log")
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "normal", Destination: dest, Mode: "overwrite"},
	}

	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("hidden message")
	log.Info("visible message")
	_ = log.Sync()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("unable to read log: %v", err)
	}
	if !strings.Contains(string(data), "visible message") || strings.Contains(string(data), "hidden message") {
		t.Errorf("unexpected log content:\n%s", data)
	}
}

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"striped", "striped"},
		{"  report  ", "report"},
		{"", "document"},
		{"a/b", "a_b"},
	}
	for _, tt := range tests {
		if got := SafeFileName(tt.in); got != tt.want {
			t.Errorf("SafeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
