package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-compare/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggingConfig
		override  string
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{name: "Defaults", cfg: config.LoggingConfig{}, wantLevel: zapcore.InfoLevel},
		{name: "Configured level", cfg: config.LoggingConfig{Level: "warn"}, wantLevel: zapcore.WarnLevel},
		{name: "Override wins", cfg: config.LoggingConfig{Level: "error"}, override: "debug", wantLevel: zapcore.DebugLevel},
		{name: "Console format", cfg: config.LoggingConfig{Format: "console"}, wantLevel: zapcore.InfoLevel},
		{name: "Invalid level", cfg: config.LoggingConfig{Level: "verbose"}, wantErr: true},
		{name: "Invalid format", cfg: config.LoggingConfig{Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg, tt.override)
			if tt.wantErr {
				if err == nil {
					t.Fatal("New() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if !logger.Core().Enabled(tt.wantLevel) {
				t.Errorf("expected level %s to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > zapcore.DebugLevel && logger.Core().Enabled(tt.wantLevel-1) {
				t.Errorf("expected level %s to be disabled", tt.wantLevel-1)
			}
		})
	}
}

func TestNewWithOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "compare.log")

	logger, err := New(config.LoggingConfig{Level: "info", OutputFile: path}, "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("written to file")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file missing message: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	if level, err := ParseLevel("warning"); err != nil || level != zapcore.WarnLevel {
		t.Errorf("ParseLevel(warning) = %v, %v", level, err)
	}
	if _, err := ParseLevel("trace"); err == nil {
		t.Error("ParseLevel(trace) expected error")
	}
}
