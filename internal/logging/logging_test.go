package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWritesPrefixAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.DebugLevel)
	l.Info("encounter", "enemy", "Goblin")

	out := buf.String()
	for _, want := range []string{"knight", "encounter", "enemy=Goblin"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.WarnLevel)
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"WARN", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "knight.log")
	l, closer, err := OpenFile(path, log.InfoLevel)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	l.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected hello", data)
	}
}

func TestOpenFileEmptyPath(t *testing.T) {
	l, closer, err := OpenFile("", log.InfoLevel)
	if err != nil {
		t.Fatalf("OpenFile(\"\") error = %v", err)
	}
	if l == nil {
		t.Fatal("OpenFile(\"\") returned nil logger")
	}
	if closer != nil {
		t.Error("OpenFile(\"\") returned a closer, expected nil")
	}
}
