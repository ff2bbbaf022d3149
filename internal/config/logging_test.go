package config

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerText(t *testing.T) {
	var buffer bytes.Buffer
	logger, err := NewLogger(&buffer, "warn", "text")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "mode", "work")

	output := buffer.String()
	if strings.Contains(output, "hidden") {
		t.Fatalf("info record written at warn level: %q", output)
	}
	if !strings.Contains(output, "msg=shown") || !strings.Contains(output, "mode=work") {
		t.Fatalf("output = %q, want text record", output)
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buffer bytes.Buffer
	logger, err := NewLogger(&buffer, "DEBUG", "json")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("tick")
	if !strings.Contains(buffer.String(), `"msg":"tick"`) {
		t.Fatalf("output = %q, want json record", buffer.String())
	}
}

func TestNewLoggerErrors(t *testing.T) {
	var buffer bytes.Buffer
	if _, err := NewLogger(&buffer, "loud", "text"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, err := NewLogger(&buffer, "info", "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
