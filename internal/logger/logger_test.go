package logger_test

import (
	"bytes"
	"minibasic/internal/logger"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer

	logger.InitWriter(&buf, false, true)
	log.Debug("hidden")
	log.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output without debug: %q", buf.String())
	}

	buf.Reset()
	logger.InitWriter(&buf, true, true)
	log.Debug("visible", "line", 10)
	if !strings.Contains(buf.String(), "visible") || !strings.Contains(buf.String(), "line=10") {
		t.Errorf("unexpected debug output: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "BASIC") {
		t.Errorf("expected prefix in %q", buf.String())
	}
}
