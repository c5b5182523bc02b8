package z2d

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil")
	}
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	surface, _ := NewSurface(FormatRGB, 10, 10)
	dc := NewContext(surface, WithPattern(NewOpaquePattern(RGB{R: 255})))
	dc.Fill(BuildPath().Rect(2, 2, 5, 5).Build())

	if !strings.Contains(buf.String(), "fill") {
		t.Errorf("expected a fill debug record, got %q", buf.String())
	}
}
