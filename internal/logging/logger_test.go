package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// decodeEntry parses the single JSON entry written to buf.
func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log output is not a JSON entry: %v: %q", err, buf.String())
	}
	return entry
}

func TestNewLogger_ShiftFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "bigshift")
	logger.Info("shift done",
		Uint("shift", 511),
		Int("bitlen_before", 1),
		Int("bitlen_after", 512),
		String("status", "success"),
		Duration("elapsed", 1500*time.Millisecond),
	)

	entry := decodeEntry(t, &buf)
	want := map[string]any{
		"level":         "info",
		"message":       "shift done",
		"component":     "bigshift",
		"shift":         float64(511),
		"bitlen_before": float64(1),
		"bitlen_after":  float64(512),
		"status":        "success",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
	if _, ok := entry["elapsed"]; !ok {
		t.Error("elapsed field missing")
	}
	if _, ok := entry["time"]; !ok {
		t.Error("timestamp missing")
	}
}

func TestZerologAdapter_Levels(t *testing.T) {
	tests := []struct {
		name      string
		log       func(Logger)
		wantLevel string
		wantMsg   string
		wantKey   string
		wantValue any
	}{
		{
			name:      "info with bench counters",
			log:       func(l Logger) { l.Info("benchmark finished", Uint64("ops", 4000), Float64("ops_per_sec", 2000.5)) },
			wantLevel: "info",
			wantMsg:   "benchmark finished",
			wantKey:   "ops_per_sec",
			wantValue: 2000.5,
		},
		{
			name: "error carries the cause",
			log: func(l Logger) {
				l.Error("shift failed", errors.New("backend unavailable"), Uint("shift", 3))
			},
			wantLevel: "error",
			wantMsg:   "shift failed",
			wantKey:   "error",
			wantValue: "backend unavailable",
		},
		{
			name:      "debug overflow detail",
			log:       func(l Logger) { l.Debug("shift overflow", Int("bitlen", 2)) },
			wantLevel: "debug",
			wantMsg:   "shift overflow",
			wantKey:   "bitlen",
			wantValue: float64(2),
		},
		{
			name:      "printf",
			log:       func(l Logger) { l.Printf("listening on %s", ":8080") },
			wantLevel: "info",
			wantMsg:   "listening on :8080",
		},
		{
			name:      "println joins arguments",
			log:       func(l Logger) { l.Println("pool", 8192) },
			wantLevel: "info",
			wantMsg:   "pool 8192",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewLogger(&buf, "bench"))
			entry := decodeEntry(t, &buf)
			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", entry["level"], tt.wantLevel)
			}
			if entry["message"] != tt.wantMsg {
				t.Errorf("message = %v, want %q", entry["message"], tt.wantMsg)
			}
			if tt.wantKey != "" && entry[tt.wantKey] != tt.wantValue {
				t.Errorf("%s = %v, want %v", tt.wantKey, entry[tt.wantKey], tt.wantValue)
			}
		})
	}
}

func TestApplyFields_Fallback(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "server").Info("request",
		Field{Key: "words", Value: []string{"0x1", "0x2"}},
		Field{Key: "bytes", Value: int64(4096)},
	)
	out := buf.String()
	for _, want := range []string{`"words":["0x1","0x2"]`, `"bytes":4096`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestSetLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	if err := SetLevel("WARN"); err != nil {
		t.Fatalf("SetLevel(WARN) error: %v", err)
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("global level = %v, want warn", zerolog.GlobalLevel())
	}

	var buf bytes.Buffer
	NewLogger(&buf, "bigshift").Info("starting HTTP service")
	if buf.Len() != 0 {
		t.Errorf("info entry should be filtered at warn level, got: %s", buf.String())
	}

	if err := SetLevel("loud"); err == nil || !strings.Contains(err.Error(), `"loud"`) {
		t.Errorf("SetLevel(loud) = %v, want unknown level error", err)
	}
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Info("x")
	l.Error("x", errors.New("y"))
	l.Debug("x")
	l.Printf("%d", 1)
	l.Println("x")
}

func TestNewConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "bench", true)
	logger.Info("benchmark finished", Uint64("ops", 4000))

	out := buf.String()
	for _, want := range []string{"benchmark finished", "component=bench", "ops=4000"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output %q missing %q", out, want)
		}
	}
	if strings.Contains(out, "{") {
		t.Errorf("console output should not be JSON: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("console output should be uncolored: %q", out)
	}
}
