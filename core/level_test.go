package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
		tag   string
	}{
		{DebugLevel, "debug", "DEBUG"},
		{InfoLevel, "info", "INFO"},
		{WarnLevel, "warn", "WARN"},
		{ErrorLevel, "error", "ERROR"},
		{NoneLevel, "none", "NONE"},
		{Level(42), "unknown", "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
			if got := tt.level.Tag(); got != tt.tag {
				t.Errorf("Level.Tag() = %v, want %v", got, tt.tag)
			}
		})
	}
}

func TestLevel_Enabled(t *testing.T) {
	all := []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, NoneLevel}
	for _, minimum := range all {
		for _, l := range all[:4] {
			want := minimum != NoneLevel && l >= minimum
			if got := l.Enabled(minimum); got != want {
				t.Errorf("%s.Enabled(%s) = %v, want %v", l, minimum, got, want)
			}
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"Warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{" none ", NoneLevel},
		{"off", NoneLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestLevel_TextRoundTrip(t *testing.T) {
	var l Level
	if err := l.UnmarshalText([]byte("ERROR")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if l != ErrorLevel {
		t.Errorf("Expected ErrorLevel, got %v", l)
	}
	text, _ := l.MarshalText()
	if string(text) != "error" {
		t.Errorf("MarshalText() = %q, want %q", text, "error")
	}
	if err := l.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("Expected error for bogus level")
	}
	if l != ErrorLevel {
		t.Error("Failed UnmarshalText must not change the level")
	}
}
