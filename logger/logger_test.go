package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	log := New(DefaultLevel)
	if log.GetLevel() != zerolog.WarnLevel {
		t.Errorf("Expected warn level, got %v", log.GetLevel())
	}
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, zerolog.InfoLevel)

	log.Debug().Msg("hidden message")
	log.Info().Str("file", "records.txt").Msg("test message")

	output := buf.String()
	if strings.Contains(output, "hidden message") {
		t.Errorf("Expected debug message to be filtered, got: %s", output)
	}
	if !strings.Contains(output, "test message") || !strings.Contains(output, "records.txt") {
		t.Errorf("Expected output to contain the message and its field, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{input: "", want: DefaultLevel},
		{input: "debug", want: zerolog.DebugLevel},
		{input: " INFO ", want: zerolog.InfoLevel},
		{input: "error", want: zerolog.ErrorLevel},
		{input: "loud", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseLevel(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	testLog := NewWithWriter(buf, zerolog.DebugLevel)
	ctx := WithContext(context.Background(), testLog)

	retrievedLog := FromContext(ctx)
	retrievedLog.Debug().Msg("test")

	if buf.Len() == 0 {
		t.Error("Expected log output from retrieved logger")
	}
}

func TestFromContext_DefaultLogger(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() != DefaultLevel {
		t.Errorf("Expected default logger at %v, got %v", DefaultLevel, log.GetLevel())
	}
}
