package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if lines != nil {
		t.Fatalf("Read() = %v, want nil", lines)
	}
}

func TestParseAndFormat_ZerologLine(t *testing.T) {
	line := `{"level":"error","component":"pixabay","request_id":"abc","page":2,"time":"2026-01-02T03:04:05Z","message":"image request failed"}`
	e := Parse(line)
	if e.Level != "error" || e.Component != "pixabay" || e.Message != "image request failed" {
		t.Fatalf("Parse() = %#v", e)
	}
	if e.Fields["request_id"] != "abc" || e.Fields["page"] != "2" {
		t.Fatalf("Fields = %#v", e.Fields)
	}
	if e.Time.IsZero() {
		t.Fatalf("Time not parsed")
	}

	out := Format(e)
	if !strings.Contains(out, "ERR [pixabay] image request failed") {
		t.Fatalf("Format() = %q", out)
	}
	if !strings.HasSuffix(out, "page=2 request_id=abc") {
		t.Fatalf("Format() = %q, want sorted fields", out)
	}
}

func TestParse_PlainText(t *testing.T) {
	e := Parse("not json at all")
	if e.Message != "not json at all" {
		t.Fatalf("Parse() = %#v", e)
	}
	if got := Format(e); got != "not json at all" {
		t.Fatalf("Format() = %q", got)
	}
}
