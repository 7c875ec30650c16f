package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"neuropath/internal/logging"
)

func TestConsoleFormatIncludesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("configuration initialized", "base_data_dir", "/mnt/lab/proj", "variables", 10)

	line := buf.String()
	if !strings.Contains(line, "INFO configuration initialized") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "base_data_dir=/mnt/lab/proj") {
		t.Fatalf("missing attribute in line: %q", line)
	}
	if !strings.Contains(line, "variables=10") {
		t.Fatalf("missing numeric attribute in line: %q", line)
	}
}

func TestConsoleLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug record to be filtered, got %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "debug", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello", "keyword", "myproject1")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal json log line: %v\n%s", err, buf.String())
	}
	if record["msg"] != "hello" || record["keyword"] != "myproject1" {
		t.Fatalf("unexpected record: %v", record)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLogFileTee(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "neuropath.log")
	logger, err := logging.New(logging.Options{Format: "console", Output: &buf, LogFile: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("teed message")

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(contents), "teed message") {
		t.Fatalf("log file missing message: %q", contents)
	}
	if !strings.Contains(buf.String(), "teed message") {
		t.Fatalf("writer missing message: %q", buf.String())
	}
}
