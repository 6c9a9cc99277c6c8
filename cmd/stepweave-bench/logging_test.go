package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestSetupLoggingOff verifies diagnostics are discarded without the debug
// flag and nothing is written to disk
func TestSetupLoggingOff(t *testing.T) {
	t.Chdir(t.TempDir())

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected discarded log output, got %T", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory without debug")
	}
}

// TestSetupLoggingDebug verifies the debug flag routes the standard logger
// into a file under the logs directory, away from the results table streams
func TestSetupLoggingDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file with debug on")
	}
	defer f.Close()

	log.Println("bench started")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Expected readable log file, got %v", err)
	}
	if !strings.Contains(string(data), "bench started") {
		t.Errorf("Expected logged line in the file, got %q", data)
	}
	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Errorf("Expected log output away from stdout/stderr, got %T", w)
	}
}

// TestSetupLoggingAppends verifies an under-limit file from an earlier run
// is appended to, not rotated
func TestSetupLoggingAppends(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Expected logs directory, got %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, []byte("earlier run\n"), 0644); err != nil {
		t.Fatalf("Expected seeded log file, got %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file with debug on")
	}
	defer f.Close()

	log.Println("later run")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Expected readable log file, got %v", err)
	}
	if !strings.Contains(string(data), "earlier run") || !strings.Contains(string(data), "later run") {
		t.Errorf("Expected both runs in the file, got %q", data)
	}

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Expected readable logs directory, got %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected no rotation below the size limit, got %d files", len(entries))
	}
}

// TestSetupLoggingRotation verifies an oversized file rotates aside under a
// timestamped name and a fresh file takes its place
func TestSetupLoggingRotation(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Expected logs directory, got %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Expected oversized log file, got %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file with debug on")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Expected readable logs directory, got %v", err)
	}
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), logFileName+".") {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("Expected 1 rotated file, got %d", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Expected fresh log file, got %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected empty fresh log file, got %d bytes", info.Size())
	}
}
