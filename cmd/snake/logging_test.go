package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/snake/config"
)

// inLogSandbox runs the test from a temporary directory and restores the standard logger
func inLogSandbox(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())

	prevOut, prevFlags, prevPrefix := log.Writer(), log.Flags(), log.Prefix()
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		log.SetPrefix(prevPrefix)
	})
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	inLogSandbox(t)

	if logFile := setupLogging(false); logFile != nil {
		logFile.Close()
		t.Error("Expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory without debug")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	inLogSandbox(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(logDir, logFileName)
	log.Println("Test log message")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	inLogSandbox(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	inLogSandbox(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	if out := log.Writer(); out == os.Stdout || out == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}

func TestStartupLogsReachDebugFile(t *testing.T) {
	inLogSandbox(t)
	t.Setenv("SNAKE_GRID_SIZE", "huge")

	startup := bufferStartupLogs()
	if _, err := config.Load(config.DefaultPath); err != nil {
		t.Fatalf("Load: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()
	replayStartupLogs(startup)

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "SNAKE_GRID_SIZE") {
		t.Errorf("Expected config warning in log file, got %q", data)
	}
	if startup.Len() != 0 {
		t.Error("Expected startup buffer to be drained")
	}
}

func TestStartupLogsDiscardedWithoutDebug(t *testing.T) {
	inLogSandbox(t)

	startup := bufferStartupLogs()
	log.Println("early warning")

	if logFile := setupLogging(false); logFile != nil {
		logFile.Close()
		t.Fatal("Expected nil log file when debug=false")
	}
	replayStartupLogs(startup)

	if startup.Len() != 0 {
		t.Error("Expected startup buffer to be drained")
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory without debug")
	}
}
