package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultMaxLogFiles is the number of per-run log files kept on disk
	DefaultMaxLogFiles = 1000

	envDebug       = "MUXDECK_DEBUG"
	envDebugFile   = "MUXDECK_DEBUG_FILE"
	envMaxLogFiles = "MUXDECK_MAX_LOG_FILES"
)

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize runs.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Initialize sets up the logger and returns the log file in use ("" when discarding).
// Debug settings inherited through MUXDECK_* env vars win over the arguments
// so child processes append to the parent's file.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	if os.Getenv(envDebug) == "1" {
		debug = true
	}
	if inherited := os.Getenv(envDebugFile); inherited != "" && debugFile == "" {
		debugFile = inherited
	}
	if raw := os.Getenv(envMaxLogFiles); raw != "" && maxLogFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(raw); err == nil {
			maxLogFiles = parsed
		}
	}

	if !debug && debugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	logFilePath, err := resolveLogFile(debugFile, maxLogFiles)
	if err != nil {
		return "", err
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	// Only announce the file when debug was requested here, not inherited
	if os.Getenv(envDebug) == "" {
		Logger.Info("Debug logging initialized", "log_file", logFilePath)
		fmt.Printf("Debug mode enabled. Logs: %s\n", logFilePath)
	}

	return logFilePath, nil
}

// ExportEnv publishes the debug settings for child processes
func ExportEnv(debug bool, logFilePath string, maxLogFiles int) {
	if debug || logFilePath != "" {
		os.Setenv(envDebug, "1")
		if logFilePath != "" {
			os.Setenv(envDebugFile, logFilePath)
		}
	}
	if maxLogFiles != DefaultMaxLogFiles {
		os.Setenv(envMaxLogFiles, strconv.Itoa(maxLogFiles))
	}
}

// DebugEnabled reports whether debug logging is active for this process
func DebugEnabled() bool {
	return os.Getenv(envDebug) == "1"
}

// resolveLogFile returns the custom file, or a fresh uuid-named file in the
// per-OS log directory after rotating old ones
func resolveLogFile(debugFile string, maxLogFiles int) (string, error) {
	if debugFile != "" {
		if err := os.MkdirAll(filepath.Dir(debugFile), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return debugFile, nil
	}

	logDir, err := getLogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if maxLogFiles > 0 {
		if err := rotateLogs(logDir, maxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(logDir, uuid.New().String()+".log"), nil
}

// rotateLogs deletes the oldest .log files so that, with the file about to be
// created, at most maxLogFiles remain
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(logDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	numToDelete := len(logFiles) - maxLogFiles + 1
	for i := 0; i < numToDelete; i++ {
		if err := os.Remove(logFiles[i].path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", logFiles[i].path, err)
		}
	}

	return nil
}

// getLogDir returns the OS-specific log directory
func getLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "muxdeck"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "muxdeck"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "muxdeck", "logs"), nil
	default:
		return filepath.Join(homeDir, ".muxdeck", "logs"), nil
	}
}
