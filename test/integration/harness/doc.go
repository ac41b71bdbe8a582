// Package harness provides utilities for integration testing the muxdeck CLI.
// It handles binary compilation, environment isolation, command execution
// and a fake session manager backend.
//
// Environment variables managed:
//   - MUXDECK_HOME: Isolated per test (temp directory)
//   - MUXDECK_DEBUG: Disabled to reduce noise
//   - MUXDECK_BACKEND_URL: Points at the fake backend when one is attached
package harness
