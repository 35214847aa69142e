package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the bigshift binary and checks its output and exit
// codes end to end.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "bigshift"
	if runtime.GOOS == "windows" {
		binName = "bigshift.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD.
	rootDir := "../.."

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/bigshift")
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build bigshift: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // case-insensitive substring
		wantCode int
	}{
		{
			name:     "Simple Shift",
			args:     []string{"-x", "7", "-s", "2", "-q"},
			wantOut:  "0x1c",
			wantCode: 0,
		},
		{
			name:     "Word Table",
			args:     []string{"-x", "1", "-s", "127"},
			wantOut:  "success (0)",
			wantCode: 0,
		},
		{
			name:     "Overflow",
			args:     []string{"-x", "1", "-s", "512"},
			wantOut:  "overflow (-2)",
			wantCode: 3,
		},
		{
			name:     "Zero Absorbs Any Shift",
			args:     []string{"--value", "0", "--shift", "4000000000", "-q"},
			wantOut:  "0x0",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Missing Value",
			args:     []string{"-s", "3"},
			wantOut:  "value",
			wantCode: 4,
		},
		{
			name:     "Benchmark",
			args:     []string{"-bench", "-workers", "2", "-iterations", "1000", "-pool", "64", "-log-level", "error"},
			wantOut:  "shift benchmark",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "bigshift 1.0.0 (0x010000)",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			if err != nil {
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					t.Fatalf("running bigshift: %v", err)
				}
				code = exitErr.ExitCode()
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}

			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
