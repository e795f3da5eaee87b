package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newWorkspace prepares an isolated workspace and returns the config file
// pointing at it.
func newWorkspace(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	workspaceDir := filepath.Join(base, "workspace")
	if err := os.MkdirAll(workspaceDir, 0o755); err != nil {
		t.Fatalf("mkdir workspace: %v", err)
	}
	t.Setenv("PAPERFORGE_WORKSPACE", workspaceDir)

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(
		"[workspace]\ndir = %q\nautosave_seconds = 1\n\n[logging]\nformat = \"json\"\nlevel = \"error\"\n",
		workspaceDir,
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func mustRunCLI(t *testing.T, configPath string, args ...string) string {
	t.Helper()
	stdout, stderr, err := runCLI(t, configPath, args...)
	if err != nil {
		t.Fatalf("command %v failed: %v (stderr: %s)", args, err, stderr)
	}
	return stdout
}

// lastField extracts the trailing identifier from output shaped like
// "Added section <id>".
func lastField(t *testing.T, output string) string {
	t.Helper()
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) == 0 {
		t.Fatalf("expected an identifier in output %q", output)
	}
	return fields[len(fields)-1]
}

func createdPaperID(t *testing.T, output string) string {
	t.Helper()
	fields := strings.Fields(output)
	if len(fields) < 3 || fields[0] != "Created" {
		t.Fatalf("unexpected new output %q", output)
	}
	return fields[2]
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected output to contain %q, got:\n%s", substr, output)
	}
}
