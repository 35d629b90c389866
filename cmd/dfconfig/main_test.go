package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Integration tests

func TestIntegration_Script(t *testing.T) {
	script := `#!/usr/bin/env dfconfig
# version 1
# syntax df
# preserve ["VOLUME"]
#---
[SOUND:NO]
[VOLUME:100]
[G_FPS_CAP:50]
`
	current := "[SOUND:YES]\r\n" +
		"Volume of sounds, 0 to 255.\r\n" +
		"[VOLUME:200]\r\n"
	want := "[SOUND:NO]\r\n" +
		"Volume of sounds, 0 to 255.\r\n" +
		"[VOLUME:200]\r\n" +
		"[G_FPS_CAP:50]\r\n"

	got := runIntegrationTest(t, script, current)
	if got != want {
		t.Errorf("Result mismatch:\ngot:\n%q\n\nwant:\n%q", got, want)
	}
}

func TestIntegration_ScriptRemove(t *testing.T) {
	script := `#!/usr/bin/env dfconfig
# version 1
# remove ["KEY_*"]
`
	current := "[KEY_UP:8]\n[SOUND:YES]\n[KEY_DOWN:2]\n"

	got := runIntegrationTest(t, script, current)
	if got != "[SOUND:YES]\n" {
		t.Errorf("Result = %q, want %q", got, "[SOUND:YES]\n")
	}
}

func TestIntegration_ScriptError(t *testing.T) {
	scriptPath := filepath.Join(t.TempDir(), "patch.dfpatch")
	if err := os.WriteFile(scriptPath, []byte("# version 9\n#---\n[A:B]\n"), 0644); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{scriptPath}, strings.NewReader(""), &stdout, &stderr)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "unsupported version 9") {
		t.Errorf("stderr = %q, want unsupported version error", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestIntegration_Commands(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "init.txt")
	if err := os.WriteFile(configPath, []byte("[SOUND:YES]\r\n[VOLUME:255]\r\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	tests := []struct {
		name      string
		args      []string
		wantCode  int
		wantOut   string
		wantError string
	}{
		{name: "get", args: []string{"get", configPath, "VOLUME"}, wantOut: "255\n"},
		{name: "set", args: []string{"set", configPath, "VOLUME", "64"}, wantOut: "Updated VOLUME: 255 -> 64\n"},
		{name: "get after set", args: []string{"get", configPath, "VOLUME"}, wantOut: "64\n"},
		{name: "missing key", args: []string{"get", configPath, "FPS"}, wantCode: 1,
			wantError: "dfconfig: key FPS not found in " + configPath + "\n"},
		{name: "unknown command flag", args: []string{"get", "--bogus", configPath, "FPS"}, wantCode: 1,
			wantError: "dfconfig: unknown flag: --bogus\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, strings.NewReader(""), &stdout, &stderr)
			if code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if tt.wantOut != "" && stdout.String() != tt.wantOut {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantOut)
			}
			if tt.wantError != "" && stderr.String() != tt.wantError {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantError)
			}
		})
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if string(data) != "[SOUND:YES]\r\n[VOLUME:64]\r\n" {
		t.Errorf("config = %q", data)
	}
}

// Helper functions

func runIntegrationTest(t *testing.T, script, current string) string {
	t.Helper()

	scriptPath := filepath.Join(t.TempDir(), "patch.dfpatch")
	if err := os.WriteFile(scriptPath, []byte(script), 0644); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{scriptPath}, strings.NewReader(current), &stdout, &stderr); code != 0 {
		t.Fatalf("run failed with code %d: %s", code, stderr.String())
	}
	return stdout.String()
}
