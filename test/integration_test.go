// ABOUTME: Integration tests for the gastrocare CLI.
// ABOUTME: Tests the full workflow through the built binary.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "gastrocare")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/gastrocare")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Use a temp data directory
	dataDir := t.TempDir()

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--data", dataDir}, args...)
		cmd := exec.Command(binary, fullArgs...)
		cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+filepath.Join(dataDir, "config"))
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Log a meal
	output, err := run("log", "add", "Cream of Rice", "--texture", "Pureed", "--symptoms", "Nausea", "--severity", "4")
	if err != nil {
		t.Fatalf("Failed to log meal: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged Cream of Rice") {
		t.Errorf("Expected 'Logged Cream of Rice' in output, got: %s", output)
	}

	// Quick-add a known food
	output, err = run("log", "add", "Ensure/Boost", "--quick")
	if err != nil {
		t.Fatalf("Failed to quick-add: %v\n%s", err, output)
	}

	// List the log
	output, err = run("log", "list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Cream of Rice") {
		t.Errorf("Expected 'Cream of Rice' in list output, got: %s", output)
	}
	if !strings.Contains(output, "Ensure/Boost") {
		t.Errorf("Expected 'Ensure/Boost' in list output, got: %s", output)
	}

	// Track hydration
	output, err = run("water", "add", "500")
	if err != nil {
		t.Fatalf("Failed to add water: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged 500 ml") {
		t.Errorf("Expected 'Logged 500 ml' in output, got: %s", output)
	}

	output, err = run("water", "goal", "1500")
	if err != nil {
		t.Fatalf("Failed to set goal: %v\n%s", err, output)
	}

	output, err = run("water", "status")
	if err != nil {
		t.Fatalf("Failed to get status: %v\n%s", err, output)
	}
	if !strings.Contains(output, "1500") {
		t.Errorf("Expected goal 1500 in status, got: %s", output)
	}

	// Schedule a medication
	output, err = run("meds", "add", "Domperidone", "10mg", "08:00")
	if err != nil {
		t.Fatalf("Failed to add medication: %v\n%s", err, output)
	}

	output, err = run("meds", "list")
	if err != nil {
		t.Fatalf("Failed to list medications: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Domperidone") {
		t.Errorf("Expected 'Domperidone' in meds list, got: %s", output)
	}

	// Daily summary
	output, err = run("summary")
	if err != nil {
		t.Fatalf("Failed to get summary: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Meals logged: 2") {
		t.Errorf("Expected 2 meals in summary, got: %s", output)
	}

	// CSV export includes the logged meal
	output, err = run("export", "csv")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Cream of Rice") {
		t.Errorf("Expected meal in CSV export, got: %s", output)
	}
}
