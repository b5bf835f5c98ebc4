package cli

import (
	"bytes"
	"encoding/json"
	"testing"
)

func runCLI(t *testing.T, args ...string) ([]byte, []byte, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.Bytes(), stderr.Bytes(), err
}

func TestCLISmoke(t *testing.T) {
	// init writes the chosen dir into the user config; keep it away from
	// ~/.lifepm.
	t.Setenv("LIFEPM_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()

	mustRun := func(args ...string) map[string]any {
		t.Helper()
		full := append([]string{"--dir", dir}, args...)
		stdout, stderr, err := runCLI(t, full...)
		if err != nil {
			t.Fatalf("command failed: lifepm %v\nerr: %v\nstderr:\n%s\nstdout:\n%s", args, err, stderr, stdout)
		}
		var env map[string]any
		if err := json.Unmarshal(stdout, &env); err != nil {
			t.Fatalf("unmarshal stdout as json envelope: %v\nstdout:\n%s\nargs: %v", err, stdout, args)
		}
		if _, ok := env["data"]; !ok {
			t.Fatalf("expected JSON envelope with data key, got: %v", env)
		}
		return env
	}

	// First run seeds a default profile.
	initEnv := mustRun("init")
	if n, _ := initEnv["data"].(map[string]any)["profiles"].(float64); n != 1 {
		t.Fatalf("expected 1 seeded profile, got: %#v", initEnv["data"])
	}

	// Area + project + task flow.
	area := mustRun("areas", "create", "--name", "Side Hustle")
	areaID, _ := area["data"].(map[string]any)["id"].(string)
	if areaID == "" {
		t.Fatalf("areas create returned no id: %#v", area["data"])
	}

	proj := mustRun("projects", "create", "--title", "Launch newsletter", "--area", areaID, "--status", "active", "--priority", "high")
	projID, _ := proj["data"].(map[string]any)["id"].(string)
	if projID == "" {
		t.Fatalf("projects create returned no id: %#v", proj["data"])
	}

	task := mustRun("tasks", "create", "--title", "Draft first issue", "--project", projID, "--today")
	taskID, _ := task["data"].(map[string]any)["id"].(string)
	if taskID == "" {
		t.Fatalf("tasks create returned no id: %#v", task["data"])
	}

	// The new task shows up in the today view.
	today := mustRun("view", "today", "--json")
	tasks, _ := today["data"].(map[string]any)["tasks"].([]any)
	found := false
	for _, raw := range tasks {
		if m, ok := raw.(map[string]any); ok && m["id"] == taskID {
			found = true
		}
	}
	if !found {
		t.Fatalf("task %s missing from today view: %#v", taskID, today["data"])
	}

	// Completing it stamps completedAt.
	done := mustRun("tasks", "done", taskID)
	if done["data"].(map[string]any)["completedAt"] == nil {
		t.Fatalf("expected completedAt after done: %#v", done["data"])
	}

	// Deleting the project cascades to its tasks.
	del := mustRun("projects", "delete", projID)
	if n, _ := del["data"].(map[string]any)["deletedTasks"].(float64); n != 1 {
		t.Fatalf("expected 1 cascaded task, got: %#v", del["data"])
	}

	// State persisted across invocations: the area is still there.
	list := mustRun("areas", "list")
	areas, _ := list["data"].([]any)
	found = false
	for _, raw := range areas {
		if m, ok := raw.(map[string]any); ok && m["id"] == areaID {
			found = true
		}
	}
	if !found {
		t.Fatalf("area %s not persisted: %#v", areaID, list["data"])
	}
}

func TestCLIResetRequiresForce(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := runCLI(t, "--dir", dir, "data", "reset")
	if err == nil {
		t.Fatalf("expected error without --force")
	}
	if len(stderr) == 0 {
		t.Fatalf("expected stderr message")
	}

	stdout, _, err := runCLI(t, "--dir", dir, "data", "reset", "--force")
	if err != nil {
		t.Fatalf("reset --force failed: %v", err)
	}
	var env map[string]any
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal: %v\nstdout:\n%s", err, stdout)
	}
}

func TestCLIUnknownTaskFails(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := runCLI(t, "--dir", dir, "tasks", "done", "task-missing")
	if err == nil {
		t.Fatalf("expected error for unknown task")
	}
	if !bytes.Contains(stderr, []byte("task not found")) {
		t.Fatalf("stderr = %s", stderr)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := parseDate("2026-02-30"); err == nil {
		t.Fatalf("expected error for impossible date")
	}
	got, err := parseDate("2026-03-09")
	if err != nil {
		t.Fatalf("parseDate error: %v", err)
	}
	if got.Year() != 2026 || got.Month() != 3 || got.Day() != 9 {
		t.Fatalf("parseDate = %v", got)
	}
	if _, err := parseDate("soonish"); err == nil {
		t.Fatalf("expected error")
	}
}
