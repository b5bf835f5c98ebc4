package store

import (
	"strings"
	"testing"

	"lifepm-cli/internal/model"
)

func TestNextIDPrefixAndShape(t *testing.T) {
	db := NewDB([]model.Profile{testProfile("prof-a", "A")}, "prof-a")

	id := NextID(db, "task")
	if !strings.HasPrefix(id, "task-") {
		t.Fatalf("id = %q, want task- prefix", id)
	}
	if len(id) <= len("task-") {
		t.Fatalf("id = %q has no suffix", id)
	}
}

func TestNextIDAvoidsCollisions(t *testing.T) {
	db := NewDB([]model.Profile{testProfile("prof-a", "A")}, "prof-a")

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := NextID(db, "task")
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		db.Profiles[0].Tasks = append(db.Profiles[0].Tasks, model.Task{ID: id})
	}
}

func TestIDExistsScansChecklists(t *testing.T) {
	p := testProfile("prof-a", "A")
	p.Tasks = append(p.Tasks, model.Task{
		ID:             "task-1",
		ChecklistItems: []model.ChecklistItem{{ID: "chk-1", Content: "x"}},
	})
	db := NewDB([]model.Profile{p}, "prof-a")

	if !idExists(db, "chk-1") {
		t.Fatalf("checklist item ids must be visible to the collision probe")
	}
	if idExists(db, "chk-2") {
		t.Fatalf("unexpected hit")
	}
}
