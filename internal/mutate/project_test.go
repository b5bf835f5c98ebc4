package mutate

import (
	"testing"
	"time"

	"lifepm-cli/internal/model"
)

func TestCreateProjectDefaults(t *testing.T) {
	db := testDB()
	now := time.Now().UTC()

	pr, err := CreateProject(db, now, ProjectFields{Title: "Write a book", AreaID: "area-2"})
	if err != nil {
		t.Fatalf("CreateProject error: %v", err)
	}
	if pr.Status != model.ProjectBacklog {
		t.Fatalf("status = %q, want backlog", pr.Status)
	}
	if pr.Priority != model.PriorityMedium {
		t.Fatalf("priority = %q, want medium", pr.Priority)
	}
	if pr.Tags == nil {
		t.Fatalf("tags must be non-nil")
	}
}

func TestDeleteProjectCascadesTasks(t *testing.T) {
	db := testDB()
	now := time.Now().UTC()

	// A second task in the same project and one standalone task.
	if _, err := CreateTask(db, now, TaskFields{Title: "Taper week", ProjectID: "proj-1"}); err != nil {
		t.Fatalf("CreateTask error: %v", err)
	}
	standalone, err := CreateTask(db, now, TaskFields{Title: "Dentist", AreaID: "area-1"})
	if err != nil {
		t.Fatalf("CreateTask error: %v", err)
	}

	res, err := DeleteProject(db, "proj-1")
	if err != nil {
		t.Fatalf("DeleteProject error: %v", err)
	}
	if res.DeletedTasks != 2 {
		t.Fatalf("deletedTasks = %d, want 2", res.DeletedTasks)
	}

	p := db.Profiles[0]
	if len(p.Projects) != 0 {
		t.Fatalf("project not removed")
	}
	if len(p.Tasks) != 1 || p.Tasks[0].ID != standalone.ID {
		t.Fatalf("standalone task must survive, got %+v", p.Tasks)
	}
}

func TestDeleteProjectNotFound(t *testing.T) {
	db := testDB()
	if _, err := DeleteProject(db, "proj-missing"); err == nil {
		t.Fatalf("expected error")
	}
	if len(db.Profiles[0].Tasks) != 1 {
		t.Fatalf("tasks must be untouched")
	}
}

func TestArchiveProject(t *testing.T) {
	db := testDB()
	now := time.Now().UTC()

	pr, err := ArchiveProject(db, now, "proj-1")
	if err != nil {
		t.Fatalf("ArchiveProject error: %v", err)
	}
	if !pr.Archived {
		t.Fatalf("expected archived=true")
	}
	if pr.Status != model.ProjectCompleted {
		t.Fatalf("status = %q, want completed", pr.Status)
	}
}

func TestToggleProjectFocus(t *testing.T) {
	db := testDB()
	now := time.Now().UTC()

	pr, err := ToggleProjectFocus(db, now, "proj-1")
	if err != nil {
		t.Fatalf("ToggleProjectFocus error: %v", err)
	}
	if !pr.IsFocus {
		t.Fatalf("expected isFocus=true")
	}
	pr, err = ToggleProjectFocus(db, now, "proj-1")
	if err != nil {
		t.Fatalf("ToggleProjectFocus error: %v", err)
	}
	if pr.IsFocus {
		t.Fatalf("expected isFocus=false")
	}
}

func TestUpdateProjectClearDates(t *testing.T) {
	db := testDB()
	now := time.Now().UTC()
	start := now.Add(-24 * time.Hour)
	due := now.Add(24 * time.Hour)

	if _, err := UpdateProject(db, now, "proj-1", ProjectPatch{StartDate: &start, DueDate: &due}); err != nil {
		t.Fatalf("UpdateProject error: %v", err)
	}
	pr, err := UpdateProject(db, now, "proj-1", ProjectPatch{ClearStart: true, ClearDue: true})
	if err != nil {
		t.Fatalf("UpdateProject error: %v", err)
	}
	if pr.StartDate != nil || pr.DueDate != nil {
		t.Fatalf("dates not cleared: %+v", pr)
	}
}
