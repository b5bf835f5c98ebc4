package mutate

import (
	"testing"
	"time"

	"lifepm-cli/internal/model"
	"lifepm-cli/internal/store"
)

func TestConvertIdeaToProject(t *testing.T) {
	db := testDB()
	now := time.Now().UTC()

	pr, err := ConvertIdeaToProject(db, now, "idea-1")
	if err != nil {
		t.Fatalf("ConvertIdeaToProject error: %v", err)
	}
	if pr.Title != "Trail race" {
		t.Fatalf("title = %q", pr.Title)
	}
	// The idea's own area wins.
	if pr.AreaID != "area-2" {
		t.Fatalf("areaId = %q, want area-2", pr.AreaID)
	}
	if pr.Status != model.ProjectBacklog {
		t.Fatalf("status = %q, want backlog", pr.Status)
	}
	if pr.Priority != model.PriorityMedium {
		t.Fatalf("priority = %q, want medium", pr.Priority)
	}
	if len(pr.Tags) != 1 || pr.Tags[0] != "tag-1" {
		t.Fatalf("tags = %v", pr.Tags)
	}

	p := db.Profiles[0]
	if len(p.Ideas) != 0 {
		t.Fatalf("idea must be removed after conversion")
	}
	if len(p.Projects) != 2 {
		t.Fatalf("project not appended")
	}
}

func TestConvertIdeaToProjectAreaFallback(t *testing.T) {
	db := testDB()
	now := time.Now().UTC()
	p := &db.Profiles[0]

	// No area on the idea: fall back to the profile's first area.
	p.Ideas[0].AreaID = ""
	pr, err := ConvertIdeaToProject(db, now, "idea-1")
	if err != nil {
		t.Fatalf("ConvertIdeaToProject error: %v", err)
	}
	if pr.AreaID != "area-1" {
		t.Fatalf("areaId = %q, want area-1", pr.AreaID)
	}

	// No areas at all: empty area id.
	p.Ideas = []model.Idea{{ID: "idea-2", Title: "Another"}}
	p.Areas = nil
	pr, err = ConvertIdeaToProject(db, now, "idea-2")
	if err != nil {
		t.Fatalf("ConvertIdeaToProject error: %v", err)
	}
	if pr.AreaID != "" {
		t.Fatalf("areaId = %q, want empty", pr.AreaID)
	}
}

func TestConvertIdeaToTask(t *testing.T) {
	db := testDB()
	now := time.Now().UTC()

	task, err := ConvertIdeaToTask(db, now, "idea-1", "proj-1")
	if err != nil {
		t.Fatalf("ConvertIdeaToTask error: %v", err)
	}
	if task.Title != "Trail race" {
		t.Fatalf("title = %q", task.Title)
	}
	if task.ProjectID != "proj-1" {
		t.Fatalf("projectId = %q", task.ProjectID)
	}
	if task.Status != model.TaskTodo {
		t.Fatalf("status = %q, want todo", task.Status)
	}
	if task.Priority != model.PriorityMedium {
		t.Fatalf("priority = %q, want medium", task.Priority)
	}

	p := db.Profiles[0]
	if len(p.Ideas) != 0 {
		t.Fatalf("idea must be removed after conversion")
	}
	if len(p.Tasks) != 2 {
		t.Fatalf("task not appended")
	}
}

func TestConvertIdeaNotFound(t *testing.T) {
	db := testDB()
	if _, err := ConvertIdeaToProject(db, time.Now().UTC(), "idea-missing"); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := ConvertIdeaToTask(db, time.Now().UTC(), "idea-missing", ""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestArchiveIdea(t *testing.T) {
	db := testDB()
	idea, err := ArchiveIdea(db, "idea-1")
	if err != nil {
		t.Fatalf("ArchiveIdea error: %v", err)
	}
	if !idea.Archived {
		t.Fatalf("expected archived=true")
	}
	// Archived ideas stay in the inbox collection.
	if len(db.Profiles[0].Ideas) != 1 {
		t.Fatalf("idea must not be removed")
	}
}

func TestCreateIdeaDefaults(t *testing.T) {
	db := &store.DB{
		Profiles:         []model.Profile{{ID: "prof-1", Settings: model.DefaultSettings()}},
		CurrentProfileID: "prof-1",
	}
	idea, err := CreateIdea(db, time.Now().UTC(), IdeaFields{Title: "  Learn sailing "})
	if err != nil {
		t.Fatalf("CreateIdea error: %v", err)
	}
	if idea.Title != "Learn sailing" {
		t.Fatalf("title = %q", idea.Title)
	}
	if idea.Tags == nil {
		t.Fatalf("tags must be non-nil")
	}
}
