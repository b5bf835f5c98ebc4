package mutate

import (
	"testing"

	"lifepm-cli/internal/model"
)

func TestCreateAndUpdateArea(t *testing.T) {
	db := testDB()

	a, err := CreateArea(db, " Finances ", "Money stuff", "#22c55e", "wallet")
	if err != nil {
		t.Fatalf("CreateArea error: %v", err)
	}
	if a.Name != "Finances" {
		t.Fatalf("name = %q", a.Name)
	}

	desc := "Budget and savings"
	got, err := UpdateArea(db, a.ID, AreaPatch{Description: &desc})
	if err != nil {
		t.Fatalf("UpdateArea error: %v", err)
	}
	if got.Description != desc {
		t.Fatalf("description = %q", got.Description)
	}
	// Untouched fields survive a partial patch.
	if got.Color != "#22c55e" || got.Icon != "wallet" {
		t.Fatalf("area = %+v", got)
	}
}

func TestDeleteAreaKeepsReferences(t *testing.T) {
	db := testDB()

	if err := DeleteArea(db, "area-1"); err != nil {
		t.Fatalf("DeleteArea error: %v", err)
	}

	p := db.Profiles[0]
	if len(p.Areas) != 1 {
		t.Fatalf("areas = %+v", p.Areas)
	}
	// Projects keep their (now dangling) area reference.
	if p.Projects[0].AreaID != "area-1" {
		t.Fatalf("project areaId = %q", p.Projects[0].AreaID)
	}
}

func TestUpdateSettings(t *testing.T) {
	db := testDB()

	light := model.ThemeLight
	hide := true
	got, err := UpdateSettings(db, SettingsPatch{Theme: &light, HideCompletedTasks: &hide})
	if err != nil {
		t.Fatalf("UpdateSettings error: %v", err)
	}
	if got.Theme != model.ThemeLight || !got.HideCompletedTasks {
		t.Fatalf("settings = %+v", got)
	}
	// Unpatched fields keep their previous values.
	if got.DefaultView != model.ViewToday {
		t.Fatalf("defaultView = %q", got.DefaultView)
	}
	if db.Profiles[0].Settings != got {
		t.Fatalf("settings not written to the profile")
	}
}
