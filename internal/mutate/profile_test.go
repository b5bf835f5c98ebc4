package mutate

import (
	"errors"
	"testing"
	"time"

	"lifepm-cli/internal/model"
	"lifepm-cli/internal/store"
)

func TestCreateProfileIsEmptyAndInactive(t *testing.T) {
	db := testDB()
	now := time.Now().UTC()

	p, err := CreateProfile(db, now, "Work")
	if err != nil {
		t.Fatalf("CreateProfile error: %v", err)
	}
	if p.Name != "Work" {
		t.Fatalf("name = %q", p.Name)
	}
	if len(p.Areas) != 0 || len(p.Projects) != 0 || len(p.Tasks) != 0 || len(p.Ideas) != 0 || len(p.Tags) != 0 {
		t.Fatalf("new profile must be empty: %+v", p)
	}
	if p.Settings != model.DefaultSettings() {
		t.Fatalf("settings = %+v", p.Settings)
	}
	if db.CurrentProfileID != "prof-1" {
		t.Fatalf("creating a profile must not switch to it")
	}
}

func TestSwitchProfile(t *testing.T) {
	db := testDB()
	p, err := CreateProfile(db, time.Now().UTC(), "Work")
	if err != nil {
		t.Fatalf("CreateProfile error: %v", err)
	}

	if err := SwitchProfile(db, p.ID); err != nil {
		t.Fatalf("SwitchProfile error: %v", err)
	}
	if db.CurrentProfileID != p.ID {
		t.Fatalf("currentProfileId = %q, want %q", db.CurrentProfileID, p.ID)
	}

	if err := SwitchProfile(db, "prof-missing"); err == nil {
		t.Fatalf("expected error")
	}
	if db.CurrentProfileID != p.ID {
		t.Fatalf("failed switch must not change the active profile")
	}
}

func TestDeleteProfileRefusesLast(t *testing.T) {
	db := testDB()
	err := DeleteProfile(db, "prof-1")
	if !errors.Is(err, ErrLastProfile) {
		t.Fatalf("err = %v, want ErrLastProfile", err)
	}
	if len(db.Profiles) != 1 {
		t.Fatalf("profile must survive")
	}
}

func TestDeleteActiveProfileReactivatesFirst(t *testing.T) {
	db := &store.DB{
		Profiles: []model.Profile{
			{ID: "prof-a", Name: "A", Settings: model.DefaultSettings()},
			{ID: "prof-b", Name: "B", Settings: model.DefaultSettings()},
		},
		CurrentProfileID: "prof-b",
	}

	if err := DeleteProfile(db, "prof-b"); err != nil {
		t.Fatalf("DeleteProfile error: %v", err)
	}
	if len(db.Profiles) != 1 || db.Profiles[0].ID != "prof-a" {
		t.Fatalf("profiles = %+v", db.Profiles)
	}
	if db.CurrentProfileID != "prof-a" {
		t.Fatalf("currentProfileId = %q, want prof-a", db.CurrentProfileID)
	}
}

func TestDeleteInactiveProfileKeepsActive(t *testing.T) {
	db := &store.DB{
		Profiles: []model.Profile{
			{ID: "prof-a", Name: "A", Settings: model.DefaultSettings()},
			{ID: "prof-b", Name: "B", Settings: model.DefaultSettings()},
		},
		CurrentProfileID: "prof-a",
	}

	if err := DeleteProfile(db, "prof-b"); err != nil {
		t.Fatalf("DeleteProfile error: %v", err)
	}
	if db.CurrentProfileID != "prof-a" {
		t.Fatalf("currentProfileId = %q, want prof-a", db.CurrentProfileID)
	}
}
