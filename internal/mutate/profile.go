package mutate

import (
	"strings"
	"time"

	"lifepm-cli/internal/model"
	"lifepm-cli/internal/store"
)

// CreateProfile appends a new empty profile with default settings. The new
// profile is not activated; callers switch explicitly.
func CreateProfile(db *store.DB, now time.Time, name string) (model.Profile, error) {
	if db == nil {
		return model.Profile{}, ErrNoProfile
	}
	p := model.Profile{
		ID:        store.NextID(db, "prof"),
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		Areas:     []model.Area{},
		Projects:  []model.Project{},
		Tasks:     []model.Task{},
		Ideas:     []model.Idea{},
		Tags:      []model.Tag{},
		Settings:  model.DefaultSettings(),
	}
	db.Profiles = append(db.Profiles, p)
	return p, nil
}

func RenameProfile(db *store.DB, id, name string) (*model.Profile, error) {
	id = strings.TrimSpace(id)
	p, ok := db.FindProfile(id)
	if !ok {
		return nil, NotFoundError{Kind: "profile", ID: id}
	}
	p.Name = strings.TrimSpace(name)
	return p, nil
}

// SwitchProfile points CurrentProfileID at an existing profile. Unknown
// ids leave the selection untouched.
func SwitchProfile(db *store.DB, id string) error {
	id = strings.TrimSpace(id)
	if _, ok := db.FindProfile(id); !ok {
		return NotFoundError{Kind: "profile", ID: id}
	}
	db.CurrentProfileID = id
	return nil
}

// DeleteProfile removes a profile. The last remaining profile cannot be
// deleted. When the active profile is removed, the first remaining one
// becomes active.
func DeleteProfile(db *store.DB, id string) error {
	id = strings.TrimSpace(id)
	if db == nil || len(db.Profiles) <= 1 {
		return ErrLastProfile
	}
	if _, ok := db.FindProfile(id); !ok {
		return NotFoundError{Kind: "profile", ID: id}
	}

	kept := db.Profiles[:0:0]
	for _, p := range db.Profiles {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	db.Profiles = kept
	if db.CurrentProfileID == id {
		db.CurrentProfileID = db.Profiles[0].ID
	}
	return nil
}
