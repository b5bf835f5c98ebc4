package store

import (
	"time"

	"lifepm-cli/internal/model"
)

const (
	// Storage keys for the data blob and the active-profile pointer.
	// Exported backups carry the same shape, so they stay interchangeable
	// across installs.
	dataKey           = "lifePMData"
	currentProfileKey = "lifePMCurrentProfile"

	appVersion = "1.0.0"
)

// DB is the single persisted root object: every profile plus the id of the
// active one.
type DB struct {
	Profiles         []model.Profile `json:"profiles"`
	CurrentProfileID string          `json:"currentProfileId"`
	Version          string          `json:"version"`
}

// Store is the persistence gateway. Dir is the directory holding the
// key-value database file.
//
// All storage failures are non-fatal: Load degrades to nil, Save and the
// profile-pointer writers degrade to false, so callers can fall back to
// seed data or keep working against in-memory state.
type Store struct {
	Dir string
}

func NewDB(profiles []model.Profile, currentID string) *DB {
	return &DB{
		Profiles:         profiles,
		CurrentProfileID: currentID,
		Version:          appVersion,
	}
}

// CurrentProfile resolves CurrentProfileID against Profiles, falling back
// to the first profile when the id is unknown. Returns nil only when the
// DB holds no profiles at all.
func (db *DB) CurrentProfile() *model.Profile {
	if db == nil || len(db.Profiles) == 0 {
		return nil
	}
	for i := range db.Profiles {
		if db.Profiles[i].ID == db.CurrentProfileID {
			return &db.Profiles[i]
		}
	}
	return &db.Profiles[0]
}

func (db *DB) FindProfile(id string) (*model.Profile, bool) {
	if db == nil {
		return nil, false
	}
	for i := range db.Profiles {
		if db.Profiles[i].ID == id {
			return &db.Profiles[i], true
		}
	}
	return nil, false
}

// The per-entity finders search the active profile only; entities are never
// shared across profiles.

func (db *DB) FindArea(id string) (*model.Area, bool) {
	p := db.CurrentProfile()
	if p == nil {
		return nil, false
	}
	for i := range p.Areas {
		if p.Areas[i].ID == id {
			return &p.Areas[i], true
		}
	}
	return nil, false
}

func (db *DB) FindProject(id string) (*model.Project, bool) {
	p := db.CurrentProfile()
	if p == nil {
		return nil, false
	}
	for i := range p.Projects {
		if p.Projects[i].ID == id {
			return &p.Projects[i], true
		}
	}
	return nil, false
}

func (db *DB) FindTask(id string) (*model.Task, bool) {
	p := db.CurrentProfile()
	if p == nil {
		return nil, false
	}
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i], true
		}
	}
	return nil, false
}

func (db *DB) FindIdea(id string) (*model.Idea, bool) {
	p := db.CurrentProfile()
	if p == nil {
		return nil, false
	}
	for i := range p.Ideas {
		if p.Ideas[i].ID == id {
			return &p.Ideas[i], true
		}
	}
	return nil, false
}

func (db *DB) FindTag(id string) (*model.Tag, bool) {
	p := db.CurrentProfile()
	if p == nil {
		return nil, false
	}
	for i := range p.Tags {
		if p.Tags[i].ID == id {
			return &p.Tags[i], true
		}
	}
	return nil, false
}

// Initialize loads existing data and reconciles the active-profile pointer,
// or seeds a fresh default profile when nothing is stored yet. It never
// fails: when storage is unavailable the seeded data is still returned and
// the session continues in memory.
func (s Store) Initialize() *DB {
	if db := s.Load(); db != nil && len(db.Profiles) > 0 {
		id, ok := s.ActiveProfileID()
		if _, exists := db.FindProfile(id); !ok || !exists {
			id = db.Profiles[0].ID
			s.SetActiveProfileID(id)
		}
		db.CurrentProfileID = id
		return db
	}

	profile := DefaultProfile(time.Now().UTC())
	db := NewDB([]model.Profile{profile}, profile.ID)
	s.Save(db)
	s.SetActiveProfileID(profile.ID)
	return db
}

// Reset removes both storage keys and reinitializes with seed data.
func (s Store) Reset() *DB {
	s.deleteKey(dataKey)
	s.deleteKey(currentProfileKey)
	return s.Initialize()
}
