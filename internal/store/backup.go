package store

import (
	"encoding/json"
	"errors"
	"time"

	"lifepm-cli/internal/model"
)

// ParseError reports import text that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "invalid JSON format" }
func (e *ParseError) Unwrap() error { return e.Err }

// InvalidFormatError reports import JSON that does not look like an
// exported AppData blob.
type InvalidFormatError struct {
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return "invalid data format: " + e.Reason
}

var errStorageUnavailable = errors.New("storage unavailable")

// ExportJSON returns a pretty-printed JSON document of the persisted blob.
// It re-reads from storage rather than any in-memory copy; since every
// mutation writes through before returning, the persisted blob is current
// whenever an export can be triggered.
func (s Store) ExportJSON() (string, error) {
	db := s.Load()
	if db == nil {
		return "", errStorageUnavailable
	}
	b, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// BackupFileName returns the download-style filename for an export taken
// at t, e.g. "life-pm-backup-2025-01-02.json".
func BackupFileName(t time.Time) string {
	return "life-pm-backup-" + t.Format("2006-01-02") + ".json"
}

// ImportJSON replaces the persisted state with the given exported JSON
// text. No partial import occurs: validation happens before any write.
// On success the imported currentProfileId (defaulted to the first profile
// when absent) is persisted and activated.
func (s Store) ImportJSON(text string) error {
	// Decode generically first so a missing/mistyped profiles field is
	// reported as a format problem rather than swallowed by strict typing.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return &ParseError{Err: err}
	}
	profilesRaw, ok := raw["profiles"]
	if !ok {
		return &InvalidFormatError{Reason: "missing profiles array"}
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(profilesRaw, &arr); err != nil {
		// Present but not an array.
		return &InvalidFormatError{Reason: "missing profiles array"}
	}
	if arr == nil {
		// "profiles": null decodes without error; still not an array.
		return &InvalidFormatError{Reason: "missing profiles array"}
	}

	var db DB
	if err := json.Unmarshal([]byte(text), &db); err != nil {
		return &ParseError{Err: err}
	}
	if db.Profiles == nil {
		db.Profiles = []model.Profile{}
	}

	if db.CurrentProfileID == "" && len(db.Profiles) > 0 {
		db.CurrentProfileID = db.Profiles[0].ID
	}

	if !s.Save(&db) {
		return errStorageUnavailable
	}
	s.SetActiveProfileID(db.CurrentProfileID)
	return nil
}
