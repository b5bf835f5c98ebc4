package store

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"

	"lifepm-cli/internal/model"
)

// newRandomID returns prefix-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space.
func newRandomID(prefix string) (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	return prefix + "-" + suffix, nil
}

// NextID allocates a fresh id with the given entity prefix, probing all
// profiles for collisions.
func NextID(db *DB, prefix string) string {
	for i := 0; i < 10; i++ {
		id, err := newRandomID(prefix)
		if err != nil {
			break
		}
		if !idExists(db, id) {
			return id
		}
	}
	// Extremely unlikely fallback: widen the suffix until unique.
	for n := 1; ; n++ {
		id := fmt.Sprintf("%s-fallback-%d", prefix, n)
		if !idExists(db, id) {
			return id
		}
	}
}

func idExists(db *DB, id string) bool {
	if db == nil {
		return false
	}
	for i := range db.Profiles {
		if profileHasID(&db.Profiles[i], id) {
			return true
		}
	}
	return false
}

func profileHasID(p *model.Profile, id string) bool {
	if p.ID == id {
		return true
	}
	for _, a := range p.Areas {
		if a.ID == id {
			return true
		}
	}
	for _, pr := range p.Projects {
		if pr.ID == id {
			return true
		}
	}
	for _, t := range p.Tasks {
		if t.ID == id {
			return true
		}
		for _, c := range t.ChecklistItems {
			if c.ID == id {
				return true
			}
		}
	}
	for _, i := range p.Ideas {
		if i.ID == id {
			return true
		}
	}
	for _, g := range p.Tags {
		if g.ID == id {
			return true
		}
	}
	return false
}
