package mutate

import (
	"strings"

	"lifepm-cli/internal/model"
	"lifepm-cli/internal/store"
)

type TagPatch struct {
	Name  *string
	Color *string
}

func CreateTag(db *store.DB, name, color string) (model.Tag, error) {
	p := db.CurrentProfile()
	if p == nil {
		return model.Tag{}, ErrNoProfile
	}
	g := model.Tag{
		ID:    store.NextID(db, "tag"),
		Name:  strings.TrimSpace(name),
		Color: color,
	}
	p.Tags = append(p.Tags, g)
	return g, nil
}

func UpdateTag(db *store.DB, id string, patch TagPatch) (*model.Tag, error) {
	id = strings.TrimSpace(id)
	g, ok := db.FindTag(id)
	if !ok {
		return nil, NotFoundError{Kind: "tag", ID: id}
	}
	if patch.Name != nil {
		g.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Color != nil {
		g.Color = *patch.Color
	}
	return g, nil
}

// DeleteTag removes the tag and strips its id from every project, task,
// and idea tag list in the same transition.
func DeleteTag(db *store.DB, id string) error {
	id = strings.TrimSpace(id)
	p := db.CurrentProfile()
	if p == nil {
		return ErrNoProfile
	}
	if _, ok := db.FindTag(id); !ok {
		return NotFoundError{Kind: "tag", ID: id}
	}

	kept := p.Tags[:0:0]
	for _, g := range p.Tags {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	p.Tags = kept

	for i := range p.Projects {
		p.Projects[i].Tags = removeString(p.Projects[i].Tags, id)
	}
	for i := range p.Tasks {
		p.Tasks[i].Tags = removeString(p.Tasks[i].Tags, id)
	}
	for i := range p.Ideas {
		p.Ideas[i].Tags = removeString(p.Ideas[i].Tags, id)
	}
	return nil
}

func removeString(xs []string, s string) []string {
	kept := xs[:0:0]
	for _, x := range xs {
		if x != s {
			kept = append(kept, x)
		}
	}
	return kept
}
