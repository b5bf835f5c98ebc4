package mutate

import (
	"strings"

	"lifepm-cli/internal/model"
	"lifepm-cli/internal/store"
)

type AreaPatch struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
}

func CreateArea(db *store.DB, name, description, color, icon string) (model.Area, error) {
	p := db.CurrentProfile()
	if p == nil {
		return model.Area{}, ErrNoProfile
	}
	a := model.Area{
		ID:          store.NextID(db, "area"),
		Name:        strings.TrimSpace(name),
		Description: description,
		Color:       color,
		Icon:        icon,
	}
	p.Areas = append(p.Areas, a)
	return a, nil
}

func UpdateArea(db *store.DB, id string, patch AreaPatch) (*model.Area, error) {
	id = strings.TrimSpace(id)
	a, ok := db.FindArea(id)
	if !ok {
		return nil, NotFoundError{Kind: "area", ID: id}
	}
	if patch.Name != nil {
		a.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		a.Description = *patch.Description
	}
	if patch.Color != nil {
		a.Color = *patch.Color
	}
	if patch.Icon != nil {
		a.Icon = *patch.Icon
	}
	return a, nil
}

// DeleteArea removes the area only. Entities referencing it keep their
// areaId; dangling area references are tolerated throughout.
func DeleteArea(db *store.DB, id string) error {
	id = strings.TrimSpace(id)
	p := db.CurrentProfile()
	if p == nil {
		return ErrNoProfile
	}
	if _, ok := db.FindArea(id); !ok {
		return NotFoundError{Kind: "area", ID: id}
	}
	kept := p.Areas[:0:0]
	for _, a := range p.Areas {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	p.Areas = kept
	return nil
}
